package server

//
// instrumentation.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.com/kabes/go-podcastr/internal/config"
)

//nolint:gochecknoglobals
var defaultBuckets = []float64{0.01, 0.05, 0.1, 0.5, 1, 5}

// routeLabel use chi route pattern so paths with episode ids not explode
// number of series. Pattern is complete after request is routed.
//
//nolint:gochecknoglobals
var routeLabel = promhttp.WithLabelFromCtx("route", func(ctx context.Context) string {
	if rctx := chi.RouteContext(ctx); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return "unknown"
})

type promMiddleware struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

func (m *promMiddleware) handler(next http.Handler) http.Handler {
	base := promhttp.InstrumentHandlerInFlight(m.inFlight, next)
	base = promhttp.InstrumentHandlerResponseSize(m.responseSize, base)
	base = promhttp.InstrumentHandlerDuration(m.requestDuration, base, routeLabel)
	base = promhttp.InstrumentHandlerCounter(m.requestsTotal, base, routeLabel)

	return base
}

//nolint:gochecknoglobals
var (
	promMiddlewaresMu sync.Mutex
	promMiddlewares   = make(map[string]*promMiddleware)
)

// newPromMiddleware return middleware collecting metrics for handler `name`.
// Collectors are registered once per name; server may be created many times.
func newPromMiddleware(name string) func(http.Handler) http.Handler {
	promMiddlewaresMu.Lock()
	defer promMiddlewaresMu.Unlock()

	if mw, ok := promMiddlewares[name]; ok {
		return mw.handler
	}

	factory := promauto.With(
		prometheus.WrapRegistererWith(prometheus.Labels{"handler": name}, prometheus.DefaultRegisterer))

	mw := &promMiddleware{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "podcastr",
			Name:      "http_requests_total",
			Help:      "Number of handled HTTP requests.",
		}, []string{"method", "code", "route"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "podcastr",
			Name:      "http_request_duration_seconds",
			Help:      "Time of handling HTTP requests.",
			Buckets:   defaultBuckets,
		}, []string{"method", "code", "route"}),
		responseSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "podcastr",
			Name:      "http_response_size_bytes",
			Help:      "Size of HTTP responses.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 7), //nolint:mnd
		}, []string{"method"}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "podcastr",
			Name:      "http_in_flight_requests",
			Help:      "Number of requests currently served; includes open event streams.",
		}),
	}
	promMiddlewares[name] = mw

	return mw.handler
}

//nolint:gochecknoglobals
var registerBuildInfo = sync.OnceFunc(func() {
	bi := config.GetBuildInfo()

	promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "podcastr",
		Name:      "build_info",
		Help:      "Build information; value is always 1.",
		ConstLabels: prometheus.Labels{
			"version":   bi.Version,
			"revision":  bi.Revision,
			"goversion": bi.GoVersion,
		},
	}).Set(1)
})

func newMetricsHandler() http.Handler {
	registerBuildInfo()

	return promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{DisableCompression: true}),
	)
}
