//go:build trace

package server

//
// trace.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/config"
	xtrace "golang.org/x/net/trace"
)

// newTracingMiddleware create x/net/trace entry for each request. Requests
// are grouped by section of application (api, web). Event streams and static
// files are not traced.
func newTracingMiddleware(cfg *config.ServerConf) func(http.Handler) http.Handler {
	xtrace.AuthRequest = cfg.AuthMgmtRequest
	webroot := cfg.MainServer.WebRoot

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if shouldSkipLogRequest(r) || isEventStream(r) {
				next.ServeHTTP(w, r)

				return
			}

			ctx := r.Context()

			reqid := "-"
			if id, ok := hlog.IDFromCtx(ctx); ok {
				reqid = id.String()
			}

			pprof.SetGoroutineLabels(pprof.WithLabels(ctx, pprof.Labels(common.LogKeyReqID, reqid)))

			tr := xtrace.New(traceFamily(webroot, r.URL.Path), r.Method+" "+r.URL.Path)
			defer tr.Finish()

			tr.LazyPrintf("req_id=%s remote=%s", reqid, r.RemoteAddr)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(xtrace.NewContext(ctx, tr)))

			tr.LazyPrintf("status=%d size=%d", ww.Status(), ww.BytesWritten())

			if ww.Status() >= http.StatusInternalServerError {
				tr.SetError()
			}
		})
	}
}

func traceFamily(webroot, path string) string {
	path = strings.TrimPrefix(path, webroot)
	section, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")

	switch section {
	case "api", "web":
		return "podcastr." + section
	default:
		return "podcastr"
	}
}

func mountXTrace(group chi.Router, webroot string) {
	group.Get(webroot+"/debug/requests", xtrace.Traces)
	group.Get(webroot+"/debug/events", xtrace.Events)
}

//-------------------------------------------------------------

const (
	flightRecorderThreshold = 500 * time.Millisecond
	flightRecorderMaxBytes  = 4 << 20
)

// newFRMiddleware keep flight recorder running and dump it once, on first
// request handled longer than threshold. Event streams are ignored.
func newFRMiddleware() func(http.Handler) http.Handler {
	fr := trace.NewFlightRecorder(trace.FlightRecorderConfig{
		MinAge:   2 * flightRecorderThreshold, //nolint:mnd
		MaxBytes: flightRecorderMaxBytes,
	})

	if err := fr.Start(); err != nil {
		log.Logger.Error().Err(err).Msg("FlightRecorder: start failed; disabled")

		return func(next http.Handler) http.Handler { return next }
	}

	log.Logger.Warn().Msgf("FlightRecorder: enabled; threshold=%s", flightRecorderThreshold)

	var captured atomic.Bool

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			if isEventStream(r) || time.Since(start) < flightRecorderThreshold {
				return
			}

			if captured.CompareAndSwap(false, true) {
				go dumpFlightRecorder(r.Context(), fr, r.URL.Path)
			}
		})
	}
}

func dumpFlightRecorder(ctx context.Context, fr *trace.FlightRecorder, path string) {
	defer fr.Stop()

	logger := log.Logger

	reqid := "unknown"
	if id, ok := hlog.IDFromCtx(ctx); ok {
		reqid = id.String()
	}

	fname := filepath.Join(os.TempDir(), fmt.Sprintf("podcastr-%d-%s.trace", time.Now().Unix(), reqid))

	fout, err := os.Create(fname)
	if err != nil {
		logger.Error().Err(err).Msgf("FlightRecorder: create file %q failed", fname)

		return
	}
	defer fout.Close()

	if _, err := fr.WriteTo(fout); err != nil {
		logger.Error().Err(err).Msgf("FlightRecorder: write snapshot to %q failed", fname)

		return
	}

	logger.Warn().Str(common.LogKeyReqID, reqid).Str("path", path).
		Msgf("FlightRecorder: slow request; snapshot saved to %q", fname)
}
