package server

//
// mgmt.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	dochi "github.com/samber/do/http/chi/v2"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/config"
)

// MgmtServer serve health, metrics and debug endpoints on separate address.
type MgmtServer struct {
	*httpServer
}

func NewMgmt(injector do.Injector) (*MgmtServer, error) {
	cfg := do.MustInvoke[*config.ServerConf](injector)

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Heartbeat(cfg.MgmtServer.WebRoot + "/ping"))

	createMgmtRouters(injector, router, cfg, cfg.MgmtServer)

	return &MgmtServer{newHTTPServer("MgmtServer", router, cfg, cfg.MgmtServer)}, nil
}

//-------------------------------------------------------------

func createMgmtRouters(injector do.Injector, router *chi.Mux, cfg *config.ServerConf, scfg config.ListenConf) {
	webroot := scfg.WebRoot

	router.Get(webroot+"/health", newHealthChecker(injector, cfg))

	router.Group(func(group chi.Router) {
		group.Use(hlog.RequestIDHandler("req_id", "Request-Id"))
		group.Use(newVerySimpleLogMiddleware("MgmtServer"))
		group.Use(newRecoverMiddleware)
		group.Use(middleware.CleanPath)
		group.Use(newAuthMgmtMiddleware(cfg))

		if cfg.DebugFlags.HasFlag(config.DebugDo) {
			dochi.Use(router, webroot+"/debug/do", injector)
		}

		if cfg.DebugFlags.HasFlag(config.DebugGo) {
			group.Mount(webroot+"/debug", middleware.Profiler())
		}

		if cfg.DebugFlags.HasFlag(config.DebugTrace) {
			mountXTrace(group, webroot)
		}
	})

	if cfg.EnableMetrics {
		router.Method("GET", webroot+"/metrics", newMetricsHandler())
	}
}

//-------------------------------------------------------------

type healthStatus struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Failed  map[string]string `json:"failed,omitempty"`
}

// newHealthChecker create handler for /health. Services registered in injector
// report its state by HealthCheck method (i.e. episodes source).
func newHealthChecker(injector do.Injector, cfg *config.ServerConf) http.HandlerFunc {
	rootscope := injector.RootScope()
	version := config.GetBuildInfo().Version

	return func(w http.ResponseWriter, r *http.Request) {
		// access to /health only from selected networks
		if _, access := cfg.AuthMgmtRequest(r); !access {
			w.WriteHeader(http.StatusForbidden)

			return
		}

		status := healthStatus{Status: "ok", Version: version}

		for service, err := range rootscope.HealthCheckWithContext(r.Context()) {
			if err == nil {
				continue
			}

			log.Ctx(r.Context()).Error().Err(err).Str("service", service).Msg("HealthChecker: service unhealthy")

			if status.Failed == nil {
				status.Failed = make(map[string]string)
			}

			status.Status = "error"
			status.Failed[service] = err.Error()
		}

		if status.Failed != nil {
			render.Status(r, http.StatusServiceUnavailable)
		}

		render.JSON(w, r, &status)
	}
}

//-------------------------------------------------------------

// newAuthMgmtMiddleware deny access to debug endpoints from not allowed addresses.
func newAuthMgmtMiddleware(cfg *config.ServerConf) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if access, _ := cfg.AuthMgmtRequest(r); !access {
				log.Ctx(r.Context()).Warn().Str("remote", r.RemoteAddr).
					Msgf("MgmtServer: access to %q denied", r.URL.Path)
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
