//
// server.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

// Package server start main and management http servers.
package server

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	pcapi "gitlab.com/kabes/go-podcastr/internal/api"
	"gitlab.com/kabes/go-podcastr/internal/config"
	pcweb "gitlab.com/kabes/go-podcastr/internal/web"
)

const (
	defaultReadTimeout    = 60 * time.Second
	defaultWriteTimeout   = 60 * time.Second
	defaultMaxHeaderBytes = 1 << 20
)

// Server serve web pages and api.
type Server struct {
	*httpServer
}

func New(injector do.Injector) (*Server, error) {
	cfg := do.MustInvoke[*config.ServerConf](injector)
	api := do.MustInvoke[pcapi.API](injector)
	web := do.MustInvoke[pcweb.WEB](injector)
	sessionMW := do.MustInvoke[sessionMiddleware](injector)
	logMW := do.MustInvoke[logMiddleware](injector)

	webroot := cfg.MainServer.WebRoot

	// routes
	router := chi.NewRouter()
	router.Use(middleware.Heartbeat(webroot + "/ping"))
	router.Use(middleware.RealIP)

	router.Group(func(group chi.Router) {
		group.Use(hlog.RequestIDHandler("req_id", "Request-Id"))

		if cfg.DebugFlags.HasFlag(config.DebugFlightRecorder) {
			group.Use(newFRMiddleware())
		}

		if cfg.DebugFlags.HasFlag(config.DebugTrace) {
			group.Use(newTracingMiddleware(cfg))
		}

		group.Use(logMW)
		group.Use(newRecoverMiddleware)
		group.Use(middleware.CleanPath)

		if cfg.SetSecurityHeaders {
			group.Use(newSecurityHeadersMiddleware)
		}

		group.Use(sessionMW)
		group.Use(sessionContextMiddleware)
		group.
			With(newPromMiddleware("api")).
			With(middleware.NoCache).
			Mount(webroot+"/api", api.Routes())
		group.
			With(newPromMiddleware("web")).
			Mount(webroot+"/web", web.Routes())
		group.
			Get(webroot+"/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, webroot+"/web/", http.StatusMovedPermanently)
			})
	})

	if cfg.MgmtEnabledOnMainServer() {
		createMgmtRouters(injector, router, cfg, cfg.MainServer)
	}

	return &Server{newHTTPServer("Server", router, cfg, cfg.MainServer)}, nil
}

// httpServer is http.Server with its router and listen configuration.
type httpServer struct {
	name   string
	router chi.Router
	cfg    *config.ServerConf
	listen config.ListenConf
	s      *http.Server
}

func newHTTPServer(name string, router chi.Router, cfg *config.ServerConf, listen config.ListenConf) *httpServer {
	return &httpServer{
		name:   name,
		router: router,
		cfg:    cfg,
		listen: listen,
		s: &http.Server{
			Addr:           listen.Address,
			Handler:        router,
			ReadTimeout:    defaultReadTimeout,
			WriteTimeout:   defaultWriteTimeout,
			MaxHeaderBytes: defaultMaxHeaderBytes,
		},
	}
}

// Handler return root handler of server.
func (h *httpServer) Handler() http.Handler {
	return h.router
}

// Start listen on configured address and serve requests in background.
func (h *httpServer) Start(ctx context.Context) error {
	logger := log.Logger

	if h.cfg.DebugFlags.HasFlag(config.DebugRouter) {
		logRoutes(ctx, h.name, h.router)
	}

	listener, err := newListener(ctx, h.listen)
	if err != nil {
		return aerr.Wrapf(err, "start listen error").WithMeta("server", h.name)
	}

	logger.Log().Msgf("%s: listen on address=%s https=%v webroot=%q",
		h.name, h.listen.Address, h.listen.TLSEnabled(), h.listen.WebRoot)

	go func() {
		if err := h.s.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log().Err(err).Msgf("%s: serve error: %s", h.name, err)
		}
	}()

	return nil
}

// Shutdown stop server gracefully; open event streams are closed when ctx
// expire.
func (h *httpServer) Shutdown(ctx context.Context) error {
	logger := log.Ctx(ctx)
	logger.Debug().Msgf("%s: stopping...", h.name)

	if err := h.s.Shutdown(ctx); err != nil {
		return aerr.Wrapf(err, "shutdown server failed").WithMeta("server", h.name)
	}

	logger.Debug().Msgf("%s: stopped", h.name)

	return nil
}

//-------------------------------------------------------------

func logRoutes(ctx context.Context, name string, r chi.Routes) {
	logger := log.Ctx(ctx)

	walkFunc := func(method, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		_ = handler
		_ = middlewares
		route = strings.ReplaceAll(route, "/*/", "/")
		logger.Debug().Msgf("%s: ROUTE: %s %s", name, method, route)

		return nil
	}

	if err := chi.Walk(r, walkFunc); err != nil {
		logger.Error().Err(err).Msgf("Server: routers walk error: %s", err)
	}
}

func newListener(ctx context.Context, cfg config.ListenConf) (net.Listener, error) {
	if !cfg.TLSEnabled() {
		lc := net.ListenConfig{}

		l, err := lc.Listen(ctx, "tcp", cfg.Address)
		if err != nil {
			return nil, aerr.Wrapf(err, "listen failed").WithMeta("address", cfg.Address)
		}

		return l, nil
	}

	cert, err := tls.LoadX509KeyPair(cfg.TLSCert, cfg.TLSKey)
	if err != nil {
		return nil, aerr.Wrapf(err, "load certificates failed").
			WithMeta("cert", cfg.TLSCert, "key", cfg.TLSKey)
	}

	tlscfg := tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	l, err := tls.Listen("tcp", cfg.Address, &tlscfg)
	if err != nil {
		return nil, aerr.Wrapf(err, "tls listen failed").WithMeta("address", cfg.Address)
	}

	return l, nil
}
