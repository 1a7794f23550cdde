package cli

//
// serve.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Merovius/systemd"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	pcapi "gitlab.com/kabes/go-podcastr/internal/api"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/server"
	"gitlab.com/kabes/go-podcastr/internal/service"
	pcweb "gitlab.com/kabes/go-podcastr/internal/web"
)

const (
	playersCleanupInterval = 15 * time.Minute
	shutdownTimeout        = 10 * time.Second
)

func newStartServerCmd() *cli.Command { //nolint:funlen
	return &cli.Command{
		Name:  "serve",
		Usage: "start server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Value:   ":8080",
				Usage:   "listen address",
				Aliases: []string{"a"},
				Sources: cli.EnvVars("PODCASTR_SERVER_ADDRESS"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "web-root",
				Value:   "/",
				Usage:   "path root",
				Sources: cli.EnvVars("PODCASTR_SERVER_WEBROOT"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.BoolFlag{
				Name:    "enable-metrics",
				Usage:   "enable prometheus metrics (/metrics endpoint)",
				Sources: cli.EnvVars("PODCASTR_SERVER_METRICS"),
			},
			&cli.StringFlag{
				Name:      "cert",
				Usage:     "tls certificate file",
				Sources:   cli.EnvVars("PODCASTR_SERVER_CERT"),
				Config:    cli.StringConfig{TrimSpace: true},
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "key",
				Usage:     "tls key file",
				Sources:   cli.EnvVars("PODCASTR_SERVER_KEY"),
				Config:    cli.StringConfig{TrimSpace: true},
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    "secure-cookie",
				Usage:   "use secure (https only) cookie",
				Sources: cli.EnvVars("PODCASTR_SERVER_SECURE_COOKIE"),
			},
			&cli.StringFlag{
				Name:    "mgmt-address",
				Value:   "",
				Usage:   "listen address for management endpoints; empty disable management; may be the same as main 'address'",
				Aliases: []string{"m"},
				Sources: cli.EnvVars("PODCASTR_MGMT_SERVER_ADDRESS"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "mgmt-access-list",
				Value:   "",
				Usage:   "list of ip or networks separated by ',' allowed to connected to mgmt endpoints.",
				Sources: cli.EnvVars("PODCASTR_MGMT_SERVER_ACCESS_LIST"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.BoolFlag{
				Name:    "set-security-headers",
				Usage:   "enable add some http security related headers",
				Sources: cli.EnvVars("PODCASTR_SET_SECURITY_HEADERS"),
			},
			&cli.DurationFlag{
				Name:    "session-lifetime",
				Value:   config.DefaultSessionMaxLifetime,
				Usage:   "max lifetime of session cookie",
				Sources: cli.EnvVars("PODCASTR_SESSION_LIFETIME"),
			},
			&cli.IntFlag{
				Name:    "prerender-count",
				Value:   config.DefaultPrerenderCount,
				Usage:   "number of newest episodes pages rendered on start",
				Sources: cli.EnvVars("PODCASTR_PRERENDER_COUNT"),
			},
			&cli.IntFlag{
				Name:    "index-limit",
				Value:   config.DefaultIndexLimit,
				Usage:   "number of episodes shown on index page",
				Sources: cli.EnvVars("PODCASTR_INDEX_LIMIT"),
			},
			&cli.DurationFlag{
				Name:    "episode-revalidate",
				Value:   config.DefaultEpisodeRevalidate,
				Usage:   "after this time episode page is regenerated",
				Sources: cli.EnvVars("PODCASTR_EPISODE_REVALIDATE"),
			},
			&cli.DurationFlag{
				Name:    "index-revalidate",
				Value:   config.DefaultIndexRevalidate,
				Usage:   "after this time index page is regenerated",
				Sources: cli.EnvVars("PODCASTR_INDEX_REVALIDATE"),
			},
			&cli.DurationFlag{
				Name:    "refresh-interval",
				Value:   config.DefaultRefreshInterval,
				Usage:   "interval of background refreshing stale pages; 0 disable",
				Sources: cli.EnvVars("PODCASTR_REFRESH_INTERVAL"),
			},
			&cli.DurationFlag{
				Name:    "player-idle-timeout",
				Value:   config.DefaultPlayerIdleTimeout,
				Usage:   "remove players not used for given time",
				Sources: cli.EnvVars("PODCASTR_PLAYER_IDLE_TIMEOUT"),
			},
		},
		Action: wrap(startServerCmd, pcweb.Package, pcapi.Package, server.Package),
	}
}

func startServerCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	webroot := strings.TrimSuffix(clicmd.String("web-root"), "/")

	serverConf := config.ServerConf{
		MainServer: config.ListenConf{
			Address:      strings.TrimSpace(clicmd.String("address")),
			WebRoot:      webroot,
			TLSKey:       clicmd.String("key"),
			TLSCert:      clicmd.String("cert"),
			CookieSecure: clicmd.Bool("secure-cookie"),
		},
		MgmtServer: config.ListenConf{
			Address: strings.TrimSpace(clicmd.String("mgmt-address")),
			// mgmt not use for now tls/webroot/cookie
		},
		DebugFlags:         config.ParseDebugFlags(clicmd.String("debug")),
		EnableMetrics:      clicmd.Bool("enable-metrics"),
		MgmtAccessList:     clicmd.String("mgmt-access-list"),
		SetSecurityHeaders: clicmd.Bool("set-security-headers"),
		SessionMaxLifetime: clicmd.Duration("session-lifetime"),
	}

	if err := serverConf.Validate(); err != nil {
		return aerr.Wrapf(err, "server config validation failed")
	}

	pagesConf := config.PagesConf{
		PrerenderCount:    int(clicmd.Int("prerender-count")),
		LatestCount:       config.DefaultLatestCount,
		IndexLimit:        int(clicmd.Int("index-limit")),
		EpisodeRevalidate: clicmd.Duration("episode-revalidate"),
		IndexRevalidate:   clicmd.Duration("index-revalidate"),
		RefreshInterval:   clicmd.Duration("refresh-interval"),
	}

	if err := pagesConf.Validate(); err != nil {
		return aerr.Wrapf(err, "pages config validation failed")
	}

	playersConf := config.PlayersConf{IdleTimeout: clicmd.Duration("player-idle-timeout")}
	if err := playersConf.Validate(); err != nil {
		return aerr.Wrapf(err, "players config validation failed")
	}

	do.ProvideNamedValue(injector, "server.webroot", webroot)
	do.ProvideValue(injector, &serverConf)
	do.ProvideValue(injector, &pagesConf)
	do.ProvideValue(injector, &playersConf)

	if serverConf.DebugFlags.HasFlag(config.DebugDo) {
		explainInjector(ctx, injector)
	}

	s := Server{}

	return s.start(ctx, injector, &serverConf, &pagesConf)
}

type Server struct{}

func (s *Server) start(ctx context.Context, injector do.Injector, cfg *config.ServerConf,
	pagesConf *config.PagesConf,
) error {
	logger := log.Ctx(ctx)
	logger.Log().Msgf("Starting podcastr (%s)...", config.VersionString())
	logger.Debug().Msgf("Server: debug_flags=%q", cfg.DebugFlags)
	logger.Debug().Object("pages", pagesConf).Msg("Server: pages configuration")

	s.startSystemdWatchdog(logger)

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	pagesSrv := do.MustInvoke[*service.PagesSrv](injector)

	// source may be unavailable on start; pages are rendered then on first request.
	if _, err := pagesSrv.Prerender(ctx, pagesConf.PrerenderCount); err != nil {
		logger.Warn().Err(err).Msgf("Server: prerender pages failed error=%q", err)
	}

	srv := do.MustInvoke[*server.Server](injector)
	if err := srv.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msgf("start server failed error=%q", err)

		return aerr.New("failed start server")
	}

	var msrv *server.MgmtServer

	if cfg.SeparateMgmtEnabled() {
		msrv = do.MustInvoke[*server.MgmtServer](injector)
		if err := msrv.Start(ctx); err != nil {
			logger.Fatal().Err(err).Msgf("start mgmt server failed error=%q", err)

			return aerr.New("failed start mgmt server")
		}
	}

	if pagesConf.RefreshInterval > 0 {
		go s.runPagesRefresh(ctx, pagesSrv, pagesConf.RefreshInterval)
	}

	go s.runPlayersCleanup(ctx, do.MustInvoke[*service.PlayersSrv](injector))

	systemd.NotifyReady()           //nolint:errcheck
	systemd.NotifyStatus("running") //nolint:errcheck

	<-ctx.Done()

	systemd.NotifyStatus("stopping") //nolint:errcheck

	sctx, scancel := context.WithTimeout(log.Logger.WithContext(context.Background()), shutdownTimeout)
	defer scancel()

	if err := srv.Shutdown(sctx); err != nil {
		logger.Error().Err(err).Msgf("Server: shutdown error=%q", err)
	}

	if msrv != nil {
		if err := msrv.Shutdown(sctx); err != nil {
			logger.Error().Err(err).Msgf("MgmtServer: shutdown error=%q", err)
		}
	}

	pagesSrv.Wait()

	systemd.NotifyStatus("stopped") //nolint:errcheck

	return nil
}

func (*Server) startSystemdWatchdog(logger *zerolog.Logger) {
	if ok, dur, err := systemd.AutoWatchdog(); ok {
		logger.Info().Msgf("Systemd: autowatchdog started; duration=%s", dur)
	} else if err != nil {
		logger.Warn().Err(err).Msgf("Systemd: autowatchdog start error=%q", err)
	}
}

// runPagesRefresh periodically regenerate stale pages so requests get fresh
// content without waiting for source.
func (s *Server) runPagesRefresh(ctx context.Context, pagesSrv *service.PagesSrv, interval time.Duration) {
	logger := log.Ctx(ctx)
	logger.Info().Msgf("PagesRefresh: start background pages refresh; interval=%s", interval)

	eventlog := common.NewEventLog("pages refresh", "worker")
	defer eventlog.Close()

	ctx = common.ContextWithEventLog(ctx, eventlog)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		taskid := xid.New()
		llog := logger.With().Str(common.LogKeyTaskID, taskid.String()).Logger() //nolint:nilaway
		tctx := llog.WithContext(hlog.CtxWithID(ctx, taskid))

		eventlog.Printf("start refresh task_id=%s", taskid.String())

		count, err := pagesSrv.RefreshStale(tctx)
		if err != nil {
			llog.Error().Err(err).Msgf("PagesRefresh: refresh pages error=%q", err)
			eventlog.Errorf("refresh error task_id=%s error=%q", taskid.String(), err)
		} else {
			llog.Debug().Msgf("PagesRefresh: refreshed %d pages", count)
			eventlog.Printf("refresh finished task_id=%s refreshed=%d", taskid.String(), count)
		}
	}
}

// runPlayersCleanup remove players of expired sessions.
func (s *Server) runPlayersCleanup(ctx context.Context, playersSrv *service.PlayersSrv) {
	logger := log.Ctx(ctx)
	logger.Info().Msgf("PlayersCleanup: start background players cleanup; interval=%s", playersCleanupInterval)

	eventlog := common.NewEventLog("players cleanup", "worker")
	defer eventlog.Close()

	ctx = common.ContextWithEventLog(ctx, eventlog)

	ticker := time.NewTicker(playersCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			playersSrv.Cleanup(ctx)
		}
	}
}
