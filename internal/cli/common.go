package cli

//
// common.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/service"
	"gitlab.com/kabes/go-podcastr/internal/source"
)

// wrap initialize logger, validate source configuration and create injector
// with source and service layers; packages are registered additionally.
func wrap(
	cmdfunc func(ctx context.Context, clicmd *cli.Command, i do.Injector) error,
	packages ...func(do.Injector),
) func(ctx context.Context, clicmd *cli.Command) error {
	return func(ctx context.Context, clicmd *cli.Command) error {
		if err := initializeLogger(clicmd.String("log.level"), clicmd.String("log.format")); err != nil {
			return err
		}

		ctx = log.Logger.WithContext(ctx)

		sourceConf := config.SourceConf{
			Kind:    config.SourceKind(strings.ToLower(clicmd.String("source"))),
			APIURL:  strings.TrimSuffix(clicmd.String("api-url"), "/"),
			FeedURL: clicmd.String("feed-url"),
			Timeout: clicmd.Duration("api-timeout"),
			Locale:  clicmd.String("locale"),
		}

		if err := sourceConf.Validate(); err != nil {
			return aerr.Wrapf(err, "invalid source configuration")
		}

		debugFlags := config.ParseDebugFlags(clicmd.String("debug"))

		injector := createInjector(ctx, debugFlags.HasFlag(config.DebugDo), packages...)
		do.ProvideValue(injector, &sourceConf)
		do.ProvideNamedValue(injector, "debug.flags", debugFlags)

		defer shutdownInjector(ctx, injector)

		log.Ctx(ctx).Debug().Object("source", &sourceConf).Msg("source configured")

		return cmdfunc(ctx, clicmd, injector)
	}
}

func createInjector(ctx context.Context, debug bool, packages ...func(do.Injector)) *do.RootScope {
	packages = append([]func(do.Injector){source.Package, service.Package}, packages...)

	if !debug {
		return do.New(packages...)
	}

	return do.NewWithOpts(newDoDebugOpts(ctx), packages...)
}

// newDoDebugOpts create injector options that log registration and invocation
// of services.
func newDoDebugOpts(ctx context.Context) *do.InjectorOpts {
	logger := log.Ctx(ctx).With().Str("module", "do").Logger()

	return &do.InjectorOpts{
		HookAfterRegistration: []func(scope *do.Scope, serviceName string){
			func(scope *do.Scope, serviceName string) {
				logger.Debug().Msgf("do: registered scope=%q service=%q", scope.Name(), serviceName)
			},
		},
		HookAfterInvocation: []func(scope *do.Scope, serviceName string, err error){
			func(scope *do.Scope, serviceName string, err error) {
				if err != nil {
					logger.Error().Err(err).Msgf("do: invocation failed scope=%q service=%q", scope.Name(), serviceName)
				} else {
					logger.Debug().Msgf("do: invoked scope=%q service=%q", scope.Name(), serviceName)
				}
			},
		},
		Logf: func(format string, args ...any) {
			logger.Debug().Msgf(format, args...)
		},
	}
}

func shutdownInjector(ctx context.Context, injector *do.RootScope) {
	logger := log.Ctx(ctx)

	if report := injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		logger.Error().Msgf("shutdown services failed: %s", report.Error())
	}

	logger.Debug().Msg("services stopped")
}

// explainInjector log dependency tree of services; enabled by 'do' debug flag.
func explainInjector(ctx context.Context, injector do.Injector) {
	explanation := do.ExplainInjector(injector)
	log.Ctx(ctx).Debug().Msgf("do: services:\n%s", explanation.String())
}
