package cli

//
// render.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/service"
	pcweb "gitlab.com/kabes/go-podcastr/internal/web"
)

func newRenderCmd() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "render index and newest episodes pages into static html files.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "output",
				Required:  true,
				Aliases:   []string{"o"},
				Usage:     "output directory; it should be served as <web-root>/web/",
				TakesFile: true,
			},
			&cli.IntFlag{
				Name:    "count",
				Value:   config.DefaultIndexLimit,
				Aliases: []string{"c"},
				Usage:   "number of newest episodes to render",
			},
			&cli.StringFlag{
				Name:    "web-root",
				Value:   "/",
				Usage:   "path root used in links",
				Sources: cli.EnvVars("PODCASTR_SERVER_WEBROOT"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
		},
		Action: wrap(renderCmd, pcweb.RendererPackage),
	}
}

//nolint:forbidigo
func renderCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	output := clicmd.String("output")
	if output == "" {
		return aerr.ErrValidation.WithUserMsg("output directory can't be empty")
	}

	pagesConf := config.PagesConf{}
	if err := pagesConf.Validate(); err != nil {
		return aerr.Wrapf(err, "pages config validation failed")
	}

	do.ProvideNamedValue(injector, "server.webroot", strings.TrimSuffix(clicmd.String("web-root"), "/"))
	do.ProvideValue(injector, &pagesConf)

	pagesSrv := do.MustInvoke[*service.PagesSrv](injector)

	files, err := pagesSrv.Export(ctx, output, int(clicmd.Int("count")))
	if err != nil {
		return fmt.Errorf("render pages error: %w", err)
	}

	static, err := pcweb.ExportStatic(output)
	if err != nil {
		return fmt.Errorf("copy static files error: %w", err)
	}

	files = append(files, static...)

	log.Ctx(ctx).Info().Strs("files", files).Msgf("rendered %d files", len(files))

	for _, f := range files {
		fmt.Println(f)
	}

	return nil
}
