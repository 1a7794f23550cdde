package cli

//
// main.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/config"
)

//nolint:forbidigo
func Main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "print-version",
		Aliases: []string{"V"},
		Usage:   "Print version.",
	}

	cli := &cli.Command{
		Name:    config.AppName,
		Version: config.VersionString(),
		Usage:   "podcast web front end with per-session player",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Value:   string(config.SourceAPI),
				Usage:   "where episodes are loaded from (api, feed)",
				Sources: cli.EnvVars("PODCASTR_SOURCE"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "api-url",
				Value:   "http://localhost:3333",
				Usage:   "base url of episodes api",
				Sources: cli.EnvVars("PODCASTR_API_URL"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "feed-url",
				Usage:   "url of rss/atom feed used when source is 'feed'",
				Sources: cli.EnvVars("PODCASTR_FEED_URL"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.DurationFlag{
				Name:    "api-timeout",
				Value:   config.DefaultSourceTimeout,
				Usage:   "timeout for requests to episodes source",
				Sources: cli.EnvVars("PODCASTR_API_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "locale",
				Value:   "pt-BR",
				Usage:   "locale used to format dates (pt-BR, en)",
				Sources: cli.EnvVars("PODCASTR_LOCALE"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "log.level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("PODCASTR_LOGLEVEL"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{
				Name:    "log.format",
				Value:   "console",
				Usage:   "Log format (console, logfmt, json, journald, syslog)",
				Sources: cli.EnvVars("PODCASTR_LOGFORMAT"),
				Config:  cli.StringConfig{TrimSpace: true},
			},
			&cli.StringFlag{Name: "debug", Usage: "Debug flags", Sources: cli.EnvVars("PODCASTR_DEBUG")},
		},
		Commands: []*cli.Command{
			newStartServerCmd(),
			episodesSubCmd(),
			newRenderCmd(),
		},
	}

	if err := cli.Run(context.Background(), os.Args); err != nil {
		if h := aerr.GetUserMessage(err); h != "" {
			fmt.Printf("Error: %s\n", h)
		} else {
			fmt.Printf("Error: %s\n", err.Error())
		}

		if cli.String("log.level") == "debug" {
			fmt.Printf("Error: %#+v\n", err)
		}

		os.Exit(1)
	}
}

func episodesSubCmd() *cli.Command {
	return &cli.Command{
		Name:  "episodes",
		Usage: "query episodes source",
		Commands: []*cli.Command{
			newListEpisodesCmd(),
			newShowEpisodeCmd(),
		},
	}
}
