package cli

//
// episodes.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/format"
	"gitlab.com/kabes/go-podcastr/internal/service"
)

const defaultListLimit = 20

func newListEpisodesCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list newest episodes.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: defaultListLimit, Aliases: []string{"l"}, Usage: "max number of episodes"},
		},
		Action: wrap(listEpisodesCmd),
	}
}

//nolint:forbidigo
func listEpisodesCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	limit := int(clicmd.Int("limit"))
	if limit <= 0 {
		return aerr.ErrValidation.WithUserMsg("limit must be greater than 0")
	}

	episodesSrv := do.MustInvoke[*service.EpisodesSrv](injector)

	episodes, err := episodesSrv.ListEpisodes(ctx, limit)
	if err != nil {
		return fmt.Errorf("get episodes list error: %w", err)
	}

	fmt.Printf("%-30s | %-12s | %-8s | %s\n", "ID", "Published", "Duration", "Title")
	fmt.Println("--------------------------------------------------------------------------------------------")

	for _, e := range episodes {
		fmt.Printf("%-30s | %-12s | %-8s | %s\n", e.ID, e.PublishedAt, e.DurationAsString, e.Title)
	}

	return nil
}

//-------------------------------------------------------------

func newShowEpisodeCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "show episode details.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true, Aliases: []string{"i"}, Usage: "episode id (slug)"},
		},
		Action: wrap(showEpisodeCmd),
	}
}

//nolint:forbidigo
func showEpisodeCmd(ctx context.Context, clicmd *cli.Command, injector do.Injector) error {
	episodesSrv := do.MustInvoke[*service.EpisodesSrv](injector)

	episode, err := episodesSrv.GetEpisode(ctx, clicmd.String("id"))
	if err != nil {
		return fmt.Errorf("get episode error: %w", err)
	}

	fmt.Printf("ID:        %s\n", episode.ID)
	fmt.Printf("Title:     %s\n", episode.Title)
	fmt.Printf("Members:   %s\n", episode.Members)
	fmt.Printf("Published: %s\n", episode.PublishedAt)
	fmt.Printf("Duration:  %s\n", episode.DurationAsString)
	fmt.Printf("URL:       %s\n", episode.URL)
	fmt.Printf("Thumbnail: %s\n", episode.Thumbnail)
	fmt.Println()
	fmt.Println(format.StripHTML(episode.Description, 0))

	return nil
}
