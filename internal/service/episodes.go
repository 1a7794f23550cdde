package service

//
// episodes.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/format"
	"gitlab.com/kabes/go-podcastr/internal/model"
	"gitlab.com/kabes/go-podcastr/internal/source"
)

// EpisodesSrv load episodes from source and convert it to displayable form.
type EpisodesSrv struct {
	source source.Source
	locale format.Locale
}

func NewEpisodesSrv(i do.Injector) (*EpisodesSrv, error) {
	cfg := do.MustInvoke[*config.SourceConf](i)

	return &EpisodesSrv{
		source: do.MustInvoke[source.Source](i),
		locale: cfg.GetLocale(),
	}, nil
}

// ListEpisodes return up to `limit` newest episodes.
func (e *EpisodesSrv) ListEpisodes(ctx context.Context, limit int) (model.Episodes, error) {
	query := source.LatestEpisodes(limit)

	logger := zerolog.Ctx(ctx)
	logger.Debug().Object("query", &query).Msg("list episodes")

	records, err := e.source.ListEpisodes(ctx, query)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return lo.Map(records, func(r source.EpisodeRecord, _ int) model.Episode {
		return e.toEpisode(&r)
	}), nil
}

// LatestAndRest load `limit` newest episodes and split it into `latest` first
// and the rest.
func (e *EpisodesSrv) LatestAndRest(ctx context.Context, limit, latest int) (model.Episodes, model.Episodes, error) {
	episodes, err := e.ListEpisodes(ctx, limit)
	if err != nil {
		return nil, nil, err
	}

	l, r := episodes.Split(latest)

	return l, r, nil
}

func (e *EpisodesSrv) GetEpisode(ctx context.Context, id string) (*model.Episode, error) {
	if id == "" {
		return nil, common.ErrEmptyEpisodeID
	}

	zerolog.Ctx(ctx).Debug().Str(common.LogKeyEpisodeID, id).Msg("get episode")

	record, err := e.source.GetEpisode(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	episode := e.toEpisode(&record)

	return &episode, nil
}

func (e *EpisodesSrv) toEpisode(rec *source.EpisodeRecord) model.Episode {
	return model.Episode{
		ID:               rec.ID,
		Title:            rec.Title,
		Thumbnail:        SanitizeURL(rec.Thumbnail),
		Members:          rec.Members,
		Description:      format.SanitizeHTML(rec.Description),
		Duration:         rec.File.Duration,
		DurationAsString: format.Duration(rec.File.Duration),
		URL:              SanitizeURL(rec.File.URL),
		PublishedAt:      format.Date(rec.PublishedAt, e.locale),
		Published:        rec.PublishedAt,
	}
}
