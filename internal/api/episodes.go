package api

//
// episodes.go
// /api/episodes
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/server/srvsupport"
	"gitlab.com/kabes/go-podcastr/internal/service"
)

const maxEpisodesLimit = 100

type episodesResource struct {
	episodesSrv  *service.EpisodesSrv
	defaultLimit int
}

func newEpisodesResource(i do.Injector) (episodesResource, error) {
	return episodesResource{
		episodesSrv:  do.MustInvoke[*service.EpisodesSrv](i),
		defaultLimit: do.MustInvoke[*config.PagesConf](i).IndexLimit,
	}, nil
}

func (er episodesResource) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Get(`/`, srvsupport.WrapNamed(er.list, "api_episodes_list"))
	r.Get(`/{slug}`, srvsupport.WrapNamed(er.get, "api_episodes_get"))

	return r
}

func (er episodesResource) list(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	limit := er.defaultLimit

	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 || v > maxEpisodesLimit {
			writeError(w, r, logger, aerr.ErrValidation.WithUserMsg("invalid limit").WithMeta("limit", l),
				"parse limit error")

			return
		}

		limit = v
	}

	episodes, err := er.episodesSrv.ListEpisodes(ctx, limit)
	if err != nil {
		writeError(w, r, logger, err, "list episodes error")

		return
	}

	srvsupport.RenderJSON(w, r, episodes)
}

func (er episodesResource) get(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	slug := chi.URLParam(r, "slug")

	episode, err := er.episodesSrv.GetEpisode(ctx, slug)
	if err != nil {
		writeError(w, r, logger, err, "get episode error")

		return
	}

	logger.Debug().Str(common.LogKeyEpisodeID, slug).Msg("episode loaded")

	srvsupport.RenderJSON(w, r, episode)
}
