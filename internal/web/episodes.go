package web

//
// episodes.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/server/srvsupport"
	"gitlab.com/kabes/go-podcastr/internal/service"
)

type episodePages struct {
	pagesSrv *service.PagesSrv
	pw       pageWriter
}

func newEpisodePages(i do.Injector) (episodePages, error) {
	return episodePages{
		pagesSrv: do.MustInvoke[*service.PagesSrv](i),
		pw:       do.MustInvoke[pageWriter](i),
	}, nil
}

func (e episodePages) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get(`/{slug}`, srvsupport.WrapNamed(e.episode, "web_episode"))

	return r
}

func (e episodePages) episode(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	slug := chi.URLParam(r, "slug")
	logger.Debug().Str(common.LogKeyEpisodeID, slug).Msg("episode page")

	page, err := e.pagesSrv.Episode(ctx, slug)
	if err != nil {
		e.pw.writeError(w, r, logger, err, "get episode page error")

		return
	}

	e.pw.writePage(ctx, w, page)
}
