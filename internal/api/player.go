package api

//
// player.go
// /api/player
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
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/player"
	"gitlab.com/kabes/go-podcastr/internal/server/srvsupport"
	"gitlab.com/kabes/go-podcastr/internal/service"
)

type playerResource struct {
	playersSrv *service.PlayersSrv
	pagesSrv   *service.PagesSrv
}

func newPlayerResource(i do.Injector) (playerResource, error) {
	return playerResource{
		playersSrv: do.MustInvoke[*service.PlayersSrv](i),
		pagesSrv:   do.MustInvoke[*service.PagesSrv](i),
	}, nil
}

func (pr playerResource) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Get(`/`, srvsupport.WrapNamed(pr.status, "api_player_status"))
	r.Get(`/events`, srvsupport.WrapNamed(pr.events, "api_player_events"))
	r.Post(`/media`, srvsupport.WrapNamed(pr.media, "api_player_media"))
	r.Post(`/play`, srvsupport.WrapNamed(pr.play, "api_player_play"))
	r.Post(`/playlist`, srvsupport.WrapNamed(pr.playList, "api_player_playlist"))
	r.Post(`/{action}`, srvsupport.WrapNamed(pr.action, "api_player_action"))

	return r
}

func (pr playerResource) status(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	status, err := pr.playersSrv.Status(ctx, common.ContextSession(ctx))
	if err != nil {
		writeError(w, r, logger, err, "get player status error")

		return
	}

	srvsupport.RenderJSON(w, r, &status)
}

func (pr playerResource) action(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	action := player.Action(chi.URLParam(r, "action"))

	status, err := pr.playersSrv.Apply(ctx, common.ContextSession(ctx), action)
	if err != nil {
		writeError(w, r, logger, err, "player action error")

		return
	}

	srvsupport.RenderJSON(w, r, &status)
}

func (pr playerResource) media(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	var req mediaReport

	if err := srvsupport.DecodeJSON(r, &req, maxRequestSize); err != nil {
		writeError(w, r, logger, aerr.ApplyFor(aerr.ErrValidation, err, "", "invalid request"),
			"parse json error")

		return
	}

	req.sanitize()

	if err := req.validate(); err != nil {
		writeError(w, r, logger, err, "validate media report error")

		return
	}

	var (
		status service.Status
		err    error
	)

	sessionID := common.ContextSession(ctx)

	switch req.Event {
	case mediaReset:
		status, err = pr.playersSrv.MediaReset(ctx, sessionID)
	case mediaLoaded:
		status, err = pr.playersSrv.MediaLoaded(ctx, sessionID, req.EpisodeID)
	default:
		status, err = pr.playersSrv.ReportMedia(ctx, sessionID, player.MediaEvent(req.Event), req.EpisodeID)
	}

	if err != nil {
		writeError(w, r, logger, err, "media report error")

		return
	}

	srvsupport.RenderJSON(w, r, &status)
}

func (pr playerResource) play(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	var req playRequest

	if err := srvsupport.DecodeJSON(r, &req, maxRequestSize); err != nil {
		writeError(w, r, logger, aerr.ApplyFor(aerr.ErrValidation, err, "", "invalid request"),
			"parse json error")

		return
	}

	if err := req.validate(); err != nil {
		writeError(w, r, logger, err, "validate request error")

		return
	}

	page, err := pr.pagesSrv.Episode(ctx, req.EpisodeID)
	if err != nil {
		writeError(w, r, logger, err, "get episode error")

		return
	}

	status, err := pr.playersSrv.Play(ctx, common.ContextSession(ctx), &page.Episodes[0])
	if err != nil {
		writeError(w, r, logger, err, "play episode error")

		return
	}

	srvsupport.RenderJSON(w, r, &status)
}

func (pr playerResource) playList(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	var req playListRequest

	if err := srvsupport.DecodeJSON(r, &req, maxRequestSize); err != nil {
		writeError(w, r, logger, aerr.ApplyFor(aerr.ErrValidation, err, "", "invalid request"),
			"parse json error")

		return
	}

	if err := req.validate(); err != nil {
		writeError(w, r, logger, err, "validate request error")

		return
	}

	page, err := pr.pagesSrv.Index(ctx)
	if err != nil {
		writeError(w, r, logger, err, "get index page error")

		return
	}

	index := req.Index
	if req.EpisodeID != "" {
		if idx := page.Episodes.Index(req.EpisodeID); idx >= 0 {
			index = idx
		}
	}

	status, err := pr.playersSrv.PlayList(ctx, common.ContextSession(ctx), page.Episodes, index)
	if err != nil {
		writeError(w, r, logger, err, "play list error")

		return
	}

	srvsupport.RenderJSON(w, r, &status)
}
