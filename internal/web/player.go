package web

//
// player.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/player"
	"gitlab.com/kabes/go-podcastr/internal/server/srvsupport"
	"gitlab.com/kabes/go-podcastr/internal/service"
)

// playerPages handle player controls submitted as forms; each action redirect
// back to the page.
type playerPages struct {
	pagesSrv   *service.PagesSrv
	playersSrv *service.PlayersSrv
	pw         pageWriter
}

func newPlayerPages(i do.Injector) (playerPages, error) {
	return playerPages{
		pagesSrv:   do.MustInvoke[*service.PagesSrv](i),
		playersSrv: do.MustInvoke[*service.PlayersSrv](i),
		pw:         do.MustInvoke[pageWriter](i),
	}, nil
}

func (p playerPages) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post(`/play/{slug}`, srvsupport.WrapNamed(p.play, "web_player_play"))
	r.Post(`/playlist`, srvsupport.WrapNamed(p.playList, "web_player_playlist"))
	r.Post(`/{action}`, srvsupport.WrapNamed(p.action, "web_player_action"))

	return r
}

func (p playerPages) play(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	page, err := p.pagesSrv.Episode(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		p.pw.writeError(w, r, logger, err, "get episode error")

		return
	}

	if _, err := p.playersSrv.Play(ctx, common.ContextSession(ctx), &page.Episodes[0]); err != nil {
		p.pw.writeError(w, r, logger, err, "play episode error")

		return
	}

	p.pw.redirectBack(w, r)
}

// playList start playing episodes from index page. `episode` field, when
// given, is used to find position of episode when page changed after render.
func (p playerPages) playList(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	index, err := strconv.Atoi(strings.TrimSpace(r.FormValue("index")))
	if err != nil {
		p.pw.writeError(w, r, logger, aerr.ApplyFor(aerr.ErrValidation, err, "", "invalid episode index"),
			"parse index error")

		return
	}

	page, err := p.pagesSrv.Index(ctx)
	if err != nil {
		p.pw.writeError(w, r, logger, err, "get index page error")

		return
	}

	if id := r.FormValue("episode"); id != "" {
		if idx := page.Episodes.Index(id); idx >= 0 {
			index = idx
		}
	}

	if _, err := p.playersSrv.PlayList(ctx, common.ContextSession(ctx), page.Episodes, index); err != nil {
		p.pw.writeError(w, r, logger, err, "play list error")

		return
	}

	p.pw.redirectBack(w, r)
}

func (p playerPages) action(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	action := player.Action(chi.URLParam(r, "action"))

	if _, err := p.playersSrv.Apply(ctx, common.ContextSession(ctx), action); err != nil {
		p.pw.writeError(w, r, logger, err, "player action error")

		return
	}

	p.pw.redirectBack(w, r)
}
