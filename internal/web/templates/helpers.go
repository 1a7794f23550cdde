package templates

//
// helpers.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"bytes"
	"io"

	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/model"
	"gitlab.com/kabes/go-podcastr/internal/player"
	"gitlab.com/kabes/go-podcastr/internal/service"
)

type PageContext struct {
	Webroot string
	Lang    string
	// Static is set for documents exported to files; player script is not loaded.
	Static bool
}

// Renderer render page bodies for PagesSrv and complete documents for handlers.
type Renderer struct {
	pageContext   *PageContext
	staticContext *PageContext
}

func NewRenderer(i do.Injector) (*Renderer, error) {
	webroot := do.MustInvokeNamed[string](i, "server.webroot")
	lang := string(do.MustInvoke[*config.SourceConf](i).GetLocale())

	return &Renderer{
		pageContext:   &PageContext{Webroot: webroot, Lang: lang},
		staticContext: &PageContext{Webroot: webroot, Lang: lang, Static: true},
	}, nil
}

func (r *Renderer) WritePage(w io.Writer, p Page) {
	WritePageTemplate(w, p, r.pageContext)
}

// WriteDocument write cached page with player state of session.
func (r *Renderer) WriteDocument(w io.Writer, page *service.Page, status *service.Status) {
	r.WritePage(w, &DocumentPage{Page: page, Status: status, Ctx: r.pageContext})
}

// WriteError write error page.
func (r *Renderer) WriteError(w io.Writer, code int, msg string) {
	r.WritePage(w, &ErrorPage{Code: code, Message: msg, Ctx: r.pageContext})
}

func (r *Renderer) RenderIndex(latest, rest model.Episodes) []byte {
	var buf bytes.Buffer

	WriteIndexBody(&buf, r.pageContext, latest, rest)

	return buf.Bytes()
}

func (r *Renderer) RenderEpisode(episode *model.Episode) []byte {
	var buf bytes.Buffer

	WriteEpisodeBody(&buf, r.pageContext, episode)

	return buf.Bytes()
}

// RenderDocument render standalone document without session and scripts.
func (r *Renderer) RenderDocument(page *service.Page) []byte {
	var buf bytes.Buffer

	WritePageTemplate(&buf, &DocumentPage{Page: page, Ctx: r.staticContext}, r.staticContext)

	return buf.Bytes()
}

//-------------------------------------------------------------

type playerButton struct {
	Action   player.Action
	Label    string
	Symbol   string
	Class    string
	Disabled bool
}

func currentEpisode(status *service.Status) *model.Episode {
	if status == nil {
		return nil
	}

	return status.Current()
}

// playerButtons return controls of player in display order.
func playerButtons(status *service.Status) []playerButton {
	if status == nil {
		status = &service.Status{}
	}

	empty := status.Current() == nil

	playLabel, playSymbol := "Play", "&#9654;"
	if status.Playing {
		playLabel, playSymbol = "Pause", "&#10073;&#10073;"
	}

	return []playerButton{
		{
			Action:   player.ActionToggleShuffle,
			Label:    "Shuffle",
			Symbol:   "&#8644;",
			Class:    activeClass(status.Shuffling),
			Disabled: empty || len(status.Episodes) == 1,
		},
		{
			Action:   player.ActionPrevious,
			Label:    "Previous",
			Symbol:   "&#9198;",
			Disabled: empty || !status.HasPrevious,
		},
		{
			Action:   player.ActionTogglePlay,
			Label:    playLabel,
			Symbol:   playSymbol,
			Class:    "play-button",
			Disabled: empty,
		},
		{
			Action:   player.ActionNext,
			Label:    "Next",
			Symbol:   "&#9197;",
			Disabled: empty || !(status.HasNext || status.Shuffling),
		},
		{
			Action:   player.ActionToggleLoop,
			Label:    "Repeat",
			Symbol:   "&#8635;",
			Class:    activeClass(status.Looping),
			Disabled: empty,
		},
		{
			Action:   player.ActionClear,
			Label:    "Clear playlist",
			Symbol:   "&#10005;",
			Disabled: empty,
		},
	}
}

func activeClass(active bool) string {
	if active {
		return "active"
	}

	return ""
}
