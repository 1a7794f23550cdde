// Package api handle request do api's endpoints.
package api

//
// api.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/server/srvsupport"
)

// maxRequestSize limit size of json request body.
const maxRequestSize = 64 * 1024

// API is handler for all api endpoints.
type API struct {
	router *chi.Mux
}

func New(i do.Injector) (API, error) {
	playerResource := do.MustInvoke[playerResource](i)
	episodesResource := do.MustInvoke[episodesResource](i)

	router := chi.NewRouter()

	router.Mount("/player", playerResource.Routes())
	router.Mount("/episodes", episodesResource.Routes())

	return API{router}, nil
}

func (a *API) Routes() *chi.Mux {
	return a.router
}

//-------------------------------------------------------------

// writeError write error as json response and log it.
func writeError(w http.ResponseWriter, r *http.Request, logger *zerolog.Logger, err error, msg string) {
	srvsupport.LogError(logger, err, msg)

	code, usermsg := srvsupport.StatusForError(err)
	if usermsg == "" {
		usermsg = http.StatusText(code)
	}

	res := struct {
		Error string `json:"error"`
	}{usermsg}

	render.Status(r, code)
	srvsupport.RenderJSON(w, r, &res)
}
