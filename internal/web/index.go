package web

//
// index.go
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
	"gitlab.com/kabes/go-podcastr/internal/server/srvsupport"
	"gitlab.com/kabes/go-podcastr/internal/service"
)

type indexPage struct {
	pagesSrv *service.PagesSrv
	pw       pageWriter
}

func newIndexPage(i do.Injector) (indexPage, error) {
	return indexPage{
		pagesSrv: do.MustInvoke[*service.PagesSrv](i),
		pw:       do.MustInvoke[pageWriter](i),
	}, nil
}

func (i indexPage) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/", srvsupport.WrapNamed(i.indexPage, "web_index"))

	return r
}

func (i indexPage) indexPage(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	page, err := i.pagesSrv.Index(ctx)
	if err != nil {
		i.pw.writeError(w, r, logger, err, "get index page error")

		return
	}

	i.pw.writePage(ctx, w, page)
}
