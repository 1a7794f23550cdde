package web

//
// web.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/server/srvsupport"
	"gitlab.com/kabes/go-podcastr/internal/service"
	"gitlab.com/kabes/go-podcastr/internal/web/templates"
)

//go:embed static/*
var staticFS embed.FS

type WEB struct {
	router *chi.Mux
}

func New(i do.Injector) (WEB, error) {
	indexPage := do.MustInvoke[indexPage](i)
	episodePages := do.MustInvoke[episodePages](i)
	playerPages := do.MustInvoke[playerPages](i)
	webroot := do.MustInvokeNamed[string](i, "server.webroot")

	router := chi.NewRouter()

	router.Mount("/", indexPage.Routes())
	router.Mount("/episodes", episodePages.Routes())
	router.Mount("/player", playerPages.Routes())

	fs := http.FileServerFS(staticFS)
	router.Method("GET", "/static/*", http.StripPrefix(webroot+"/web/", fs))

	return WEB{router: router}, nil
}

func (w *WEB) Routes() *chi.Mux {
	return w.router
}

//-----------------------------------------------

// ExportStatic copy static assets into `dir`/static.
func ExportStatic(dir string) ([]string, error) {
	var files []string

	err := fs.WalkDir(staticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		content, err := staticFS.ReadFile(path)
		if err != nil {
			return err //nolint:wrapcheck
		}

		fname := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil { //nolint:mnd
			return err //nolint:wrapcheck
		}

		if err := os.WriteFile(fname, content, 0o644); err != nil { //nolint:mnd,gosec
			return err //nolint:wrapcheck
		}

		files = append(files, fname)

		return nil
	})
	if err != nil {
		return files, aerr.ApplyFor(service.ErrExportError, err).WithMeta("dir", dir)
	}

	return files, nil
}

//-----------------------------------------------

// pageWriter write cached pages combined with session player.
type pageWriter struct {
	renderer   *templates.Renderer
	playersSrv *service.PlayersSrv
	webroot    string
}

func newPageWriter(i do.Injector) (pageWriter, error) {
	return pageWriter{
		renderer:   do.MustInvoke[*templates.Renderer](i),
		playersSrv: do.MustInvoke[*service.PlayersSrv](i),
		webroot:    do.MustInvokeNamed[string](i, "server.webroot"),
	}, nil
}

func (p pageWriter) writePage(ctx context.Context, w http.ResponseWriter, page *service.Page) {
	var status *service.Status

	if st, err := p.playersSrv.Status(ctx, common.ContextSession(ctx)); err == nil {
		status = &st
	} else if !errors.Is(err, common.ErrNoSession) {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("get player status failed")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	p.renderer.WriteDocument(w, page, status)
}

func (p pageWriter) writeError(w http.ResponseWriter, r *http.Request, logger *zerolog.Logger,
	err error, msg string,
) {
	srvsupport.LogError(logger, err, msg)

	code, usermsg := srvsupport.StatusForError(err)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	p.renderer.WriteError(w, code, usermsg)
}

// redirectBack redirect to page that send request (when it is one of our pages)
// or to index.
func (p pageWriter) redirectBack(w http.ResponseWriter, r *http.Request) {
	target := p.webroot + "/web/"

	if ref, err := url.Parse(r.Referer()); err == nil && ref.Path != "" &&
		(ref.Host == "" || ref.Host == r.Host) &&
		strings.HasPrefix(ref.Path, p.webroot+"/web") {
		target = ref.RequestURI()
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
