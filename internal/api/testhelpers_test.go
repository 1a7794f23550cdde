package api

//
// testhelpers_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/model"
	"gitlab.com/kabes/go-podcastr/internal/service"
	"gitlab.com/kabes/go-podcastr/internal/source"
)

const testSessionHeader = "X-Test-Session"

// newEpisodesAPI start fake remote episodes api with `n` episodes.
func newEpisodesAPI(t *testing.T, n int) *httptest.Server {
	t.Helper()

	records := make([]map[string]any, 0, n)
	for i := range n {
		records = append(records, map[string]any{
			"id":           fmt.Sprintf("ep%d", i),
			"title":        fmt.Sprintf("Episode %d", i),
			"members":      "Diego Fernandes",
			"published_at": time.Date(2021, 1, 8-i, 18, 0, 0, 0, time.UTC).Format(time.RFC3339),
			"thumbnail":    fmt.Sprintf("https://example.com/%d.jpg", i),
			"description":  "<p>description</p>",
			"file": map[string]any{
				"url":      fmt.Sprintf("https://example.com/%d.m4a", i),
				"type":     "audio/x-m4a",
				"duration": 3600 + i,
			},
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /episodes", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	})
	mux.HandleFunc("GET /episodes/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, rec := range records {
			if rec["id"] == r.PathValue("id") {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(rec)

				return
			}
		}

		http.NotFound(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

type fakeRenderer struct{}

func (fakeRenderer) RenderIndex(latest, rest model.Episodes) []byte {
	return []byte(strings.Join(append(latest.IDs(), rest.IDs()...), ","))
}

func (fakeRenderer) RenderEpisode(episode *model.Episode) []byte {
	return []byte(episode.ID)
}

func (fakeRenderer) RenderDocument(page *service.Page) []byte {
	return page.Body
}

// prepareTests create api handler backed by fake remote api. Session id is
// taken from testSessionHeader.
func prepareTests(t *testing.T, apiURL string) (http.Handler, *do.RootScope) {
	t.Helper()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Caller().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	srcConf := config.SourceConf{Kind: config.SourceAPI, APIURL: apiURL, Timeout: time.Second}
	if err := srcConf.Validate(); err != nil {
		t.Fatalf("validate source conf error: %#+v", err)
	}

	pagesConf := config.PagesConf{IndexLimit: 4}
	if err := pagesConf.Validate(); err != nil {
		t.Fatalf("validate pages conf error: %#+v", err)
	}

	i := do.New(source.Package, service.Package, Package)
	do.ProvideValue(i, &srcConf)
	do.ProvideValue(i, &pagesConf)
	do.ProvideValue(i, &config.PlayersConf{IdleTimeout: time.Hour})
	do.ProvideValue[service.PageRenderer](i, fakeRenderer{})

	api := do.MustInvoke[API](i)
	router := api.Routes()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := log.Logger.WithContext(r.Context())
		if sid := r.Header.Get(testSessionHeader); sid != "" {
			ctx = common.ContextWithSession(ctx, sid)
		}

		router.ServeHTTP(w, r.WithContext(ctx))
	})

	return handler, i
}

func doRequest(t *testing.T, handler http.Handler, method, path, session, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequestWithContext(context.Background(), method, path, reader)
	req.Header.Set("Accept", "application/json")

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if session != "" {
		req.Header.Set(testSessionHeader, session)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) service.Status {
	t.Helper()

	var status service.Status
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode status error: %s; body: %q", err, rec.Body.String())
	}

	return status
}
