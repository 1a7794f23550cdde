package srvsupport

//
// httpsupport_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/assert"
	"gitlab.com/kabes/go-podcastr/internal/common"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"unknown episode", common.ErrUnknownEpisode.WithMeta("id", "x"), http.StatusNotFound, "episode not found"},
		{"remote", aerr.ApplyFor(aerr.ErrRemote, errors.New("conn refused")), http.StatusBadGateway,
			"episodes service unavailable"},
		{"validation", aerr.ErrValidation.WithUserMsg("bad input"), http.StatusBadRequest, "bad input"},
		{"data", common.ErrInvalidEpisode, http.StatusBadRequest, ""},
		{"internal", aerr.New("boom").WithTag(aerr.InternalError).WithUserMsg("failed"),
			http.StatusInternalServerError, "failed"},
		{"unknown", errors.New("secret details"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := StatusForError(tt.err)
			assert.Equal(t, code, tt.code)
			assert.Equal(t, msg, tt.msg)
		})
	}
}

func TestWriteErrorJSON(t *testing.T) {
	req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")

	rec := httptest.NewRecorder()
	CheckAndWriteError(rec, req, common.ErrUnknownEpisode)

	assert.Equal(t, rec.Code, http.StatusNotFound)
	assert.Equal(t, rec.Header().Get("Content-Type"), "application/json; charset=utf-8")
	assert.Equal(t, strings.TrimSpace(rec.Body.String()), `{"error":"episode not found"}`)
}

func TestWriteErrorPlain(t *testing.T) {
	req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/", nil)

	rec := httptest.NewRecorder()
	WriteError(rec, req, http.StatusBadGateway, "")

	assert.Equal(t, rec.Code, http.StatusBadGateway)
	assert.Equal(t, strings.TrimSpace(rec.Body.String()), "Bad Gateway")
}

func TestDecodeJSONLimit(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/",
		strings.NewReader(`{"name": "`+strings.Repeat("x", 100)+`"}`))
	assert.Err(t, DecodeJSON(req, &v, 16))

	req = httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/",
		strings.NewReader(`{"name": "abc"}`))
	assert.NoErr(t, DecodeJSON(req, &v, 1024))
	assert.Equal(t, v.Name, "abc")
}

func TestWantJSON(t *testing.T) {
	req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/", nil)
	assert.False(t, WantJSON(req))

	req.Header.Set("Accept", "text/html, application/json;q=0.9")
	assert.True(t, WantJSON(req))
}
