// Package srvsupport contain helpers shared by web and api handlers.
package srvsupport

//
// httpsupport.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
)

// HandlerFunc is handler receiving request context and logger bound to request.
type HandlerFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger)

// WrapNamed convert handler to http.HandlerFunc. `name` and session id are put
// into logger context.
func WrapNamed(handler HandlerFunc, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lctx := hlog.FromRequest(r).With().Str("handler", name)

		if sid := common.ContextSession(r.Context()); sid != "" {
			lctx = lctx.Str(common.LogKeySessionID, sid)
		}

		logger := lctx.Logger()
		ctx := logger.WithContext(r.Context())

		handler(ctx, w, r.WithContext(ctx), &logger)
	}
}

// WantJSON check is client send or expect json.
func WantJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

type errorResponse struct {
	Error string `json:"error"`
}

// WriteError write error as json object or plain text, according to request.
// Empty msg is replaced by status text.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if msg == "" {
		msg = http.StatusText(code)
	}

	if !WantJSON(r) {
		http.Error(w, msg, code)

		return
	}

	render.Status(r, code)
	RenderJSON(w, r, &errorResponse{msg})
}

// tagStatus map error tags to http status; first matching wins.
//
//nolint:gochecknoglobals
var tagStatus = []struct {
	tag    string
	status int
}{
	{aerr.NotFoundError, http.StatusNotFound},
	{aerr.RemoteError, http.StatusBadGateway},
	{aerr.InternalError, http.StatusInternalServerError},
	{aerr.ValidationError, http.StatusBadRequest},
	{aerr.DataError, http.StatusBadRequest},
}

// StatusForError return http status and message for user appropriate for
// err. Details of unclassified errors are never shown.
func StatusForError(err error) (int, string) {
	if errors.Is(err, common.ErrUnknownEpisode) {
		return http.StatusNotFound, aerr.GetUserMessage(err)
	}

	for _, ts := range tagStatus {
		if aerr.HasTag(err, ts.tag) {
			return ts.status, aerr.GetUserMessage(err)
		}
	}

	return http.StatusInternalServerError, ""
}

// CheckAndWriteError write response for err.
func CheckAndWriteError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := StatusForError(err)
	WriteError(w, r, code, msg)
}

// LogError log err with level according to its tags.
func LogError(logger *zerolog.Logger, err error, msg string) {
	logger.WithLevel(aerr.LogLevelForError(err)).Err(err).Msg(msg)
}

// SessionID return id of session the request belong to.
func SessionID(r *http.Request) string {
	return common.ContextSession(r.Context())
}
