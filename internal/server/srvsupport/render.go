package srvsupport

//
// render.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
)

const defaultMaxBodySize = 64 << 10

// RenderJSON encode v directly to w. Status set by render.Status is used.
// When encoding fail headers are already sent, so error is only logged.
func RenderJSON(w http.ResponseWriter, r *http.Request, v any) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if status, ok := ctx.Value(render.StatusCtxKey).(int); ok {
		w.WriteHeader(status)
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("encode json response failed")
	}
}

// DecodeJSON decode request body into v; body is limited to maxSize bytes
// (default 64KiB when maxSize <= 0).
func DecodeJSON(r *http.Request, v any, maxSize int64) error {
	if maxSize <= 0 {
		maxSize = defaultMaxBodySize
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxSize)

	return render.DecodeJSON(r.Body, v) //nolint:wrapcheck
}
