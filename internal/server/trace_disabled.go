//go:build !trace

package server

//
// trace_disabled.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"gitlab.com/kabes/go-podcastr/internal/config"
)

func passThrough(next http.Handler) http.Handler { return next }

func newTracingMiddleware(*config.ServerConf) func(http.Handler) http.Handler { return passThrough }

func newFRMiddleware() func(http.Handler) http.Handler { return passThrough }

func mountXTrace(chi.Router, string) {}
