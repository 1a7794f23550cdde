package server

//
// middlewares.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/config"
)

const sessionCookieName = "podcastr_session"

type (
	sessionMiddleware func(http.Handler) http.Handler
	logMiddleware     func(http.Handler) http.Handler
)

//-------------------------------------------------------------

// newRequestLogMiddleware log start and end of each request with request id
// and put logger into request context. With withBody request and response
// bodies and headers are logged on debug level; event streams bodies are
// never captured.
func newRequestLogMiddleware(withBody bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if shouldSkipLogRequest(request) {
				next.ServeHTTP(writer, request)

				return
			}

			start := time.Now()
			ctx := request.Context()
			requestID, _ := hlog.IDFromCtx(ctx)
			llog := log.With().Str(common.LogKeyReqID, requestID.String()).Logger()
			request = request.WithContext(llog.WithContext(ctx))

			startEvent := llog.Info().
				Str("url", request.URL.Redacted()).
				Str("remote", request.RemoteAddr).
				Str("method", request.Method)
			if withBody {
				startEvent = startEvent.Interface(common.LogKeyRequestHeaders, request.Header)
			}

			startEvent.Msg("webhandler: request start")

			var reqBody, respBody bytes.Buffer

			lrw := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)

			if withBody {
				request.Body = io.NopCloser(io.TeeReader(request.Body, &reqBody))

				if !isEventStream(request) {
					lrw.Tee(&respBody)
				}
			}

			defer func() {
				if withBody {
					llog.Debug().
						Str("request_body", reqBody.String()).
						Str("response_body", respBody.String()).
						Interface(common.LogKeyResponseHeaders, lrw.Header()).
						Msg("webhandler: request data")
				}

				llog.WithLevel(logLevelForStatus(lrw.Status())).
					Str("uri", request.RequestURI).
					Int("status", lrw.Status()).
					Int("size", lrw.BytesWritten()).
					Dur("duration", time.Since(start)).
					Msg("webhandler: request finished")
			}()

			next.ServeHTTP(lrw, request)
		})
	}
}

// logLevelForStatus return warn level for failed requests; unknown episodes
// and pages are normal.
func logLevelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest && status != http.StatusNotFound:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

//-------------------------------------------------------------

// shouldSkipLogRequest determine which request should not be logged: metrics,
// debug endpoints and static files.
func shouldSkipLogRequest(request *http.Request) bool {
	path := request.URL.Path

	return strings.Contains(path, "/metrics") ||
		strings.Contains(path, "/debug/") ||
		strings.Contains(path, "/web/static/")
}

func isEventStream(request *http.Request) bool {
	return strings.HasSuffix(request.URL.Path, "/player/events")
}

//-------------------------------------------------------------

func newLogMiddleware(i do.Injector) (logMiddleware, error) {
	cfg := do.MustInvoke[*config.ServerConf](i)

	return newRequestLogMiddleware(cfg.DebugFlags.HasFlag(config.DebugMsgBody)), nil
}

// newVerySimpleLogMiddleware log only finished requests; used for management endpoints.
func newVerySimpleLogMiddleware(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			start := time.Now()
			ctx := request.Context()
			requestID, _ := hlog.IDFromCtx(ctx)
			llog := log.With().Str(common.LogKeyReqID, requestID.String()).Str("server", name).Logger()
			request = request.WithContext(llog.WithContext(ctx))
			lrw := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)

			next.ServeHTTP(lrw, request)

			llog.Debug().
				Str("uri", request.RequestURI).
				Str("remote", request.RemoteAddr).
				Int("status", lrw.Status()).
				Dur("duration", time.Since(start)).
				Msg("mgmt request finished")
		})
	}
}

//-------------------------------------------------------------

func newRecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func(ctx context.Context) {
			rec := recover()
			if rec == nil {
				return
			}

			logger := log.Ctx(ctx)

			switch t := rec.(type) {
			case error:
				logger.Error().Err(t).Msg("panic when handling request")

				if errors.Is(t, http.ErrAbortHandler) {
					panic(t)
				}
			case string:
				logger.Error().Str("err", t).Msg("panic when handling request")
			default:
				logger.Error().Str("err", "unknown error").Msg("panic when handling request")
			}

			if req.Header.Get("Connection") != "Upgrade" {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}(req.Context())

		next.ServeHTTP(w, req)
	})
}

//-------------------------------------------------------------

func newSecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; img-src * data:; media-src *; frame-ancestors 'none'; form-action 'self'")

		next.ServeHTTP(w, req)
	})
}

//-------------------------------------------------------------

func newSessionMiddleware(i do.Injector) (sessionMiddleware, error) {
	cfg := do.MustInvoke[*config.ServerConf](i)

	sess, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  sessionCookieName,
		CookiePath:  cfg.MainServer.WebRoot + "/",
		Secure:      cfg.MainServer.UseSecureCookie(),
		SameSite:    http.SameSiteLaxMode,
		Maxlifetime: int64(cfg.SessionMaxLifetime.Seconds()),
	})
	if err != nil {
		return nil, fmt.Errorf("start session manager error: %w", err)
	}

	return sess, nil
}

// sessionContextMiddleware put session id into request context so players
// can be bound to the browser.
func sessionContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		if sess == nil {
			next.ServeHTTP(w, r)

			return
		}

		ctx := common.ContextWithSession(r.Context(), sess.ID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
