package common

//
// appctx.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
)

//nolint:gochecknoglobals
var ctxSessionKey = any("ctxSessionKey")

// ContextSession return session id from context.
func ContextSession(ctx context.Context) string {
	value, ok := ctx.Value(ctxSessionKey).(string)
	if ok {
		return value
	}

	return ""
}

// ContextWithSession create new context with session id.
func ContextWithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxSessionKey, sessionID)
}
