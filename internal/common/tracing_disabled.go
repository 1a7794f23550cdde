//go:build !trace

package common

//
// tracing_disabled.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
)

// TracingAvailable is true only in binaries built with `trace` tag.
const TracingAvailable = false

func TraceRegion(context.Context, string) func() { return func() {} }

func TraceLazyPrintf(context.Context, string, ...any) {}

func TraceErrorLazyPrintf(context.Context, string, ...any) {}

type EventLog struct{}

func NewEventLog(string, string) *EventLog { return nil }

func (e *EventLog) Printf(string, ...any) {}

func (e *EventLog) Errorf(string, ...any) {}

func (e *EventLog) Close() {}

func ContextWithEventLog(ctx context.Context, _ *EventLog) context.Context { return ctx }

func EventLogPrintf(context.Context, string, ...any) {}

func EventLogErrorf(context.Context, string, ...any) {}
