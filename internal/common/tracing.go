//go:build trace

package common

//
// tracing.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"runtime/trace"
	"strings"

	xtrace "golang.org/x/net/trace"
)

const TracingAvailable = true

// TraceRegion start runtime/trace region for task `name`; returned function
// end it.
func TraceRegion(ctx context.Context, name string) func() {
	if !trace.IsEnabled() {
		return func() {}
	}

	return trace.StartRegion(ctx, name).End
}

// TraceLazyPrintf log message to runtime trace and to request trace from ctx.
// Category of message is text before first colon in format.
func TraceLazyPrintf(ctx context.Context, format string, a ...any) {
	traceLog(ctx, false, format, a...)
}

func TraceErrorLazyPrintf(ctx context.Context, format string, a ...any) {
	traceLog(ctx, true, format, a...)
}

func traceLog(ctx context.Context, isError bool, format string, a ...any) {
	if trace.IsEnabled() {
		category, _, _ := strings.Cut(format, ":")
		if isError {
			category = "error " + category
		}

		trace.Logf(ctx, category, format, a...)
	}

	tr, ok := xtrace.FromContext(ctx)
	if !ok || tr == nil {
		return
	}

	tr.LazyPrintf(format, a...)

	if isError {
		tr.SetError()
	}
}

//-------------------------------------------------------------

// EventLog record events of background workers in /debug/events. Nil EventLog
// is valid and discard everything.
type EventLog struct {
	events xtrace.EventLog
}

func NewEventLog(family, title string) *EventLog {
	return &EventLog{xtrace.NewEventLog(family, title)}
}

func (e *EventLog) Printf(format string, a ...any) {
	if e != nil {
		e.events.Printf(format, a...)
	}
}

func (e *EventLog) Errorf(format string, a ...any) {
	if e != nil {
		e.events.Errorf(format, a...)
	}
}

func (e *EventLog) Close() {
	if e != nil {
		e.events.Finish()
	}
}

//-------------------------------------------------------------

type eventLogKey struct{}

func ContextWithEventLog(ctx context.Context, eventlog *EventLog) context.Context {
	return context.WithValue(ctx, eventLogKey{}, eventlog)
}

func eventLogFromContext(ctx context.Context) *EventLog {
	e, _ := ctx.Value(eventLogKey{}).(*EventLog)

	return e
}

// EventLogPrintf write message to event log from ctx, if any.
func EventLogPrintf(ctx context.Context, format string, a ...any) {
	eventLogFromContext(ctx).Printf(format, a...)
}

func EventLogErrorf(ctx context.Context, format string, a ...any) {
	eventLogFromContext(ctx).Errorf(format, a...)
}
