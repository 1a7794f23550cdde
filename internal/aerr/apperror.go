// Package aerr provide application error carrying tags, message for user,
// metadata and stack of place where it was created.
package aerr

//
// apperror.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// AppError is immutable; every With* method return modified copy.
type AppError struct {
	err     error
	msg     string
	userMsg string
	tags    []string
	meta    map[string]any
	stack   []string
}

// NewSimple create error without stack; used for predefined errors.
func NewSimple(msg string, args ...any) AppError {
	return AppError{msg: fmt.Sprintf(msg, args...)}
}

// New create error with stack.
func New(msg string, args ...any) AppError {
	return AppError{msg: fmt.Sprintf(msg, args...), stack: callerStack()}
}

// Wrapf create error wrapping err.
func Wrapf(err error, msg string, args ...any) AppError {
	return AppError{err: err, msg: fmt.Sprintf(msg, args...), stack: callerStack()}
}

// ApplyFor create copy of predefined error `base` wrapping err. Optional
// arguments replace msg and userMsg when not empty.
func ApplyFor(base AppError, err error, msg ...string) AppError {
	if err == nil {
		panic("aerr: ApplyFor called with nil error")
	}

	n := base.clone()
	n.err = err
	n.stack = callerStack()

	if len(msg) > 0 && msg[0] != "" {
		n.msg = msg[0]
	}

	if len(msg) > 1 && msg[1] != "" {
		n.userMsg = msg[1]
	}

	return n
}

func (a AppError) WithMsg(msg string, args ...any) AppError {
	n := a.clone()
	n.msg = fmt.Sprintf(msg, args...)

	return n
}

func (a AppError) WithUserMsg(msg string, args ...any) AppError {
	n := a.clone()
	n.userMsg = fmt.Sprintf(msg, args...)

	return n
}

func (a AppError) WithTag(tag string) AppError {
	if slices.Contains(a.tags, tag) {
		return a
	}

	n := a.clone()
	n.tags = append(n.tags, tag)

	return n
}

// WithMeta add key-value pairs attached to log entry. Not string keys are
// formatted with %v.
func (a AppError) WithMeta(keyval ...any) AppError {
	if len(keyval)%2 != 0 {
		panic("aerr: WithMeta require even number of arguments")
	}

	n := a.clone()
	if n.meta == nil {
		n.meta = make(map[string]any, len(keyval)/2) //nolint:mnd
	}

	for i := 0; i < len(keyval); i += 2 {
		key, ok := keyval[i].(string)
		if !ok {
			key = fmt.Sprint(keyval[i])
		}

		n.meta[key] = keyval[i+1]
	}

	return n
}

// Is match target when messages are equal and target tags, user message and
// wrapped error (if set) are present in a. Stack and metadata are ignored, so
// copies of predefined errors match the original.
func (a AppError) Is(target error) bool {
	t, ok := target.(AppError) //nolint:errorlint
	if !ok || t.msg != a.msg {
		return false
	}

	if t.userMsg != "" && t.userMsg != a.userMsg {
		return false
	}

	for _, tag := range t.tags {
		if !slices.Contains(a.tags, tag) {
			return false
		}
	}

	return t.err == nil || errors.Is(a.err, t.err)
}

func (a AppError) Error() string {
	switch {
	case a.msg != "" && a.err != nil:
		return a.msg + ": " + a.err.Error()
	case a.msg != "":
		return a.msg
	case a.err != nil:
		return a.err.Error()
	default:
		return "unknown error"
	}
}

func (a AppError) Unwrap() error {
	return a.err
}

// String return message for user if defined.
func (a AppError) String() string {
	if a.userMsg != "" {
		return a.userMsg
	}

	return a.Error()
}

// Format support %+v which print messages from whole chain with place where
// errors were created.
func (a AppError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = io.WriteString(s, strings.Join(describeChain(a), "\n"))

		return
	}

	_, _ = io.WriteString(s, a.Error())
}

func (a AppError) clone() AppError {
	n := a
	n.tags = slices.Clone(a.tags)
	n.meta = maps.Clone(a.meta)

	return n
}
