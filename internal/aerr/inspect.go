package aerr

//
// inspect.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"
	"iter"
	"slices"

	"github.com/rs/zerolog"
)

// chain iterate over errors in err chain, starting from outermost.
func chain(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		for ; err != nil; err = errors.Unwrap(err) {
			if !yield(err) {
				return
			}
		}
	}
}

// appErrors iterate over AppErrors in err chain, starting from outermost.
func appErrors(err error) iter.Seq[AppError] {
	return func(yield func(AppError) bool) {
		for e := range chain(err) {
			if ae, ok := e.(AppError); ok { //nolint:errorlint
				if !yield(ae) {
					return
				}
			}
		}
	}
}

func HasTag(err error, tag string) bool {
	for ae := range appErrors(err) {
		if slices.Contains(ae.tags, tag) {
			return true
		}
	}

	return false
}

// GetUserMessage return the outermost message for user defined in err chain.
func GetUserMessage(err error) string {
	for ae := range appErrors(err) {
		if ae.userMsg != "" {
			return ae.userMsg
		}
	}

	return ""
}

// LogLevelForError select log level by error tags. Errors caused by request
// (bad input, unknown episode) are not logged as errors.
func LogLevelForError(err error) zerolog.Level {
	switch {
	case err == nil:
		return zerolog.DebugLevel
	case HasTag(err, InternalError), HasTag(err, ConfigurationError):
		return zerolog.ErrorLevel
	case HasTag(err, ValidationError), HasTag(err, NotFoundError):
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

// describeChain return messages of errors in chain, the deepest first; for
// AppErrors place of creation is appended.
func describeChain(err error) []string {
	var res []string

	for e := range chain(err) {
		ae, ok := e.(AppError) //nolint:errorlint
		switch {
		case !ok:
			res = append(res, e.Error())
		case ae.msg == "":
			continue
		case len(ae.stack) > 0:
			res = append(res, ae.msg+" ["+ae.stack[0]+"]")
		default:
			res = append(res, ae.msg)
		}
	}

	slices.Reverse(res)

	return res
}
