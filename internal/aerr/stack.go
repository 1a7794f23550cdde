package aerr

//
// stack.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
)

const (
	maxStackDepth = 10
	// skip runtime.Callers, callerStack and constructor
	stackSkip = 3
)

//nolint:gochecknoglobals
var ignoredFrames = []string{
	"net/http.HandlerFunc.ServeHTTP",
	"runtime.goexit",
}

// callerStack return up to maxStackDepth frames as "file:line:func".
func callerStack() []string {
	pcs := make([]uintptr, 2*maxStackDepth) //nolint:mnd

	n := runtime.Callers(stackSkip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]string, 0, maxStackDepth)

	for len(stack) < maxStackDepth {
		frame, more := frames.Next()

		if !slices.Contains(ignoredFrames, frame.Function) {
			stack = append(stack, filepath.Base(frame.File)+":"+strconv.Itoa(frame.Line)+":"+shortFuncName(frame.Function))
		}

		if !more {
			break
		}
	}

	return stack
}

// shortFuncName strip package path from function name.
func shortFuncName(name string) string {
	name = name[strings.LastIndex(name, "/")+1:]
	_, fn, found := strings.Cut(name, ".")

	if !found {
		return name
	}

	return fn
}
