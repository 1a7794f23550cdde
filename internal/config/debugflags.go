package config

//
// debugflags.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gitlab.com/kabes/go-podcastr/internal/common"
)

type DebugFlag string

const (
	// DebugMsgBody log request and response body and headers.
	DebugMsgBody = DebugFlag("logbody")
	// DebugDo log injector events and mount /debug/do.
	DebugDo = DebugFlag("do")
	// DebugGo mount /debug/pprof.
	DebugGo = DebugFlag("go")
	// DebugRouter print routes on start.
	DebugRouter = DebugFlag("router")
	// DebugCache log page cache hits and regenerations.
	DebugCache = DebugFlag("cache")
	// DebugFlightRecorder dump flight recorder for slow requests.
	DebugFlightRecorder = DebugFlag("flighrecorder")
	// DebugTrace trace requests with net/trace.
	DebugTrace = DebugFlag("trace")

	DebugAll = DebugFlag("all")
)

//nolint:gochecknoglobals
var knownDebugFlags = []DebugFlag{
	DebugMsgBody, DebugDo, DebugGo, DebugRouter, DebugCache,
	DebugFlightRecorder, DebugTrace, DebugAll,
}

// DebugFlags is set of enabled debug flags; "all" enable every one.
type DebugFlags []DebugFlag

// ParseDebugFlags parse comma separated list of flags. Unknown flags are
// reported and ignored.
func ParseDebugFlags(flags string) DebugFlags {
	var df DebugFlags

	for _, f := range strings.Split(flags, ",") {
		flag := DebugFlag(strings.ToLower(strings.TrimSpace(f)))
		if flag == "" {
			continue
		}

		if !slices.Contains(knownDebugFlags, flag) {
			log.Logger.Warn().Str("flag", string(flag)).Msg("unknown debug flag")

			continue
		}

		df = append(df, flag)
	}

	df = lo.Uniq(df)

	if !common.TracingAvailable && (df.HasFlag(DebugTrace) || df.HasFlag(DebugFlightRecorder)) {
		log.Logger.Warn().Msg("flight recorder and tracing disabled by build tags")
	}

	return df
}

func (d DebugFlags) HasFlag(flag DebugFlag) bool {
	return slices.Contains(d, DebugAll) || slices.Contains(d, flag)
}

func (d DebugFlags) String() string {
	return strings.Join(lo.Map(d, func(f DebugFlag, _ int) string { return string(f) }), ",")
}
