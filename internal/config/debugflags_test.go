package config

//
// debugflags_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"gitlab.com/kabes/go-podcastr/internal/assert"
)

func TestParseDebugFlags(t *testing.T) {
	tests := []struct {
		input       string
		str         string
		expected    []DebugFlag
		notexpected []DebugFlag
	}{
		{"", "", nil, []DebugFlag{DebugMsgBody, DebugDo, DebugRouter, DebugCache}},
		{"xxx", "", nil, []DebugFlag{DebugMsgBody, DebugDo, DebugRouter}},
		{"all", "all", []DebugFlag{DebugMsgBody, DebugDo, DebugRouter, DebugCache}, nil},
		{"do, GO ,do", "do,go", []DebugFlag{DebugDo, DebugGo}, []DebugFlag{DebugMsgBody, DebugRouter}},
		{"router,,logbody,bad", "router,logbody", []DebugFlag{DebugRouter, DebugMsgBody}, []DebugFlag{DebugCache}},
		{"cache", "cache", []DebugFlag{DebugCache}, []DebugFlag{DebugDo, DebugGo, DebugTrace}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			df := ParseDebugFlags(tt.input)

			assert.Equal(t, df.String(), tt.str)

			for _, e := range tt.expected {
				assert.True(t, df.HasFlag(e))
			}

			for _, e := range tt.notexpected {
				assert.False(t, df.HasFlag(e))
			}
		})
	}
}
