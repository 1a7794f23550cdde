package service

//
// episodes_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/assert"
	"gitlab.com/kabes/go-podcastr/internal/common"
)

func TestEpisodesSrvList(t *testing.T) {
	ctx, i := prepareTests(t, newFakeSource(5))
	episodesSrv := do.MustInvoke[*EpisodesSrv](i)

	episodes, err := episodesSrv.ListEpisodes(ctx, 3)
	assert.NoErr(t, err)
	assert.Equal(t, episodes.IDs(), []string{"ep0", "ep1", "ep2"})

	ep := episodes[0]
	assert.Equal(t, ep.Title, "Episode 0")
	assert.Equal(t, ep.PublishedAt, "8 jan 21")
	assert.Equal(t, ep.Duration, 3600)
	assert.Equal(t, ep.DurationAsString, "01:00:00")
	assert.Equal(t, ep.URL, "https://example.com/0.m4a")
	assert.Equal(t, ep.Description, "<p>desc 0</p>")
	assert.Equal(t, ep.Thumbnail, "https://example.com/0.jpg")
}

func TestEpisodesSrvLatestAndRest(t *testing.T) {
	ctx, i := prepareTests(t, newFakeSource(5))
	episodesSrv := do.MustInvoke[*EpisodesSrv](i)

	latest, rest, err := episodesSrv.LatestAndRest(ctx, 4, 2)
	assert.NoErr(t, err)
	assert.Equal(t, latest.IDs(), []string{"ep0", "ep1"})
	assert.Equal(t, rest.IDs(), []string{"ep2", "ep3"})
}

func TestEpisodesSrvGet(t *testing.T) {
	src := newFakeSource(3)
	ctx, i := prepareTests(t, src)
	episodesSrv := do.MustInvoke[*EpisodesSrv](i)

	ep, err := episodesSrv.GetEpisode(ctx, "ep2")
	assert.NoErr(t, err)
	assert.Equal(t, ep.PublishedAt, "6 jan 21")
	assert.Equal(t, ep.DurationAsString, "01:00:02")

	_, err = episodesSrv.GetEpisode(ctx, "missing")
	assert.Err(t, err, common.ErrUnknownEpisode)

	_, err = episodesSrv.GetEpisode(ctx, "")
	assert.Err(t, err, common.ErrEmptyEpisodeID)

	src.setFail(true)

	_, err = episodesSrv.GetEpisode(ctx, "ep1")
	assert.Err(t, err, aerr.ErrRemote)
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		input, expected string
	}{
		{"", ""},
		{"  https://example.com/a.mp3 ", "https://example.com/a.mp3"},
		{"http://example.com/a.mp3", "http://example.com/a.mp3"},
		{"javascript:alert(1)", ""},
		{"/relative.mp3", ""},
		{"ftp://example.com/a.mp3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, SanitizeURL(tt.input), tt.expected)
		})
	}
}
