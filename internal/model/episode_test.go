package model

//
// episode_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"

	"gitlab.com/kabes/go-podcastr/internal/assert"
)

func testEpisodes() Episodes {
	return Episodes{{ID: "a"}, {ID: "b"}, {ID: "c"}}
}

func TestEpisodesIDs(t *testing.T) {
	assert.Equal(t, testEpisodes().IDs(), []string{"a", "b", "c"})
	assert.Equal(t, Episodes{}.IDs(), []string{})
}

func TestEpisodesFind(t *testing.T) {
	eps := testEpisodes()

	ep, ok := eps.Find("b")
	assert.True(t, ok)
	assert.Equal(t, ep.ID, "b")

	_, ok = eps.Find("x")
	assert.False(t, ok)

	assert.Equal(t, eps.Index("c"), 2)
	assert.Equal(t, eps.Index("x"), -1)
}

func TestEpisodesSplit(t *testing.T) {
	eps := testEpisodes()

	latest, rest := eps.Split(2)
	assert.Equal(t, latest.IDs(), []string{"a", "b"})
	assert.Equal(t, rest.IDs(), []string{"c"})

	latest, rest = eps.Split(5)
	assert.Equal(t, len(latest), 3)
	assert.Equal(t, len(rest), 0)

	latest, rest = eps.Split(-1)
	assert.Equal(t, len(latest), 0)
	assert.Equal(t, len(rest), 3)
}
