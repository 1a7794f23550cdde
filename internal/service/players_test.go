package service

//
// players_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"testing"
	"time"

	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/assert"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/model"
	"gitlab.com/kabes/go-podcastr/internal/player"
)

func TestPlayersSrvSessions(t *testing.T) {
	ctx, i := prepareTests(t, newFakeSource(1))
	playersSrv := do.MustInvoke[*PlayersSrv](i)

	_, err := playersSrv.Get(ctx, "")
	assert.Err(t, err, common.ErrNoSession)

	p1, err := playersSrv.Get(ctx, "s1")
	assert.NoErr(t, err)

	p1again, _ := playersSrv.Get(ctx, "s1")
	assert.True(t, p1 == p1again)

	p2, _ := playersSrv.Get(ctx, "s2")
	assert.True(t, p1 != p2)
	assert.Equal(t, playersSrv.Count(), 2)

	// sessions are independent
	_, err = playersSrv.Play(ctx, "s1", &model.Episode{ID: "a"})
	assert.NoErr(t, err)
	assert.Equal(t, p1.State.Current().ID, "a")
	assert.Nil(t, p2.State.Current())
}

func TestPlayersSrvActions(t *testing.T) {
	ctx, i := prepareTests(t, newFakeSource(1))
	playersSrv := do.MustInvoke[*PlayersSrv](i)

	episodes := model.Episodes{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	status, err := playersSrv.PlayList(ctx, "s1", episodes, 1)
	assert.NoErr(t, err)
	assert.Equal(t, status.Index, 1)
	assert.True(t, status.Playing)
	assert.Equal(t, status.Command, player.CommandLoad)

	status, err = playersSrv.Apply(ctx, "s1", player.ActionNext)
	assert.NoErr(t, err)
	assert.Equal(t, status.Current().ID, "c")
	assert.False(t, status.HasNext)

	_, err = playersSrv.Apply(ctx, "s1", player.Action("bad"))
	assert.Err(t, err, common.ErrUnknownAction)

	status, err = playersSrv.MediaLoaded(ctx, "s1", "c")
	assert.NoErr(t, err)
	assert.Equal(t, status.Command, player.CommandPlay)

	status, err = playersSrv.ReportMedia(ctx, "s1", player.MediaPlay, "c")
	assert.NoErr(t, err)
	assert.Equal(t, status.Command, player.CommandNone)

	status, err = playersSrv.Apply(ctx, "s1", player.ActionTogglePlay)
	assert.NoErr(t, err)
	assert.Equal(t, status.Command, player.CommandPause)

	status, err = playersSrv.Status(ctx, "s1")
	assert.NoErr(t, err)
	assert.False(t, status.Playing)

	status, err = playersSrv.MediaReset(ctx, "s1")
	assert.NoErr(t, err)
	assert.Equal(t, status.Command, player.CommandLoad)
}

func TestPlayersSrvCleanup(t *testing.T) {
	ctx, i := prepareTests(t, newFakeSource(1))
	playersSrv := do.MustInvoke[*PlayersSrv](i)
	clock := newFakeClock()
	playersSrv.now = clock.Now

	_, _ = playersSrv.Get(ctx, "s1")
	_, _ = playersSrv.Get(ctx, "s2")

	clock.Advance(50 * time.Minute)

	_, _ = playersSrv.Get(ctx, "s2")

	clock.Advance(20 * time.Minute)

	assert.Equal(t, playersSrv.Cleanup(ctx), 1)
	assert.Equal(t, playersSrv.Count(), 1)

	clock.Advance(2 * time.Hour)

	assert.Equal(t, playersSrv.Cleanup(ctx), 1)
	assert.Equal(t, playersSrv.Count(), 0)
}

func TestPlayersSrvKeep(t *testing.T) {
	ctx, i := prepareTests(t, newFakeSource(1))
	playersSrv := do.MustInvoke[*PlayersSrv](i)
	clock := newFakeClock()
	playersSrv.now = clock.Now

	pl, err := playersSrv.Get(ctx, "s1")
	assert.NoErr(t, err)

	clock.Advance(50 * time.Minute)
	playersSrv.Keep("s1", pl)
	clock.Advance(50 * time.Minute)

	assert.Equal(t, playersSrv.Cleanup(ctx), 0)

	clock.Advance(2 * time.Hour)
	assert.Equal(t, playersSrv.Cleanup(ctx), 1)

	// stream still open on removed player; session get the same state back
	playersSrv.Keep("s1", pl)

	got, err := playersSrv.Get(ctx, "s1")
	assert.NoErr(t, err)
	assert.True(t, got == pl)
	assert.Equal(t, playersSrv.Count(), 1)
}
