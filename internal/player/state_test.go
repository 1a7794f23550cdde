package player

//
// state_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"testing"

	"gitlab.com/kabes/go-podcastr/internal/assert"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/model"
)

func testEpisodes(n int) model.Episodes {
	eps := make(model.Episodes, 0, n)
	for i := range n {
		eps = append(eps, model.Episode{ID: fmt.Sprintf("ep%d", i), Title: fmt.Sprintf("Episode %d", i)})
	}

	return eps
}

func TestPlay(t *testing.T) {
	s := New()
	s.PlayList(testEpisodes(3), 2)
	s.ToggleLoop()

	ep := model.Episode{ID: "x"}
	s.Play(ep)

	snap := s.Snapshot()
	assert.Equal(t, snap.Episodes, model.Episodes{ep})
	assert.Equal(t, snap.Index, 0)
	assert.True(t, snap.Playing)
	// other flags are not changed
	assert.True(t, snap.Looping)
	assert.False(t, snap.HasNext)
	assert.False(t, snap.HasPrevious)
}

func TestPlayList(t *testing.T) {
	tests := []struct {
		len      int
		index    int
		expIndex int
		playing  bool
	}{
		{3, 0, 0, true},
		{3, 2, 2, true},
		{3, 3, 2, true},
		{3, -1, 0, true},
		{0, 0, 0, false},
		{0, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt), func(t *testing.T) {
			s := New()
			s.PlayList(testEpisodes(tt.len), tt.index)

			snap := s.Snapshot()
			assert.Equal(t, len(snap.Episodes), tt.len)
			assert.Equal(t, snap.Index, tt.expIndex)
			assert.Equal(t, snap.Playing, tt.playing)
		})
	}
}

func TestPlayListCopyInput(t *testing.T) {
	eps := testEpisodes(2)

	s := New()
	s.PlayList(eps, 0)

	eps[0].ID = "changed"

	assert.Equal(t, s.Current().ID, "ep0")
}

func TestPlayNextAtEnd(t *testing.T) {
	s := New()
	s.PlayList(testEpisodes(3), 2)
	ver := s.Snapshot().Version

	s.PlayNext()

	snap := s.Snapshot()
	assert.Equal(t, snap.Index, 2)
	assert.False(t, snap.HasNext)
	assert.True(t, snap.HasPrevious)
	assert.Equal(t, snap.Version, ver)
}

func TestPlayNextSequential(t *testing.T) {
	s := New()
	s.PlayList(testEpisodes(3), 0)

	s.PlayNext()
	assert.Equal(t, s.Current().ID, "ep1")

	s.PlayNext()
	assert.Equal(t, s.Current().ID, "ep2")
	assert.False(t, s.HasNext())
}

func TestPlayNextShuffle(t *testing.T) {
	s := New()
	s.PlayList(testEpisodes(5), 4)
	s.ToggleShuffle()

	for range 100 {
		s.PlayNext()

		idx := s.Snapshot().Index
		assert.True(t, idx >= 0 && idx < 5)
	}
}

func TestPlayNextShuffleInjectedRandom(t *testing.T) {
	var calledWith int

	s := New(WithRandom(func(n int) int {
		calledWith = n

		return 1
	}))
	s.PlayList(testEpisodes(4), 3)
	s.ToggleShuffle()
	s.PlayNext()

	assert.Equal(t, calledWith, 4)
	assert.Equal(t, s.Snapshot().Index, 1)
}

func TestPlayNextShuffleEmpty(t *testing.T) {
	s := New(WithRandom(func(int) int {
		t.Fatal("random should not be called for empty playlist")

		return 0
	}))
	s.ToggleShuffle()
	s.PlayNext()

	assert.Equal(t, s.Snapshot().Index, 0)
	assert.Nil(t, s.Current())
}

func TestPlayPrevious(t *testing.T) {
	s := New()
	s.PlayList(testEpisodes(3), 1)

	s.PlayPrevious()
	assert.Equal(t, s.Snapshot().Index, 0)
	assert.False(t, s.HasPrevious())

	ver := s.Snapshot().Version

	s.PlayPrevious()
	assert.Equal(t, s.Snapshot().Index, 0)
	assert.Equal(t, s.Snapshot().Version, ver)
}

func TestHasNextHasPrevious(t *testing.T) {
	tests := []struct {
		index, length int
		next, prev    bool
	}{
		{0, 0, false, false},
		{0, 1, false, false},
		{0, 2, true, false},
		{1, 2, false, true},
		{1, 3, true, true},
		{2, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt), func(t *testing.T) {
			assert.Equal(t, HasNext(tt.index, tt.length), tt.next)
			assert.Equal(t, HasPrevious(tt.index), tt.prev)

			s := New()
			s.PlayList(testEpisodes(tt.length), tt.index)
			assert.Equal(t, s.HasNext(), tt.next)
			assert.Equal(t, s.HasPrevious(), tt.prev)
		})
	}
}

func TestToggleTwiceRestore(t *testing.T) {
	s := New()
	s.PlayList(testEpisodes(2), 1)
	before := s.Snapshot()

	s.TogglePlay()
	s.TogglePlay()
	s.ToggleLoop()
	s.ToggleLoop()
	s.ToggleShuffle()
	s.ToggleShuffle()

	after := s.Snapshot()
	assert.Equal(t, after.Playing, before.Playing)
	assert.Equal(t, after.Looping, before.Looping)
	assert.Equal(t, after.Shuffling, before.Shuffling)
	assert.Equal(t, after.Index, before.Index)
	assert.Equal(t, after.Version, before.Version+6)
}

func TestClear(t *testing.T) {
	s := New()
	s.PlayList(testEpisodes(3), 2)
	s.Clear()

	snap := s.Snapshot()
	assert.True(t, snap.IsEmpty())
	assert.Equal(t, snap.Index, 0)
	assert.False(t, snap.Playing)
	assert.Nil(t, snap.Current())
	assert.Equal(t, snap.Episodes, model.Episodes{})

	ver := snap.Version

	s.Clear()
	assert.Equal(t, s.Snapshot().Version, ver)
}

func TestSetPlayingState(t *testing.T) {
	s := New()
	s.Play(model.Episode{ID: "a"})
	ver := s.Snapshot().Version

	s.SetPlayingState(true)
	assert.Equal(t, s.Snapshot().Version, ver)

	s.SetPlayingState(false)
	assert.False(t, s.Snapshot().Playing)
	assert.Equal(t, s.Snapshot().Version, ver+1)
}

func TestSubscribe(t *testing.T) {
	s := New()

	var got []Snapshot

	unsubscribe := s.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	s.Play(model.Episode{ID: "a"})
	s.TogglePlay()
	s.PlayNext() // no change, no notification

	assert.Equal(t, len(got), 2)
	assert.Equal(t, got[0].Current().ID, "a")
	assert.True(t, got[0].Playing)
	assert.False(t, got[1].Playing)

	unsubscribe()
	s.TogglePlay()

	assert.Equal(t, len(got), 2)
}

func TestSubscriberMayReadState(t *testing.T) {
	s := New()

	var current *model.Episode

	s.Subscribe(func(Snapshot) {
		current = s.Current()
	})

	s.Play(model.Episode{ID: "a"})

	assert.Equal(t, current.ID, "a")
}

func TestApply(t *testing.T) {
	s := New()
	s.PlayList(testEpisodes(3), 0)

	assert.NoErr(t, s.Apply(ActionNext))
	assert.Equal(t, s.Snapshot().Index, 1)

	assert.NoErr(t, s.Apply(ActionPrevious))
	assert.Equal(t, s.Snapshot().Index, 0)

	assert.NoErr(t, s.Apply(ActionToggleLoop))
	assert.True(t, s.Snapshot().Looping)

	assert.NoErr(t, s.Apply(ActionToggleShuffle))
	assert.True(t, s.Snapshot().Shuffling)

	assert.NoErr(t, s.Apply(ActionTogglePlay))
	assert.False(t, s.Snapshot().Playing)

	assert.NoErr(t, s.Apply(ActionClear))
	assert.True(t, s.Snapshot().IsEmpty())

	assert.Err(t, s.Apply(Action("rewind")), common.ErrUnknownAction)
}
