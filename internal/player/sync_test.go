package player

//
// sync_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"sync"
	"testing"

	"gitlab.com/kabes/go-podcastr/internal/assert"
	"gitlab.com/kabes/go-podcastr/internal/model"
)

func TestMediaSyncEmpty(t *testing.T) {
	ms := NewMediaSync(New())

	assert.Equal(t, ms.Command(), CommandNone)
}

func TestMediaSyncLoadPlay(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)

	s.Play(model.Episode{ID: "a"})
	assert.Equal(t, ms.Command(), CommandLoad)

	ms.Loaded("a")
	assert.Equal(t, ms.Command(), CommandPlay)

	cmd, err := ms.Report(MediaPlay, "a")
	assert.NoErr(t, err)
	assert.Equal(t, cmd, CommandNone)
	assert.True(t, s.Snapshot().Playing)
}

func TestMediaSyncReportNoFeedback(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)
	s.Play(model.Episode{ID: "a"})

	for _, ev := range []MediaEvent{MediaPlay, MediaPause, MediaPlay, MediaPause} {
		cmd, err := ms.Report(ev, "a")
		assert.NoErr(t, err)
		assert.Equal(t, cmd, CommandNone)
		assert.Equal(t, s.Snapshot().Playing, ev == MediaPlay)
	}
}

func TestMediaSyncIntentChange(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)
	s.Play(model.Episode{ID: "a"})

	_, _ = ms.Report(MediaPlay, "a")

	s.TogglePlay()
	assert.Equal(t, ms.Command(), CommandPause)

	// element executed command and reported it
	cmd, _ := ms.Report(MediaPause, "a")
	assert.Equal(t, cmd, CommandNone)
	assert.False(t, s.Snapshot().Playing)

	s.TogglePlay()
	assert.Equal(t, ms.Command(), CommandPlay)

	cmd, _ = ms.Report(MediaPlay, "a")
	assert.Equal(t, cmd, CommandNone)
}

func TestMediaSyncOtherEpisode(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)
	s.Play(model.Episode{ID: "a"})

	// stale element still playing previous episode
	cmd, err := ms.Report(MediaPlay, "old")
	assert.NoErr(t, err)
	assert.Equal(t, cmd, CommandLoad)
	assert.True(t, s.Snapshot().Playing)
}

func TestMediaSyncClearPause(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)
	s.Play(model.Episode{ID: "a"})
	_, _ = ms.Report(MediaPlay, "a")

	s.Clear()
	assert.Equal(t, ms.Command(), CommandPause)

	cmd, _ := ms.Report(MediaPause, "a")
	assert.Equal(t, cmd, CommandNone)
}

func TestMediaSyncEndedNext(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)
	s.PlayList(testEpisodes(2), 0)
	_, _ = ms.Report(MediaPlay, "ep0")

	cmd, err := ms.Report(MediaEnded, "ep0")
	assert.NoErr(t, err)
	assert.Equal(t, cmd, CommandLoad)
	assert.Equal(t, s.Current().ID, "ep1")
	assert.True(t, s.Snapshot().Playing)
}

func TestMediaSyncEndedLast(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)
	s.PlayList(testEpisodes(2), 1)
	_, _ = ms.Report(MediaPlay, "ep1")

	cmd, err := ms.Report(MediaEnded, "ep1")
	assert.NoErr(t, err)
	assert.Equal(t, cmd, CommandNone)
	assert.Equal(t, s.Current().ID, "ep1")
	assert.False(t, s.Snapshot().Playing)
}

func TestMediaSyncEndedLoop(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)
	s.PlayList(testEpisodes(2), 0)
	s.ToggleLoop()
	_, _ = ms.Report(MediaPlay, "ep0")

	cmd, err := ms.Report(MediaEnded, "ep0")
	assert.NoErr(t, err)
	assert.Equal(t, cmd, CommandRestart)
	assert.Equal(t, s.Current().ID, "ep0")
	assert.True(t, s.Snapshot().Playing)
	assert.Equal(t, ms.Command(), CommandNone)
}

func TestMediaSyncEndedShuffle(t *testing.T) {
	s := New(WithRandom(func(int) int { return 0 }))
	ms := NewMediaSync(s)
	s.PlayList(testEpisodes(3), 2)
	s.ToggleShuffle()
	_, _ = ms.Report(MediaPlay, "ep2")

	cmd, _ := ms.Report(MediaEnded, "ep2")
	assert.Equal(t, cmd, CommandLoad)
	assert.Equal(t, s.Current().ID, "ep0")
}

func TestMediaSyncUnknownEvent(t *testing.T) {
	ms := NewMediaSync(New())

	_, err := ms.Report(MediaEvent("seek"), "a")
	assert.Err(t, err, ErrUnknownMediaEvent)
}

func TestMediaSyncReset(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)
	s.Play(model.Episode{ID: "a"})

	ms.Loaded("a")
	_, _ = ms.Report(MediaPlay, "a")
	assert.Equal(t, ms.Command(), CommandNone)

	ms.Reset()
	assert.Equal(t, ms.Command(), CommandLoad)

	ms.Loaded("a")
	assert.Equal(t, ms.Command(), CommandPlay)
}

func TestMediaSyncEndedSingleChange(t *testing.T) {
	s := New(WithRandom(func(int) int { return 1 }))
	ms := NewMediaSync(s)
	s.PlayList(testEpisodes(3), 0)
	s.ToggleShuffle()
	_, _ = ms.Report(MediaPlay, "ep0")

	var snaps []Snapshot

	unsubscribe := s.Subscribe(func(snap Snapshot) { snaps = append(snaps, snap) })
	defer unsubscribe()

	cmd, err := ms.Report(MediaEnded, "ep0")
	assert.NoErr(t, err)
	assert.Equal(t, cmd, CommandLoad)

	// next episode and playing flag are published together
	assert.Equal(t, len(snaps), 1)
	assert.Equal(t, snaps[0].Index, 1)
	assert.True(t, snaps[0].Playing)
}

func TestMediaSyncReportConcurrentActions(t *testing.T) {
	s := New()
	ms := NewMediaSync(s)
	s.Play(model.Episode{ID: "a"})
	ms.Loaded("a")

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			for range 100 {
				s.TogglePlay()
			}
		}()

		go func() {
			defer wg.Done()

			for j := range 100 {
				ev := MediaPlay
				if (i+j)%2 == 1 {
					ev = MediaPause
				}

				cmd, err := ms.Report(ev, "a")
				assert.NoErr(t, err)
				assert.True(t, cmd == CommandNone || cmd == CommandPlay || cmd == CommandPause)
			}
		}()
	}

	wg.Wait()

	// last report set intent to the state of element
	cmd, err := ms.Report(MediaPause, "a")
	assert.NoErr(t, err)
	assert.Equal(t, cmd, CommandNone)
	assert.False(t, s.Snapshot().Playing)
	assert.Equal(t, ms.Command(), CommandNone)
}
