// Package player keep playback state: active playlist, current position and
// play/loop/shuffle flags.
package player

//
// state.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"math/rand/v2"
	"slices"
	"sync"

	"gitlab.com/kabes/go-podcastr/internal/model"
)

// HasNext report whether exists episode after index in playlist of given length.
func HasNext(index, length int) bool {
	return index+1 < length
}

// HasPrevious report whether exists episode before index.
func HasPrevious(index int) bool {
	return index > 0
}

//-------------------------------------------------------------

type Option func(*State)

// WithRandom set function used to select next episode in shuffle mode.
// fn must return value in [0, n).
func WithRandom(fn func(n int) int) Option {
	return func(s *State) {
		s.random = fn
	}
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// State is the playback state of one listener. Invariant: index is within
// playlist bounds or playlist is empty and index is 0.
type State struct {
	mu sync.Mutex

	episodes  model.Episodes
	index     int
	playing   bool
	looping   bool
	shuffling bool
	version   uint64

	random      func(n int) int
	subscribers []subscriber
	nextSubID   int
}

func New(opts ...Option) *State {
	s := &State{random: rand.IntN}

	for _, o := range opts {
		o(s)
	}

	return s
}

// Play replace playlist by one episode and start playing it.
func (s *State) Play(episode model.Episode) {
	s.update(func() bool {
		s.episodes = model.Episodes{episode}
		s.index = 0
		s.playing = true

		return true
	})
}

// PlayList replace playlist by list and select episode on index. Index out of
// range is clamped to the list bounds. Playback starts when list is not empty.
func (s *State) PlayList(list []model.Episode, index int) {
	s.update(func() bool {
		s.episodes = slices.Clone(list)
		s.index = clampIndex(index, len(list))
		s.playing = len(list) > 0

		return true
	})
}

// Clear remove all episodes from playlist and stop playback.
func (s *State) Clear() {
	s.update(func() bool {
		changed := len(s.episodes) > 0 || s.playing || s.index != 0
		s.episodes = nil
		s.index = 0
		s.playing = false

		return changed
	})
}

func (s *State) TogglePlay() {
	s.update(func() bool {
		s.playing = !s.playing

		return true
	})
}

func (s *State) ToggleLoop() {
	s.update(func() bool {
		s.looping = !s.looping

		return true
	})
}

func (s *State) ToggleShuffle() {
	s.update(func() bool {
		s.shuffling = !s.shuffling

		return true
	})
}

// SetPlayingState set playing flag; used to mirror media element state.
func (s *State) SetPlayingState(playing bool) {
	s.update(func() bool {
		changed := s.playing != playing
		s.playing = playing

		return changed
	})
}

// PlayNext select random episode when shuffling; otherwise the next one if exists.
func (s *State) PlayNext() {
	s.update(func() bool {
		prev := s.index

		switch {
		case s.shuffling && len(s.episodes) > 0:
			s.index = s.random(len(s.episodes))
		case HasNext(s.index, len(s.episodes)):
			s.index++
		}

		return prev != s.index
	})
}

// PlayPrevious select previous episode if exists.
func (s *State) PlayPrevious() {
	s.update(func() bool {
		if !HasPrevious(s.index) {
			return false
		}

		s.index--

		return true
	})
}

func (s *State) HasNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return HasNext(s.index, len(s.episodes))
}

func (s *State) HasPrevious() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return HasPrevious(s.index)
}

// Current return currently selected episode or nil when playlist is empty.
func (s *State) Current() *model.Episode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return currentEpisode(s.episodes, s.index)
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Subscribe register fn called with new snapshot after each change of state.
// fn is called outside of lock but must not block. Returned function remove
// subscription.
func (s *State) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id, fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool { return sub.id == id })
	}
}

// syncPlaying set playing flag when episodeID is the current episode.
// Return snapshot taken in the same critical section.
func (s *State) syncPlaying(episodeID string, playing bool) Snapshot {
	return s.update(func() bool {
		cur := currentEpisode(s.episodes, s.index)
		if cur == nil || cur.ID != episodeID || s.playing == playing {
			return false
		}

		s.playing = playing

		return true
	})
}

// advanceEnded move to next episode after episodeID finished. restart is set
// when current episode should be played again (looping).
func (s *State) advanceEnded(episodeID string) (Snapshot, bool) {
	restart := false

	snap := s.update(func() bool {
		cur := currentEpisode(s.episodes, s.index)
		if cur == nil || cur.ID != episodeID {
			return false
		}

		switch {
		case s.looping:
			restart = true

			return false
		case s.shuffling:
			s.index = s.random(len(s.episodes))
			s.playing = true
		case HasNext(s.index, len(s.episodes)):
			s.index++
			s.playing = true
		default:
			changed := s.playing
			s.playing = false

			return changed
		}

		return true
	})

	return snap, restart
}

// update apply fn under lock and notify subscribers when fn report change.
// Return state after fn.
func (s *State) update(fn func() bool) Snapshot {
	s.mu.Lock()

	if !fn() {
		snap := s.snapshot()
		s.mu.Unlock()

		return snap
	}

	s.version++
	snap := s.snapshot()
	subs := slices.Clone(s.subscribers)

	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}

	return snap
}

func (s *State) snapshot() Snapshot {
	episodes := s.episodes
	if episodes == nil {
		episodes = model.Episodes{}
	}

	return Snapshot{
		Episodes:    episodes,
		Index:       s.index,
		Playing:     s.playing,
		Looping:     s.looping,
		Shuffling:   s.shuffling,
		HasNext:     HasNext(s.index, len(s.episodes)),
		HasPrevious: HasPrevious(s.index),
		Version:     s.version,
	}
}

//-------------------------------------------------------------

// Snapshot is a consistent, read-only copy of State.
type Snapshot struct {
	Episodes    model.Episodes `json:"episodeList"`
	Index       int            `json:"currentEpisodeIndex"`
	Playing     bool           `json:"isPlaying"`
	Looping     bool           `json:"isLooping"`
	Shuffling   bool           `json:"isShuffling"`
	HasNext     bool           `json:"hasNext"`
	HasPrevious bool           `json:"hasPrevious"`
	Version     uint64         `json:"version"`
}

func (s Snapshot) Current() *model.Episode {
	return currentEpisode(s.Episodes, s.Index)
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Episodes) == 0
}

//-------------------------------------------------------------

func clampIndex(index, length int) int {
	if length == 0 {
		return 0
	}

	return min(max(index, 0), length-1)
}

func currentEpisode(episodes model.Episodes, index int) *model.Episode {
	if index < 0 || index >= len(episodes) {
		return nil
	}

	ep := episodes[index]

	return &ep
}
