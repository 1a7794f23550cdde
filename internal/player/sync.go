package player

//
// sync.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"sync"

	"gitlab.com/kabes/go-podcastr/internal/aerr"
)

// MediaEvent is an event reported by audio element.
type MediaEvent string

const (
	MediaPlay  = MediaEvent("play")
	MediaPause = MediaEvent("pause")
	MediaEnded = MediaEvent("ended")
)

// Command is an instruction for audio element.
type Command string

const (
	CommandNone    = Command("")
	CommandLoad    = Command("load")
	CommandPlay    = Command("play")
	CommandPause   = Command("pause")
	CommandRestart = Command("restart")
)

var ErrUnknownMediaEvent = aerr.NewSimple("unknown media event").
	WithTag(aerr.ValidationError).
	WithUserMsg("unknown media event")

// MediaSync reconcile playing flag of State (user intent) with last known
// state of the audio element. Commands are computed only from the difference
// between both, so event reported by the element never produce command back.
type MediaSync struct {
	mu sync.Mutex

	state        *State
	loaded       string
	mediaPlaying bool
}

func NewMediaSync(state *State) *MediaSync {
	return &MediaSync{state: state}
}

func (m *MediaSync) State() *State {
	return m.state
}

// Report apply event from audio element playing episodeID and return command
// for the element. Playing flag is changed and command computed from one
// snapshot while holding the lock; concurrent action on State lands entirely
// before or after the report.
func (m *MediaSync) Report(event MediaEvent, episodeID string) (Command, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch event {
	case MediaPlay, MediaPause:
		playing := event == MediaPlay
		m.loaded, m.mediaPlaying = episodeID, playing

		return m.command(m.state.syncPlaying(episodeID, playing)), nil

	case MediaEnded:
		m.loaded, m.mediaPlaying = episodeID, false

		snap, restart := m.state.advanceEnded(episodeID)
		if restart {
			m.mediaPlaying = true

			return CommandRestart, nil
		}

		return m.command(snap), nil

	default:
		return CommandNone, ErrUnknownMediaEvent.WithMeta("event", event)
	}
}

// Command return instruction that bring audio element to the state of State.
func (m *MediaSync) Command() Command {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.command(m.state.Snapshot())
}

// Loaded mark episode as loaded by the element without changing playing state;
// used after executing CommandLoad.
func (m *MediaSync) Loaded(episodeID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded != episodeID {
		m.loaded = episodeID
		m.mediaPlaying = false
	}
}

// Reset forget state of the audio element; used when element is created again
// (i.e. after page reload) and nothing is loaded.
func (m *MediaSync) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loaded = ""
	m.mediaPlaying = false
}

func (m *MediaSync) command(snap Snapshot) Command {
	cur := snap.Current()
	if cur == nil {
		if m.mediaPlaying {
			return CommandPause
		}

		return CommandNone
	}

	switch {
	case cur.ID != m.loaded:
		return CommandLoad
	case snap.Playing && !m.mediaPlaying:
		return CommandPlay
	case !snap.Playing && m.mediaPlaying:
		return CommandPause
	default:
		return CommandNone
	}
}
