package player

//
// actions.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"gitlab.com/kabes/go-podcastr/internal/common"
)

// Action is a simple (argument-less) operation on State.
type Action string

const (
	ActionTogglePlay    = Action("toggle-play")
	ActionToggleLoop    = Action("toggle-loop")
	ActionToggleShuffle = Action("toggle-shuffle")
	ActionNext          = Action("next")
	ActionPrevious      = Action("previous")
	ActionClear         = Action("clear")
)

// Actions list all supported simple actions.
//
//nolint:gochecknoglobals
var Actions = []Action{
	ActionTogglePlay, ActionToggleLoop, ActionToggleShuffle,
	ActionNext, ActionPrevious, ActionClear,
}

// Apply execute action on state.
func (s *State) Apply(action Action) error {
	switch action {
	case ActionTogglePlay:
		s.TogglePlay()
	case ActionToggleLoop:
		s.ToggleLoop()
	case ActionToggleShuffle:
		s.ToggleShuffle()
	case ActionNext:
		s.PlayNext()
	case ActionPrevious:
		s.PlayPrevious()
	case ActionClear:
		s.Clear()
	default:
		return common.ErrUnknownAction.WithMeta("action", action)
	}

	return nil
}
