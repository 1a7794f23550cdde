package api

//
// requests.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"strings"

	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/player"
)

const (
	// mediaLoaded is reported when element loaded episode on command.
	mediaLoaded = "loaded"
	// mediaReset is reported when element was created (i.e. on page load).
	mediaReset = "reset"
)

type mediaReport struct {
	Event     string `json:"event"`
	EpisodeID string `json:"episode_id"`
}

func (m *mediaReport) sanitize() {
	m.Event = strings.ToLower(strings.TrimSpace(m.Event))
	m.EpisodeID = strings.TrimSpace(m.EpisodeID)
}

func (m *mediaReport) validate() error {
	switch m.Event {
	case "":
		return aerr.ErrValidation.WithUserMsg("missing event")
	case mediaReset:
		return nil
	case mediaLoaded, string(player.MediaPlay), string(player.MediaPause), string(player.MediaEnded):
		if m.EpisodeID == "" {
			return common.ErrEmptyEpisodeID
		}

		return nil
	default:
		return player.ErrUnknownMediaEvent.WithMeta("event", m.Event)
	}
}

//-------------------------------------------------------------

type playRequest struct {
	EpisodeID string `json:"episode_id"`
}

func (p *playRequest) validate() error {
	p.EpisodeID = strings.TrimSpace(p.EpisodeID)
	if p.EpisodeID == "" {
		return common.ErrEmptyEpisodeID
	}

	return nil
}

//-------------------------------------------------------------

// playListRequest select episode from index page by index; EpisodeID (optional)
// take precedence when episode is still on page. Index out of range is clamped
// to the page like in html form.
type playListRequest struct {
	Index     int    `json:"index"`
	EpisodeID string `json:"episode_id"`
}

func (p *playListRequest) validate() error {
	p.EpisodeID = strings.TrimSpace(p.EpisodeID)

	return nil
}
