package config

//
// pages.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
)

const (
	DefaultPrerenderCount    = 2
	DefaultLatestCount       = 2
	DefaultIndexLimit        = 12
	DefaultEpisodeRevalidate = 24 * time.Hour
	DefaultIndexRevalidate   = 8 * time.Hour
	DefaultRefreshInterval   = 15 * time.Minute
	DefaultPlayerIdleTimeout = 24 * time.Hour
)

// PagesConf configure rendering and caching pages.
type PagesConf struct {
	// PrerenderCount is number of latest episodes rendered on start.
	PrerenderCount int
	// LatestCount is number of episodes shown as "latest" on index page.
	LatestCount int
	// IndexLimit is number of episodes loaded for index page.
	IndexLimit int

	EpisodeRevalidate time.Duration
	IndexRevalidate   time.Duration
	// RefreshInterval define how often stale pages are regenerated in background;
	// 0 disable background refresh.
	RefreshInterval time.Duration
}

func (c *PagesConf) Validate() error {
	if c.PrerenderCount < 0 {
		return aerr.ErrValidation.WithUserMsg("prerender count can't be negative")
	}

	if c.LatestCount <= 0 {
		c.LatestCount = DefaultLatestCount
	}

	if c.IndexLimit <= 0 {
		c.IndexLimit = DefaultIndexLimit
	}

	if c.EpisodeRevalidate <= 0 {
		c.EpisodeRevalidate = DefaultEpisodeRevalidate
	}

	if c.IndexRevalidate <= 0 {
		c.IndexRevalidate = DefaultIndexRevalidate
	}

	if c.RefreshInterval < 0 {
		return aerr.ErrValidation.WithUserMsg("refresh interval can't be negative")
	}

	return nil
}

func (c *PagesConf) MarshalZerologObject(event *zerolog.Event) {
	event.Int("prerender_count", c.PrerenderCount).
		Int("latest_count", c.LatestCount).
		Int("index_limit", c.IndexLimit).
		Dur("episode_revalidate", c.EpisodeRevalidate).
		Dur("index_revalidate", c.IndexRevalidate).
		Dur("refresh_interval", c.RefreshInterval)
}

//-------------------------------------------------------------

// PlayersConf configure per-session players.
type PlayersConf struct {
	// IdleTimeout is time after which not used player is removed.
	IdleTimeout time.Duration
}

func (c *PlayersConf) Validate() error {
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultPlayerIdleTimeout
	} else if c.IdleTimeout < time.Minute {
		return aerr.ErrValidation.WithUserMsg("player idle timeout must be at least one minute")
	}

	return nil
}
