// Package source load episodes from remote services.
package source

//
// source.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-podcastr/internal/common"
)

const (
	SortPublishedAt = "published_at"
	OrderDesc       = "desc"
	OrderAsc        = "asc"
)

// ListQuery define which episodes should be loaded.
type ListQuery struct {
	// Limit is a max number of episodes; 0 = no limit.
	Limit int
	Sort  string
	Order string
}

// LatestEpisodes return query for n newest episodes.
func LatestEpisodes(n int) ListQuery {
	return ListQuery{Limit: n, Sort: SortPublishedAt, Order: OrderDesc}
}

func (q *ListQuery) MarshalZerologObject(event *zerolog.Event) {
	event.Int("limit", q.Limit).
		Str("sort", q.Sort).
		Str("order", q.Order)
}

// Source provide episodes. GetEpisode return common.ErrUnknownEpisode for not
// existing episodes.
type Source interface {
	ListEpisodes(ctx context.Context, query ListQuery) ([]EpisodeRecord, error)
	GetEpisode(ctx context.Context, id string) (EpisodeRecord, error)
}

//-------------------------------------------------------------

// EpisodeRecord is episode as delivered by remote service, before formatting.
type EpisodeRecord struct {
	ID          string
	Title       string
	Members     string
	PublishedAt time.Time
	Thumbnail   string
	Description string
	File        FileRecord
}

type FileRecord struct {
	URL      string
	Type     string
	Duration int
}

func (e *EpisodeRecord) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return common.ErrInvalidEpisode.WithMsg("missing episode id")
	}

	// id is used as url path segment and as directory name on export
	if strings.ContainsAny(e.ID, `/\`) || strings.Contains(e.ID, "..") {
		return common.ErrInvalidEpisode.WithMsg("invalid episode id").WithMeta("episode_id", e.ID)
	}

	if e.File.URL == "" {
		return common.ErrInvalidEpisode.WithMsg("missing episode file url").WithMeta("episode_id", e.ID)
	}

	if e.File.Duration < 0 {
		return common.ErrInvalidEpisode.WithMsg("invalid episode duration").WithMeta("episode_id", e.ID)
	}

	return nil
}

func (e *EpisodeRecord) MarshalZerologObject(event *zerolog.Event) {
	event.Str("id", e.ID).
		Str("title", e.Title).
		Time("published_at", e.PublishedAt).
		Str("url", e.File.URL).
		Int("duration", e.File.Duration)
}
