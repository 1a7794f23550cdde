package model

//
// episode.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Episode is a playable audio item with metadata. Values are immutable once
// fetched and shared read-only between pages and players.
type Episode struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Thumbnail        string    `json:"thumbnail"`
	Members          string    `json:"members"`
	Description      string    `json:"description"`
	Duration         int       `json:"duration"`
	DurationAsString string    `json:"durationAsString"`
	URL              string    `json:"url"`
	PublishedAt      string    `json:"publishedAt"`
	Published        time.Time `json:"published"`
}

func (e *Episode) MarshalZerologObject(event *zerolog.Event) {
	event.Str("id", e.ID).
		Str("title", e.Title).
		Str("url", e.URL).
		Int("duration", e.Duration).
		Time("published", e.Published)
}

// Episodes is ordered list of episodes.
type Episodes []Episode

func (e Episodes) IDs() []string {
	return lo.Map(e, func(ep Episode, _ int) string { return ep.ID })
}

// Find return episode with given id.
func (e Episodes) Find(id string) (Episode, bool) {
	return lo.Find(e, func(ep Episode) bool { return ep.ID == id })
}

// Index return position of episode with given id or -1.
func (e Episodes) Index(id string) int {
	_, idx, ok := lo.FindIndexOf(e, func(ep Episode) bool { return ep.ID == id })
	if !ok {
		return -1
	}

	return idx
}

// Split return first n episodes and the rest.
func (e Episodes) Split(n int) (Episodes, Episodes) {
	n = min(max(n, 0), len(e))

	return e[:n], e[n:]
}
