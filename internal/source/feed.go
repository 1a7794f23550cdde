package source

//
// feed.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/format"
)

// FeedSource load episodes from podcast RSS/Atom feed.
type FeedSource struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

func NewFeedSource(feedURL string, timeout time.Duration) *FeedSource {
	return &FeedSource{
		url:     feedURL,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

func (f *FeedSource) ListEpisodes(ctx context.Context, query ListQuery) ([]EpisodeRecord, error) {
	records, err := f.load(ctx)
	if err != nil {
		return nil, err
	}

	if query.Sort == SortPublishedAt || query.Sort == "" {
		slices.SortStableFunc(records, func(a, b EpisodeRecord) int {
			if query.Order == OrderAsc {
				return a.PublishedAt.Compare(b.PublishedAt)
			}

			return b.PublishedAt.Compare(a.PublishedAt)
		})
	}

	if query.Limit > 0 && len(records) > query.Limit {
		records = records[:query.Limit]
	}

	return records, nil
}

func (f *FeedSource) GetEpisode(ctx context.Context, id string) (EpisodeRecord, error) {
	if id == "" {
		return EpisodeRecord{}, common.ErrEmptyEpisodeID
	}

	records, err := f.load(ctx)
	if err != nil {
		return EpisodeRecord{}, err
	}

	idx := slices.IndexFunc(records, func(r EpisodeRecord) bool { return r.ID == id })
	if idx < 0 {
		return EpisodeRecord{}, common.ErrUnknownEpisode.WithMeta("episode_id", id)
	}

	return records[idx], nil
}

// HealthCheck check is feed available.
func (f *FeedSource) HealthCheck(ctx context.Context) error {
	_, err := f.load(ctx)

	return err
}

func (f *FeedSource) load(ctx context.Context) ([]EpisodeRecord, error) {
	logger := zerolog.Ctx(ctx)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.Client = f.client

	start := time.Now()

	feed, err := parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, aerr.ApplyFor(aerr.ErrRemote, err, "load feed failed").WithMeta("url", f.url)
	}

	logger.Debug().Str("url", f.url).Int("items", len(feed.Items)).
		Dur("duration", time.Since(start)).Msg("feed loaded")

	return feedRecords(ctx, feed), nil
}

func feedRecords(ctx context.Context, feed *gofeed.Feed) []EpisodeRecord {
	logger := zerolog.Ctx(ctx)
	records := make([]EpisodeRecord, 0, len(feed.Items))

	for _, item := range feed.Items {
		rec := itemToRecord(feed, item)
		if err := rec.Validate(); err != nil {
			logger.Debug().Err(err).Str("title", item.Title).Msg("skipping feed item")

			continue
		}

		if slices.ContainsFunc(records, func(r EpisodeRecord) bool { return r.ID == rec.ID }) {
			logger.Debug().Str(common.LogKeyEpisodeID, rec.ID).Msg("skipping duplicated feed item")

			continue
		}

		records = append(records, rec)
	}

	return records
}

func itemToRecord(feed *gofeed.Feed, item *gofeed.Item) EpisodeRecord {
	rec := EpisodeRecord{
		ID:          Slugify(firstNotEmpty(item.GUID, item.Link, item.Title)),
		Title:       item.Title,
		Members:     itemAuthor(feed, item),
		Thumbnail:   itemImage(feed, item),
		Description: firstNotEmpty(item.Content, item.Description),
	}

	switch {
	case item.PublishedParsed != nil:
		rec.PublishedAt = item.PublishedParsed.UTC()
	case item.UpdatedParsed != nil:
		rec.PublishedAt = item.UpdatedParsed.UTC()
	}

	for _, enc := range item.Enclosures {
		if enc.URL != "" {
			rec.File.URL = enc.URL
			rec.File.Type = enc.Type

			break
		}
	}

	if item.ITunesExt != nil {
		if dur, err := format.ParseDuration(item.ITunesExt.Duration); err == nil {
			rec.File.Duration = dur
		}
	}

	return rec
}

func itemAuthor(feed *gofeed.Feed, item *gofeed.Item) string {
	if item.ITunesExt != nil && item.ITunesExt.Author != "" {
		return item.ITunesExt.Author
	}

	if names := personNames(item.Authors); names != "" {
		return names
	}

	if feed.ITunesExt != nil && feed.ITunesExt.Author != "" {
		return feed.ITunesExt.Author
	}

	return personNames(feed.Authors)
}

func personNames(persons []*gofeed.Person) string {
	names := make([]string, 0, len(persons))

	for _, p := range persons {
		if p != nil && p.Name != "" {
			names = append(names, p.Name)
		}
	}

	return strings.Join(names, ", ")
}

func itemImage(feed *gofeed.Feed, item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	if item.ITunesExt != nil && item.ITunesExt.Image != "" {
		return item.ITunesExt.Image
	}

	if feed.Image != nil && feed.Image.URL != "" {
		return feed.Image.URL
	}

	if feed.ITunesExt != nil {
		return feed.ITunesExt.Image
	}

	return ""
}

func firstNotEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}

// Slugify convert value into string safe to use in url path.
func Slugify(value string) string {
	var sb strings.Builder

	dash := false

	for _, r := range strings.ToLower(value) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)

			dash = false
		case !dash && sb.Len() > 0:
			sb.WriteByte('-')

			dash = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
