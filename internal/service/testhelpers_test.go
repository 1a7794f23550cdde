package service

//
// testhelpers_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/model"
	"gitlab.com/kabes/go-podcastr/internal/source"
)

type fakeSource struct {
	mu       sync.Mutex
	records  []source.EpisodeRecord
	fail     bool
	listCnt  int
	getCnt   int
	getDelay time.Duration
}

func newFakeSource(n int) *fakeSource {
	records := make([]source.EpisodeRecord, 0, n)
	for i := range n {
		records = append(records, source.EpisodeRecord{
			ID:          fmt.Sprintf("ep%d", i),
			Title:       fmt.Sprintf("Episode %d", i),
			Members:     "Diego Fernandes",
			PublishedAt: time.Date(2021, 1, 8-i, 18, 0, 0, 0, time.UTC),
			Thumbnail:   fmt.Sprintf("https://example.com/%d.jpg", i),
			Description: fmt.Sprintf("<p>desc %d</p><script>alert(1)</script>", i),
			File: source.FileRecord{
				URL:      fmt.Sprintf("https://example.com/%d.m4a", i),
				Duration: 3600 + i,
			},
		})
	}

	return &fakeSource{records: records}
}

func (f *fakeSource) ListEpisodes(_ context.Context, query source.ListQuery) ([]source.EpisodeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCnt++

	if f.fail {
		return nil, aerr.ErrRemote
	}

	res := slices.Clone(f.records)
	if query.Limit > 0 && len(res) > query.Limit {
		res = res[:query.Limit]
	}

	return res, nil
}

func (f *fakeSource) GetEpisode(_ context.Context, id string) (source.EpisodeRecord, error) {
	f.mu.Lock()
	f.getCnt++
	fail := f.fail
	delay := f.getDelay
	records := f.records
	f.mu.Unlock()

	time.Sleep(delay)

	if fail {
		return source.EpisodeRecord{}, aerr.ErrRemote
	}

	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}

	return source.EpisodeRecord{}, common.ErrUnknownEpisode
}

func (f *fakeSource) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fail = fail
}

func (f *fakeSource) setTitle(idx int, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.records[idx].Title = title
}

func (f *fakeSource) counters() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.listCnt, f.getCnt
}

//-------------------------------------------------------------

type fakeRenderer struct{}

func (fakeRenderer) RenderIndex(latest, rest model.Episodes) []byte {
	return []byte("latest:" + strings.Join(latest.IDs(), ",") + ";rest:" + strings.Join(rest.IDs(), ","))
}

func (fakeRenderer) RenderEpisode(episode *model.Episode) []byte {
	return []byte("episode:" + episode.ID + ":" + episode.Title)
}

func (fakeRenderer) RenderDocument(page *Page) []byte {
	return []byte("<html>" + string(page.Body) + "</html>")
}

//-------------------------------------------------------------

func prepareTests(t *testing.T, src source.Source) (context.Context, *do.RootScope) {
	t.Helper()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Caller().Logger()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	ctx := log.Logger.WithContext(context.Background())

	srcConf := config.SourceConf{Kind: config.SourceAPI, APIURL: "http://localhost:3333"}
	if err := srcConf.Validate(); err != nil {
		t.Fatalf("validate source conf error: %#+v", err)
	}

	pagesConf := config.PagesConf{PrerenderCount: 2, IndexLimit: 4}
	if err := pagesConf.Validate(); err != nil {
		t.Fatalf("validate pages conf error: %#+v", err)
	}

	playersConf := config.PlayersConf{IdleTimeout: time.Hour}

	i := do.New(Package)
	do.ProvideValue(i, &srcConf)
	do.ProvideValue(i, &pagesConf)
	do.ProvideValue(i, &playersConf)
	do.ProvideValue[source.Source](i, src)
	do.ProvideValue[PageRenderer](i, fakeRenderer{})
	do.ProvideNamedValue(i, "debug.flags", config.ParseDebugFlags("cache"))

	return ctx, i
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2021, 1, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
