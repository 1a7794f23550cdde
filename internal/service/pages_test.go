package service

//
// pages_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/assert"
	"gitlab.com/kabes/go-podcastr/internal/common"
)

func TestPagesSrvIndex(t *testing.T) {
	src := newFakeSource(6)
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)

	page, err := pagesSrv.Index(ctx)
	assert.NoErr(t, err)
	assert.Equal(t, page.Key, IndexPageKey)
	assert.Equal(t, string(page.Body), "latest:ep0,ep1;rest:ep2,ep3")
	assert.Equal(t, page.Episodes.IDs(), []string{"ep0", "ep1", "ep2", "ep3"})

	// second call from cache
	_, err = pagesSrv.Index(ctx)
	assert.NoErr(t, err)

	list, _ := src.counters()
	assert.Equal(t, list, 1)
}

func TestPagesSrvEpisodeOnDemand(t *testing.T) {
	src := newFakeSource(3)
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)

	page, err := pagesSrv.Episode(ctx, "ep2")
	assert.NoErr(t, err)
	assert.Equal(t, string(page.Body), "episode:ep2:Episode 2")
	assert.Equal(t, page.Title, "Episode 2")
	assert.Equal(t, pagesSrv.Keys(), []string{"episodes/ep2"})

	_, err = pagesSrv.Episode(ctx, "ep2")
	assert.NoErr(t, err)

	_, get := src.counters()
	assert.Equal(t, get, 1)
}

func TestPagesSrvUnknownEpisodeNotCached(t *testing.T) {
	src := newFakeSource(3)
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)

	_, err := pagesSrv.Episode(ctx, "missing")
	assert.Err(t, err, common.ErrUnknownEpisode)

	_, err = pagesSrv.Episode(ctx, "missing")
	assert.Err(t, err, common.ErrUnknownEpisode)

	_, get := src.counters()
	assert.Equal(t, get, 2)
	assert.Equal(t, len(pagesSrv.Keys()), 0)
}

func TestPagesSrvConcurrentMissRenderOnce(t *testing.T) {
	src := newFakeSource(3)
	src.getDelay = 50 * time.Millisecond
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			page, err := pagesSrv.Episode(ctx, "ep1")
			assert.NoErr(t, err)
			assert.Equal(t, page.Key, "episodes/ep1")
		})
	}

	wg.Wait()

	_, get := src.counters()
	assert.Equal(t, get, 1)
}

func TestPagesSrvStaleServedAndRegenerated(t *testing.T) {
	src := newFakeSource(3)
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)
	clock := newFakeClock()
	pagesSrv.now = clock.Now

	page, err := pagesSrv.Episode(ctx, "ep0")
	assert.NoErr(t, err)
	assert.Equal(t, page.Title, "Episode 0")

	src.setTitle(0, "Updated")
	clock.Advance(25 * time.Hour)

	// stale page returned immediately
	page, err = pagesSrv.Episode(ctx, "ep0")
	assert.NoErr(t, err)
	assert.Equal(t, page.Title, "Episode 0")

	pagesSrv.Wait()

	page, err = pagesSrv.Episode(ctx, "ep0")
	assert.NoErr(t, err)
	assert.Equal(t, page.Title, "Updated")
	assert.Equal(t, page.Generated, clock.Now())

	_, get := src.counters()
	assert.Equal(t, get, 2)
}

func TestPagesSrvStaleKeptOnFailure(t *testing.T) {
	src := newFakeSource(3)
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)
	clock := newFakeClock()
	pagesSrv.now = clock.Now

	_, err := pagesSrv.Index(ctx)
	assert.NoErr(t, err)

	src.setFail(true)
	clock.Advance(9 * time.Hour)

	page, err := pagesSrv.Index(ctx)
	assert.NoErr(t, err)
	assert.Equal(t, page.Key, IndexPageKey)

	pagesSrv.Wait()

	page, err = pagesSrv.Index(ctx)
	assert.NoErr(t, err)
	assert.Equal(t, page.Episodes.IDs(), []string{"ep0", "ep1", "ep2"})
}

func TestPagesSrvMissRemoteError(t *testing.T) {
	src := newFakeSource(3)
	src.setFail(true)
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)

	_, err := pagesSrv.Index(ctx)
	assert.Err(t, err, aerr.ErrRemote)
	assert.Equal(t, len(pagesSrv.Keys()), 0)
}

func TestPagesSrvPrerenderAndRefresh(t *testing.T) {
	src := newFakeSource(5)
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)
	clock := newFakeClock()
	pagesSrv.now = clock.Now

	keys, err := pagesSrv.Prerender(ctx, 2)
	assert.NoErr(t, err)
	assert.Equal(t, keys, []string{"index", "episodes/ep0", "episodes/ep1"})
	assert.Equal(t, pagesSrv.Keys(), []string{"episodes/ep0", "episodes/ep1", "index"})

	// nothing stale
	cnt, err := pagesSrv.RefreshStale(ctx)
	assert.NoErr(t, err)
	assert.Equal(t, cnt, 0)

	// only index is stale
	clock.Advance(9 * time.Hour)

	cnt, err = pagesSrv.RefreshStale(ctx)
	assert.NoErr(t, err)
	assert.Equal(t, cnt, 1)

	clock.Advance(24 * time.Hour)

	cnt, err = pagesSrv.RefreshStale(ctx)
	assert.NoErr(t, err)
	assert.Equal(t, cnt, 3)
}

func TestPagesSrvExport(t *testing.T) {
	src := newFakeSource(3)
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)
	dir := t.TempDir()

	files, err := pagesSrv.Export(ctx, dir, 1)
	assert.NoErr(t, err)
	assert.Equal(t, files, []string{
		filepath.Join(dir, "index.html"),
		filepath.Join(dir, "episodes", "ep0", "index.html"),
	})

	content, err := os.ReadFile(filepath.Join(dir, "episodes", "ep0", "index.html"))
	assert.NoErr(t, err)
	assert.Equal(t, string(content), "<html>episode:ep0:Episode 0</html>")
}

func TestPagesSrvExportKeepsFilesInDir(t *testing.T) {
	src := newFakeSource(3)
	src.records[0].ID = "../../escaped"
	ctx, i := prepareTests(t, src)
	pagesSrv := do.MustInvoke[*PagesSrv](i)
	base := t.TempDir()
	dir := filepath.Join(base, "out")

	files, err := pagesSrv.Export(ctx, dir, 1)
	assert.Err(t, err, ErrExportError)
	assert.Equal(t, files, []string{filepath.Join(dir, "index.html")})

	_, err = os.Stat(filepath.Join(base, "escaped", "index.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestExportPath(t *testing.T) {
	dir := t.TempDir()

	fname, err := exportPath(dir, EpisodePageKey("ep1"))
	assert.NoErr(t, err)
	assert.Equal(t, fname, filepath.Join(dir, "episodes", "ep1", "index.html"))

	for _, id := range []string{"../../x", "a/../../../x"} {
		_, err := exportPath(dir, EpisodePageKey(id))
		assert.Err(t, err, ErrExportError)
	}
}
