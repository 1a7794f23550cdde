package service

//
// pages.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/model"
	"golang.org/x/sync/singleflight"
)

const (
	IndexPageKey      = "index"
	episodePagePrefix = "episodes/"
)

// PageRenderer render content of pages.
type PageRenderer interface {
	// RenderIndex render index page body.
	RenderIndex(latest, rest model.Episodes) []byte
	// RenderEpisode render episode page body.
	RenderEpisode(episode *model.Episode) []byte
	// RenderDocument render complete, standalone html document for page.
	RenderDocument(page *Page) []byte
}

// Page is rendered, cached page content.
type Page struct {
	Key   string
	Title string
	Body  []byte
	// Episodes are episodes presented on page in displayed order.
	Episodes  model.Episodes
	Generated time.Time
}

func (p *Page) MarshalZerologObject(event *zerolog.Event) {
	event.Str("key", p.Key).
		Int("size", len(p.Body)).
		Int("episodes", len(p.Episodes)).
		Time("generated", p.Generated)
}

func EpisodePageKey(id string) string {
	return episodePagePrefix + id
}

//-------------------------------------------------------------

//nolint:gochecknoglobals
var (
	metricPagesRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "podcastr",
			Name:      "pages_cache_requests_total",
			Help:      "Number of page cache lookups by result.",
		},
		[]string{"result"},
	)
	metricPagesRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "podcastr",
			Name:      "pages_renders_total",
			Help:      "Number of page renders by result.",
		},
		[]string{"result"},
	)
)

// PagesSrv keep rendered pages. Missing pages are rendered on first request;
// pages older than revalidate period are served stale and regenerated in
// background.
type PagesSrv struct {
	episodesSrv *EpisodesSrv
	renderer    PageRenderer
	cfg         *config.PagesConf
	logCache    bool

	mu    sync.RWMutex
	pages map[string]*Page
	group singleflight.Group
	// bg track background regenerations.
	bg  sync.WaitGroup
	now func() time.Time
}

func NewPagesSrv(i do.Injector) (*PagesSrv, error) {
	debugFlags, _ := do.InvokeNamed[config.DebugFlags](i, "debug.flags")

	return &PagesSrv{
		episodesSrv: do.MustInvoke[*EpisodesSrv](i),
		renderer:    do.MustInvoke[PageRenderer](i),
		cfg:         do.MustInvoke[*config.PagesConf](i),
		logCache:    debugFlags.HasFlag(config.DebugCache),
		pages:       make(map[string]*Page),
		now:         time.Now,
	}, nil
}

// Index return index page.
func (p *PagesSrv) Index(ctx context.Context) (*Page, error) {
	return p.get(ctx, IndexPageKey, p.cfg.IndexRevalidate, p.renderIndex)
}

// Episode return page for episode `id`. Not existing episode return
// common.ErrUnknownEpisode and is not cached.
func (p *PagesSrv) Episode(ctx context.Context, id string) (*Page, error) {
	if id == "" {
		return nil, common.ErrEmptyEpisodeID
	}

	return p.get(ctx, EpisodePageKey(id), p.cfg.EpisodeRevalidate, func(ctx context.Context) (*Page, error) {
		return p.renderEpisode(ctx, id)
	})
}

// Prerender render index page and `count` newest episodes pages.
func (p *PagesSrv) Prerender(ctx context.Context, count int) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Msgf("prerender pages; count=%d", count)

	index, err := p.regenerate(ctx, IndexPageKey, p.renderIndex)
	if err != nil {
		return nil, err
	}

	keys := []string{index.Key}

	if count <= 0 {
		return keys, nil
	}

	episodes, err := p.episodesSrv.ListEpisodes(ctx, count)
	if err != nil {
		return keys, err
	}

	for _, ep := range episodes {
		page := p.episodePage(&ep)
		p.store(page)
		keys = append(keys, page.Key)
	}

	logger.Info().Strs("pages", keys).Msg("pages prerendered")

	return keys, nil
}

// RefreshStale regenerate all pages older than revalidate period. Return number
// of regenerated pages.
func (p *PagesSrv) RefreshStale(ctx context.Context) (int, error) {
	logger := zerolog.Ctx(ctx)

	var errs []error

	refreshed := 0

	for _, key := range p.staleKeys() {
		var err error

		if key == IndexPageKey {
			_, err = p.regenerate(ctx, key, p.renderIndex)
		} else {
			id := key[len(episodePagePrefix):]
			_, err = p.regenerate(ctx, key, func(ctx context.Context) (*Page, error) {
				return p.renderEpisode(ctx, id)
			})
		}

		if err != nil {
			logger.Warn().Err(err).Str(common.LogKeyPageKey, key).Msg("refresh page failed")
			errs = append(errs, err)

			continue
		}

		refreshed++
	}

	common.EventLogPrintf(ctx, "pages refreshed=%d failed=%d", refreshed, len(errs))

	return refreshed, errors.Join(errs...)
}

// Export render index and `count` newest episodes as standalone html files in `dir`.
// Files layout follow web routes: index.html and episodes/<id>/index.html.
func (p *PagesSrv) Export(ctx context.Context, dir string, count int) ([]string, error) {
	keys, err := p.Prerender(ctx, count)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(keys))

	for _, key := range keys {
		page, ok := p.lookup(key)
		if !ok {
			continue
		}

		fname, err := exportPath(dir, key)
		if err != nil {
			return files, err
		}

		if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil { //nolint:mnd
			return files, aerr.ApplyFor(ErrExportError, err).WithMeta("dir", filepath.Dir(fname))
		}

		if err := os.WriteFile(fname, p.renderer.RenderDocument(page), 0o644); err != nil { //nolint:mnd,gosec
			return files, aerr.ApplyFor(ErrExportError, err).WithMeta("file", fname)
		}

		files = append(files, fname)
	}

	return files, nil
}

// Keys return keys of all cached pages.
func (p *PagesSrv) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.pages))
	for k := range p.pages {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Wait for finish all background regenerations.
func (p *PagesSrv) Wait() {
	p.bg.Wait()
}

//-------------------------------------------------------------

func (p *PagesSrv) get(ctx context.Context, key string, revalidate time.Duration,
	render func(context.Context) (*Page, error),
) (*Page, error) {
	logger := zerolog.Ctx(ctx).With().Str(common.LogKeyPageKey, key).Logger()

	page, ok := p.lookup(key)
	if !ok {
		metricPagesRequests.WithLabelValues("miss").Inc()

		if p.logCache {
			logger.Debug().Msg("page cache miss")
		}

		return p.regenerate(ctx, key, func(ctx context.Context) (*Page, error) {
			// page may be stored between lookup and start of render
			if page, ok := p.lookup(key); ok {
				return page, nil
			}

			return render(ctx)
		})
	}

	if p.now().Sub(page.Generated) < revalidate {
		metricPagesRequests.WithLabelValues("hit").Inc()

		return page, nil
	}

	metricPagesRequests.WithLabelValues("stale").Inc()

	if p.logCache {
		logger.Debug().Object("page", page).Msg("page stale; regenerating in background")
	}

	bgctx := logger.WithContext(context.WithoutCancel(ctx))

	p.bg.Go(func() {
		if cur, ok := p.lookup(key); ok && p.now().Sub(cur.Generated) < revalidate {
			// already regenerated
			return
		}

		if _, err := p.regenerate(bgctx, key, render); err != nil {
			logger.Warn().Err(err).Msg("background page regeneration failed; serving stale page")
		}
	})

	return page, nil
}

// regenerate render page; concurrent calls for the same key share one render.
func (p *PagesSrv) regenerate(ctx context.Context, key string,
	render func(context.Context) (*Page, error),
) (*Page, error) {
	res, err, shared := p.group.Do(key, func() (any, error) {
		defer common.TraceRegion(ctx, "render page")()

		common.TraceLazyPrintf(ctx, "pages: render %s", key)

		page, err := render(context.WithoutCancel(ctx))
		if err != nil {
			metricPagesRenders.WithLabelValues("error").Inc()

			if errors.Is(err, common.ErrUnknownEpisode) {
				p.remove(key)
			}

			return nil, err
		}

		metricPagesRenders.WithLabelValues("ok").Inc()
		p.store(page)

		return page, nil
	})
	if err != nil {
		common.TraceErrorLazyPrintf(ctx, "pages: render %s error: %s", key, err)

		return nil, err //nolint:wrapcheck
	}

	if p.logCache {
		zerolog.Ctx(ctx).Debug().Str(common.LogKeyPageKey, key).Bool("shared", shared).Msg("page rendered")
	}

	page, _ := res.(*Page)

	return page, nil
}

func (p *PagesSrv) renderIndex(ctx context.Context) (*Page, error) {
	latest, rest, err := p.episodesSrv.LatestAndRest(ctx, p.cfg.IndexLimit, p.cfg.LatestCount)
	if err != nil {
		return nil, err
	}

	return &Page{
		Key:       IndexPageKey,
		Title:     "Home",
		Body:      p.renderer.RenderIndex(latest, rest),
		Episodes:  slices.Concat(latest, rest),
		Generated: p.now(),
	}, nil
}

func (p *PagesSrv) renderEpisode(ctx context.Context, id string) (*Page, error) {
	episode, err := p.episodesSrv.GetEpisode(ctx, id)
	if err != nil {
		return nil, err
	}

	return p.episodePage(episode), nil
}

func (p *PagesSrv) episodePage(episode *model.Episode) *Page {
	return &Page{
		Key:       EpisodePageKey(episode.ID),
		Title:     episode.Title,
		Body:      p.renderer.RenderEpisode(episode),
		Episodes:  model.Episodes{*episode},
		Generated: p.now(),
	}
}

// exportPath return name of file for page `key`; path must not leave `dir`.
func exportPath(dir, key string) (string, error) {
	root := filepath.Clean(dir)
	fname := filepath.Join(root, exportFileName(key))

	rel, err := filepath.Rel(root, fname)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", aerr.ApplyFor(ErrExportError, aerr.New("page path outside output directory")).
			WithMeta("dir", root, "page_key", key)
	}

	return fname, nil
}

func exportFileName(key string) string {
	if key == IndexPageKey {
		return "index.html"
	}

	return filepath.Join(filepath.FromSlash(key), "index.html")
}

func (p *PagesSrv) lookup(key string) (*Page, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	page, ok := p.pages[key]

	return page, ok
}

func (p *PagesSrv) store(page *Page) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pages[page.Key] = page
}

func (p *PagesSrv) remove(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.pages, key)
}

func (p *PagesSrv) staleKeys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	now := p.now()

	var keys []string

	for key, page := range p.pages {
		revalidate := p.cfg.EpisodeRevalidate
		if key == IndexPageKey {
			revalidate = p.cfg.IndexRevalidate
		}

		if now.Sub(page.Generated) >= revalidate {
			keys = append(keys, key)
		}
	}

	slices.Sort(keys)

	return keys
}
