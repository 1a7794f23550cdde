package templates

//
// templates_test.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"bytes"
	"testing"

	"gitlab.com/kabes/go-podcastr/internal/assert"
	"gitlab.com/kabes/go-podcastr/internal/model"
	"gitlab.com/kabes/go-podcastr/internal/player"
	"gitlab.com/kabes/go-podcastr/internal/service"
)

func newTestRenderer() *Renderer {
	return &Renderer{
		pageContext:   &PageContext{Webroot: "/pc", Lang: "en"},
		staticContext: &PageContext{Webroot: "/pc", Lang: "en", Static: true},
	}
}

func testEpisodes() model.Episodes {
	return model.Episodes{
		{ID: "a&b", Title: "First <b>bold</b>", Members: "Diego", Duration: 60, DurationAsString: "00:01:00"},
		{ID: "second", Title: "Second", Members: "Rafael", Duration: 120, DurationAsString: "00:02:00"},
		{ID: "third", Title: "Third", Members: "Rafael", Duration: 180, DurationAsString: "00:03:00"},
	}
}

func TestRenderIndex(t *testing.T) {
	r := newTestRenderer()
	eps := testEpisodes()

	body := string(r.RenderIndex(eps[:2], eps[2:]))

	assert.Contains(t, body,
		"Latest releases",
		"All episodes",
		`href="/pc/web/episodes/a%26b"`,
		"First &lt;b&gt;bold&lt;/b&gt;",
		`action="/pc/web/player/playlist"`,
		`name="index" value="2"`,
		`name="episode" value="third"`,
	)
	assert.NotContains(t, body, "<b>bold</b>", "No more episodes")
}

func TestRenderIndexNoMoreEpisodes(t *testing.T) {
	r := newTestRenderer()

	body := string(r.RenderIndex(testEpisodes()[:1], nil))
	assert.Contains(t, body, "No more episodes")
	assert.NotContains(t, body, "<table")
}

func TestRenderEpisode(t *testing.T) {
	r := newTestRenderer()
	ep := testEpisodes()[0]
	ep.Description = "<p>safe <em>html</em></p>"

	body := string(r.RenderEpisode(&ep))

	assert.Contains(t, body,
		"<h1>First &lt;b&gt;bold&lt;/b&gt;</h1>",
		`action="/pc/web/player/play/a%26b"`,
		"<p>safe <em>html</em></p>",
	)
}

func TestWriteDocumentWithPlayer(t *testing.T) {
	r := newTestRenderer()
	eps := testEpisodes()
	page := &service.Page{Key: "index", Title: "Home", Body: []byte("<section>cached</section>")}
	status := &service.Status{
		Snapshot: player.Snapshot{Episodes: eps, Index: 1, Playing: true, HasNext: true, HasPrevious: true},
		Command:  player.CommandLoad,
	}

	var buf bytes.Buffer

	r.WriteDocument(&buf, page, status)
	doc := buf.String()

	assert.Contains(t, doc,
		"<title>Home | Podcastr</title>",
		`<html lang="en">`,
		"<section>cached</section>",
		"/pc/web/static/player.js",
		"Now playing",
		`data-episode="second"`,
		`data-command="load"`,
		`title="Pause"`,
	)
	assert.NotContains(t, doc, "Select a podcast to listen")
}

func TestWriteDocumentWithoutSession(t *testing.T) {
	r := newTestRenderer()
	page := &service.Page{Key: "index", Title: "Home", Body: []byte("body")}

	var buf bytes.Buffer

	r.WriteDocument(&buf, page, nil)
	doc := buf.String()

	assert.Contains(t, doc, "Select a podcast to listen", " disabled")
	assert.NotContains(t, doc, "<audio")
}

func TestRenderDocumentStatic(t *testing.T) {
	r := newTestRenderer()
	page := &service.Page{Key: "index", Title: "Home", Body: []byte("body")}

	doc := string(r.RenderDocument(page))

	assert.Contains(t, doc, "/pc/web/static/style.css", "body")
	assert.NotContains(t, doc, "player.js")
}

func TestWriteError(t *testing.T) {
	r := newTestRenderer()

	var buf bytes.Buffer

	r.WriteError(&buf, 404, "episode <not> found")
	doc := buf.String()

	assert.Contains(t, doc, "<title>Not Found | Podcastr</title>", "404 Not Found", "episode &lt;not&gt; found")
}

//-------------------------------------------------------------

func findButton(buttons []playerButton, action player.Action) playerButton {
	for _, b := range buttons {
		if b.Action == action {
			return b
		}
	}

	return playerButton{}
}

func TestPlayerButtonsEmpty(t *testing.T) {
	for _, status := range []*service.Status{nil, {}} {
		buttons := playerButtons(status)
		assert.Equal(t, len(buttons), len(player.Actions))

		for _, b := range buttons {
			assert.True(t, b.Disabled)
		}
	}
}

func TestPlayerButtons(t *testing.T) {
	eps := testEpisodes()

	tests := []struct {
		name     string
		snap     player.Snapshot
		disabled []player.Action
		enabled  []player.Action
	}{
		{
			name:     "single episode",
			snap:     player.Snapshot{Episodes: eps[:1]},
			disabled: []player.Action{player.ActionToggleShuffle, player.ActionPrevious, player.ActionNext},
			enabled:  []player.Action{player.ActionTogglePlay, player.ActionToggleLoop, player.ActionClear},
		},
		{
			name:     "first of list",
			snap:     player.Snapshot{Episodes: eps, HasNext: true},
			disabled: []player.Action{player.ActionPrevious},
			enabled:  []player.Action{player.ActionToggleShuffle, player.ActionNext},
		},
		{
			name:     "last of list",
			snap:     player.Snapshot{Episodes: eps, Index: 2, HasPrevious: true},
			disabled: []player.Action{player.ActionNext},
			enabled:  []player.Action{player.ActionPrevious},
		},
		{
			name:    "last of list when shuffling",
			snap:    player.Snapshot{Episodes: eps, Index: 2, HasPrevious: true, Shuffling: true},
			enabled: []player.Action{player.ActionNext, player.ActionPrevious},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buttons := playerButtons(&service.Status{Snapshot: tt.snap})

			for _, a := range tt.disabled {
				assert.True(t, findButton(buttons, a).Disabled)
			}

			for _, a := range tt.enabled {
				assert.False(t, findButton(buttons, a).Disabled)
			}
		})
	}
}

func TestPlayerButtonsFlags(t *testing.T) {
	status := &service.Status{Snapshot: player.Snapshot{
		Episodes: testEpisodes(), Playing: true, Looping: true,
	}}

	buttons := playerButtons(status)

	assert.Equal(t, findButton(buttons, player.ActionTogglePlay).Label, "Pause")
	assert.Equal(t, findButton(buttons, player.ActionToggleLoop).Class, "active")
	assert.Equal(t, findButton(buttons, player.ActionToggleShuffle).Class, "")
}
