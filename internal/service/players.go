package service

//
// players.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/config"
	"gitlab.com/kabes/go-podcastr/internal/model"
	"gitlab.com/kabes/go-podcastr/internal/player"
)

//nolint:gochecknoglobals
var (
	metricPlayersActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "podcastr",
		Name:      "players_active",
		Help:      "Number of active players.",
	})
	metricPlayerActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "podcastr",
			Name:      "player_actions_total",
			Help:      "Number of player actions by type.",
		},
		[]string{"action"},
	)
)

// Player is a playback state bound to one session.
type Player struct {
	State *player.State
	Sync  *player.MediaSync

	lastUsed time.Time
}

// Status is a player state with command for audio element.
type Status struct {
	player.Snapshot

	Command player.Command `json:"command"`
}

// PlayersSrv keep players for sessions.
type PlayersSrv struct {
	idleTimeout time.Duration

	mu      sync.Mutex
	players map[string]*Player
	now     func() time.Time
}

func NewPlayersSrv(i do.Injector) (*PlayersSrv, error) {
	cfg := do.MustInvoke[*config.PlayersConf](i)

	return &PlayersSrv{
		idleTimeout: cfg.IdleTimeout,
		players:     make(map[string]*Player),
		now:         time.Now,
	}, nil
}

// Get return player for session; player is created when not exists.
func (p *PlayersSrv) Get(ctx context.Context, sessionID string) (*Player, error) {
	if sessionID == "" {
		return nil, common.ErrNoSession
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	pl, ok := p.players[sessionID]
	if !ok {
		state := player.New()
		pl = &Player{State: state, Sync: player.NewMediaSync(state)}
		p.players[sessionID] = pl

		metricPlayersActive.Set(float64(len(p.players)))
		zerolog.Ctx(ctx).Debug().Str(common.LogKeySessionID, sessionID).Msg("new player created")
	}

	pl.lastUsed = p.now()

	return pl, nil
}

// Keep mark player as used by long running request (events stream). Player
// already removed as idle is registered again, so state seen by the stream is
// the one reached by next requests of session.
func (p *PlayersSrv) Keep(sessionID string, pl *Player) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cur, ok := p.players[sessionID]; !ok || cur != pl {
		p.players[sessionID] = pl
		metricPlayersActive.Set(float64(len(p.players)))
	}

	pl.lastUsed = p.now()
}

// Status return current state of player for session.
func (p *PlayersSrv) Status(ctx context.Context, sessionID string) (Status, error) {
	pl, err := p.Get(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}

	return newStatus(pl), nil
}

// Play start playing one episode.
func (p *PlayersSrv) Play(ctx context.Context, sessionID string, episode *model.Episode) (Status, error) {
	pl, err := p.Get(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}

	logAction(ctx, "play").Str(common.LogKeyEpisodeID, episode.ID).Msg("play episode")

	pl.State.Play(*episode)

	return newStatus(pl), nil
}

// PlayList start playing list of episodes from `index`.
func (p *PlayersSrv) PlayList(ctx context.Context, sessionID string, episodes model.Episodes, index int,
) (Status, error) {
	pl, err := p.Get(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}

	logAction(ctx, "playlist").Int("index", index).Int("length", len(episodes)).Msg("play list")

	pl.State.PlayList(episodes, index)

	return newStatus(pl), nil
}

// Apply execute simple action on session player.
func (p *PlayersSrv) Apply(ctx context.Context, sessionID string, action player.Action) (Status, error) {
	pl, err := p.Get(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}

	if err := pl.State.Apply(action); err != nil {
		return Status{}, err //nolint:wrapcheck
	}

	logAction(ctx, string(action)).Msg("player action")

	return newStatus(pl), nil
}

// ReportMedia apply event reported by audio element.
func (p *PlayersSrv) ReportMedia(ctx context.Context, sessionID string, event player.MediaEvent,
	episodeID string,
) (Status, error) {
	pl, err := p.Get(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}

	cmd, err := pl.Sync.Report(event, episodeID)
	if err != nil {
		return Status{}, err //nolint:wrapcheck
	}

	logAction(ctx, "media_"+string(event)).Str(common.LogKeyEpisodeID, episodeID).
		Str("command", string(cmd)).Msg("media event")

	return Status{Snapshot: pl.State.Snapshot(), Command: cmd}, nil
}

// MediaLoaded confirm that audio element loaded episode.
func (p *PlayersSrv) MediaLoaded(ctx context.Context, sessionID, episodeID string) (Status, error) {
	pl, err := p.Get(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}

	pl.Sync.Loaded(episodeID)

	return newStatus(pl), nil
}

// MediaReset inform that audio element was created again and has nothing loaded.
func (p *PlayersSrv) MediaReset(ctx context.Context, sessionID string) (Status, error) {
	pl, err := p.Get(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}

	pl.Sync.Reset()

	return newStatus(pl), nil
}

// Cleanup remove players not used longer than idle timeout. Return number of removed players.
func (p *PlayersSrv) Cleanup(ctx context.Context) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	removed := 0

	for sid, pl := range p.players {
		if now.Sub(pl.lastUsed) > p.idleTimeout {
			delete(p.players, sid)

			removed++
		}
	}

	metricPlayersActive.Set(float64(len(p.players)))

	if removed > 0 {
		zerolog.Ctx(ctx).Debug().Msgf("removed %d idle players; active=%d", removed, len(p.players))
	}

	common.EventLogPrintf(ctx, "players cleanup removed=%d active=%d", removed, len(p.players))

	return removed
}

// Count return number of active players.
func (p *PlayersSrv) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.players)
}

func newStatus(pl *Player) Status {
	return Status{Snapshot: pl.State.Snapshot(), Command: pl.Sync.Command()}
}

func logAction(ctx context.Context, action string) *zerolog.Event {
	metricPlayerActions.WithLabelValues(action).Inc()

	return zerolog.Ctx(ctx).Debug().Str(common.LogKeyAction, action)
}
