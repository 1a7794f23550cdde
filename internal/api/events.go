package api

//
// events.go
// /api/player/events
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/player"
)

const (
	eventsBuffer       = 8
	eventsPingInterval = 30 * time.Second
)

// events stream player state changes as server-sent events. Snapshots are
// dropped when client is too slow; each event carry full state so client
// lose nothing but intermediate states.
func (pr playerResource) events(ctx context.Context, w http.ResponseWriter, r *http.Request, logger *zerolog.Logger) {
	pl, err := pr.playersSrv.Get(ctx, common.ContextSession(ctx))
	if err != nil {
		writeError(w, r, logger, err, "get player error")

		return
	}

	rc := http.NewResponseController(w)
	// stream is open longer than server write timeout
	_ = rc.SetWriteDeadline(time.Time{})

	snapshots := make(chan player.Snapshot, eventsBuffer)
	unsubscribe := pl.State.Subscribe(func(s player.Snapshot) {
		select {
		case snapshots <- s:
		default:
		}
	})

	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	logger.Debug().Msg("events stream started")

	if err := writeEvent(w, rc, pl.State.Snapshot()); err != nil {
		logger.Debug().Err(err).Msg("write event error")

		return
	}

	ping := time.NewTicker(eventsPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("events stream closed")

			return

		case snap := <-snapshots:
			if err := writeEvent(w, rc, snap); err != nil {
				logger.Debug().Err(err).Msg("write event error")

				return
			}

		case <-ping.C:
			pr.playersSrv.Keep(common.ContextSession(ctx), pl)

			if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
				return
			}

			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func writeEvent(w io.Writer, rc *http.ResponseController, snap player.Snapshot) error {
	data, err := json.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot error: %w", err)
	}

	if _, err := fmt.Fprintf(w, "event: state\nid: %d\ndata: %s\n\n", snap.Version, data); err != nil {
		return fmt.Errorf("write event error: %w", err)
	}

	if err := rc.Flush(); err != nil {
		return fmt.Errorf("flush error: %w", err)
	}

	return nil
}
