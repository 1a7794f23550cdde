package source

// package.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.

import (
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/config"
)

//nolint:gochecknoglobals
var Package = do.Package(
	do.Lazy(NewFromConfig),
)

// NewFromConfig create Source configured by config.SourceConf.
func NewFromConfig(i do.Injector) (Source, error) { //nolint:ireturn
	cfg := do.MustInvoke[*config.SourceConf](i)

	switch cfg.Kind {
	case config.SourceFeed:
		return NewFeedSource(cfg.FeedURL, cfg.Timeout), nil
	default:
		client, err := NewAPIClient(cfg.APIURL, cfg.Timeout)
		if err != nil {
			return nil, err
		}

		return client, nil
	}
}
