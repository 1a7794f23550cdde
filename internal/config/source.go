package config

//
// source.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/format"
)

type SourceKind string

const (
	SourceAPI  = SourceKind("api")
	SourceFeed = SourceKind("feed")
)

const DefaultSourceTimeout = 10 * time.Second

// SourceConf configure where episodes are loaded from.
type SourceConf struct {
	Kind    SourceKind
	APIURL  string
	FeedURL string
	Timeout time.Duration
	Locale  string

	locale format.Locale
}

func (c *SourceConf) Validate() error {
	switch c.Kind {
	case "":
		c.Kind = SourceAPI
	case SourceAPI, SourceFeed:
	default:
		return aerr.ErrValidation.WithUserMsg("invalid source %q; expected 'api' or 'feed'", c.Kind)
	}

	switch c.Kind {
	case SourceAPI:
		if err := validateURL(c.APIURL); err != nil {
			return aerr.Wrapf(err, "validate api url failed").WithUserMsg("invalid api url")
		}
	case SourceFeed:
		if err := validateURL(c.FeedURL); err != nil {
			return aerr.Wrapf(err, "validate feed url failed").WithUserMsg("invalid feed url")
		}
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultSourceTimeout
	} else if c.Timeout < 0 {
		return aerr.ErrValidation.WithUserMsg("timeout can't be negative")
	}

	loc, err := format.ParseLocale(c.Locale)
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.locale = loc

	return nil
}

// GetLocale return locale used for formatting dates; valid after Validate.
func (c *SourceConf) GetLocale() format.Locale {
	if c.locale == "" {
		return format.LocalePtBR
	}

	return c.locale
}

func (c *SourceConf) MarshalZerologObject(event *zerolog.Event) {
	event.Str("kind", string(c.Kind)).
		Str("api_url", c.APIURL).
		Str("feed_url", c.FeedURL).
		Dur("timeout", c.Timeout).
		Str("locale", c.Locale)
}

func validateURL(value string) error {
	if value == "" {
		return aerr.ErrValidation.WithMsg("empty url")
	}

	u, err := url.Parse(value)
	if err != nil {
		return aerr.Wrapf(err, "parse url failed")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return aerr.ErrValidation.WithMsg("unsupported url scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return aerr.ErrValidation.WithMsg("missing host in url")
	}

	return nil
}
