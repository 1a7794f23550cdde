package common

//
// Common application errors
//
// errors.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"gitlab.com/kabes/go-podcastr/internal/aerr"
)

var (
	ErrUnknownEpisode = aerr.NewSimple("unknown episode").
				WithTag(aerr.NotFoundError).
				WithUserMsg("episode not found")
	ErrInvalidEpisode = aerr.NewSimple("invalid episode data").WithTag(aerr.DataError)
	ErrEmptyEpisodeID = aerr.NewSimple("episode id can't be empty").WithTag(aerr.ValidationError)
	ErrNoSession      = aerr.NewSimple("missing session").
				WithTag(aerr.ValidationError).
				WithUserMsg("session required")
	ErrUnknownAction = aerr.NewSimple("unknown player action").
				WithTag(aerr.ValidationError).
				WithUserMsg("unknown player action")
)
