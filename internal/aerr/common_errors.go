package aerr

//
// common_errors.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

// Tags classify errors; they select http status and log level.
const (
	InternalError      = "internal"
	ValidationError    = "validation"
	DataError          = "data"
	ConfigurationError = "configuration"
	NotFoundError      = "not found"
	RemoteError        = "remote"
)

//nolint:gochecknoglobals
var (
	ErrValidation  = NewSimple("validation error").WithTag(ValidationError)
	ErrInvalidConf = NewSimple("invalid configuration").WithTag(ConfigurationError)
	// ErrRemote is used for failures of episodes source (api or feed).
	ErrRemote = NewSimple("remote service error").
			WithTag(RemoteError).
			WithUserMsg("episodes service unavailable")
)
