package service

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
	ErrRenderError = aerr.NewSimple("render page error").
			WithTag(aerr.InternalError).
			WithUserMsg("render page error")
	ErrExportError = aerr.NewSimple("export pages error").
			WithTag(aerr.InternalError).
			WithUserMsg("write pages failed")
)
