package web

//
// package.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"github.com/samber/do/v2"
	"gitlab.com/kabes/go-podcastr/internal/service"
	"gitlab.com/kabes/go-podcastr/internal/web/templates"
)

//nolint:gochecknoglobals
var Package = do.Package(
	do.Lazy(New),
	do.Lazy(newPageWriter),
	do.Lazy(newIndexPage),
	do.Lazy(newEpisodePages),
	do.Lazy(newPlayerPages),
	RendererPackage,
)

// RendererPackage provide only page renderer; used when pages are rendered
// without server.
//
//nolint:gochecknoglobals
var RendererPackage = do.Package(
	do.Lazy(templates.NewRenderer),
	do.Bind[*templates.Renderer, service.PageRenderer](),
)
