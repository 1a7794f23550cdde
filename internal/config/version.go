package config

//
// version.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// AppName is used as program name, syslog tag and metrics namespace.
const AppName = "podcastr"

// Set by linker flags on release builds.
var (
	Version   = "dev"
	Revision  = ""
	BuildDate = ""
	BuildUser = ""
	Branch    = ""
)

type BuildInfo struct {
	App       string
	Version   string
	Revision  string
	BuildDate string
	GoVersion string
	Modified  bool
}

// GetBuildInfo return build information; for development builds revision
// and date come from vcs data embedded by go toolchain.
//
//nolint:gochecknoglobals
var GetBuildInfo = sync.OnceValue(func() BuildInfo {
	bi := BuildInfo{
		App:       AppName,
		Version:   Version,
		Revision:  Revision,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}

	if Version != "dev" {
		return bi
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}

	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			bi.Revision = kv.Value
		case "vcs.time":
			bi.BuildDate = kv.Value
		case "vcs.modified":
			bi.Modified = kv.Value == "true"
		}
	}

	return bi
})

// VersionString return human readable version for logs and --version.
func VersionString() string {
	bi := GetBuildInfo()

	if bi.Version == "dev" {
		s := fmt.Sprintf("dev, rev: %s at %s", bi.Revision, bi.BuildDate)
		if bi.Modified {
			s += " (modified)"
		}

		return s
	}

	return fmt.Sprintf("%s, rev: %s, build: %s by %s from %s", bi.Version, bi.Revision, bi.BuildDate, BuildUser, Branch)
}
