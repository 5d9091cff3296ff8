// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build metadata, set with -ldflags at link time:
//
//	go build -ldflags "-X github.com/bureau-foundation/dds/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// A binary built without ldflags falls back to the VCS stamp the Go
// toolchain records in the build info.
var (
	GitCommit = "unknown"
	GitDirty  = "false"
	BuildTime = "unknown"
	Version   = "0.1.0-dev"
)

// RTPS protocol version implemented by the identifier and sample
// packages.
const (
	ProtocolMajor = 2
	ProtocolMinor = 5
)

// Build is the resolved build metadata.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty"`
	Time      string `json:"time"`
	GoVersion string `json:"go_version"`
	Protocol  string `json:"protocol"`
}

// Current resolves the build metadata, filling fields the linker left
// unset from the toolchain's VCS stamp.
func Current() Build {
	build := Build{
		Version:   Version,
		Commit:    GitCommit,
		Dirty:     GitDirty == "true",
		Time:      BuildTime,
		GoVersion: runtime.Version(),
		Protocol:  fmt.Sprintf("%d.%d", ProtocolMajor, ProtocolMinor),
	}
	if build.Commit != "unknown" {
		return build
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return build
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			build.Commit = shorten(setting.Value)
		case "vcs.modified":
			build.Dirty = setting.Value == "true"
		case "vcs.time":
			if build.Time == "unknown" {
				build.Time = setting.Value
			}
		}
	}
	return build
}

func shorten(revision string) string {
	if len(revision) > 12 {
		return revision[:12]
	}
	return revision
}

// Info returns the one-line form used by --version.
func Info() string {
	return Current().String()
}

// String renders "VERSION (COMMIT[-dirty], TIME)".
func (b Build) String() string {
	dirty := ""
	if b.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", b.Version, b.Commit, dirty, b.Time)
}

// Full returns Info plus the Go toolchain, platform and RTPS protocol
// version.
func Full() string {
	build := Current()
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s\n  RTPS: %s",
		build, build.GoVersion, runtime.GOOS, runtime.GOARCH, build.Protocol)
}
