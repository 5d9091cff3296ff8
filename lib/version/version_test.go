// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func setBuild(t *testing.T, commit, dirty, buildTime, version string) {
	t.Helper()
	saved := []string{GitCommit, GitDirty, BuildTime, Version}
	t.Cleanup(func() { GitCommit, GitDirty, BuildTime, Version = saved[0], saved[1], saved[2], saved[3] })
	GitCommit, GitDirty, BuildTime, Version = commit, dirty, buildTime, version
}

func TestInfo(t *testing.T) {
	setBuild(t, "abc1234", "false", "2026-10-01T00:00:00Z", "1.2.3")
	if got, want := Info(), "1.2.3 (abc1234, 2026-10-01T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got := Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want dirty marker", got)
	}
}

func TestCurrent(t *testing.T) {
	setBuild(t, "abc1234", "true", "2026-10-01T00:00:00Z", "1.2.3")
	build := Current()
	if build.Version != "1.2.3" || build.Commit != "abc1234" || !build.Dirty {
		t.Errorf("Current() = %+v", build)
	}
	if build.Protocol != "2.5" {
		t.Errorf("Protocol = %q, want 2.5", build.Protocol)
	}
	if build.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", build.GoVersion, runtime.Version())
	}
}

func TestCurrentWithoutLinkerCommit(t *testing.T) {
	setBuild(t, "unknown", "false", "unknown", "1.2.3")
	// Test binaries carry no VCS stamp, so the commit may stay unknown;
	// whatever is found must be a short form.
	if commit := Current().Commit; len(commit) > 12 && commit != "unknown" {
		t.Errorf("Commit = %q, want at most 12 characters", commit)
	}
}

func TestFull(t *testing.T) {
	setBuild(t, "abc1234", "false", "2026-10-01T00:00:00Z", "1.2.3")
	full := Full()
	if !strings.HasPrefix(full, Info()) {
		t.Errorf("Full() = %q, want prefix %q", full, Info())
	}
	for _, want := range []string{runtime.Version(), runtime.GOOS, "RTPS: 2.5"} {
		if !strings.Contains(full, want) {
			t.Errorf("Full() = %q, missing %q", full, want)
		}
	}
}
