// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build metadata for the DDS tools.
//
// [GitCommit], [GitDirty], [BuildTime] and [Version] are injected with
// -ldflags -X. When the commit is not injected, [Current] reads the
// VCS stamp from the Go build info instead.
//
//   - [Info] -- "0.1.0-dev (abc1234, 2026-02-10T...)" for --version
//   - [Full] -- Info plus Go version, GOOS/GOARCH and RTPS protocol
//   - [Current] -- the resolved [Build], for JSON output
package version
