// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the DDS tooling.
//
// Configuration is loaded from a single file specified by either the
// DDS_CONFIG environment variable (via [Load]) or a --config flag (via
// [LoadFile]). There are no fallbacks, no ~/.config discovery, and no
// automatic file search. When no file is given the tools run on
// [Default].
//
// Files ending in .jsonc are JSON with // and /* */ comments and
// trailing commas; everything else is YAML. Both formats use the same
// field names.
//
// Key exports:
//
//   - [Config] -- vendor id, sample encoding, relay compression, logging
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- reports every invalid field at once
package config
