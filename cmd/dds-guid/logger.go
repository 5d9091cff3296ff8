// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/bureau-foundation/dds/lib/config"
)

// newCommandLogger creates a logger writing to output at the configured
// level. Format "auto" uses a human-readable text handler when output
// is a terminal and JSON otherwise.
func newCommandLogger(output io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}

	format := cfg.Log.Format
	if format == "auto" {
		format = "json"
		if file, ok := output.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			format = "text"
		}
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}
	return slog.New(handler), nil
}
