// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/dds/lib/config"
	"github.com/bureau-foundation/dds/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// command carries what every subcommand needs.
type command struct {
	config *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	var configPath string
	var showVersion bool

	flagSet := pflag.NewFlagSet("dds-guid", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML or JSONC config file (default: $"+config.EnvironmentVariable+")")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return validation("%w", err)
	}

	if showVersion {
		fmt.Fprintf(stdout, "dds-guid %s\n", version.Info())
		return nil
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		printUsage(stderr, flagSet)
		return validation("subcommand required")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return validation("%w", err)
	}
	logger, err := newCommandLogger(stderr, cfg)
	if err != nil {
		return validation("%w", err)
	}
	logger.Debug("configuration loaded",
		"path", configPath,
		"vendor_id", cfg.VendorID,
		"encoding", cfg.Encoding,
		"compression", cfg.Compression,
	)

	cmd := &command{config: cfg, logger: logger, stdout: stdout, stderr: stderr}
	subcommand := rest[0]
	switch subcommand {
	case "parse":
		return cmd.parse(rest[1:])
	case "builtins":
		return cmd.builtins(rest[1:])
	case "generate":
		return cmd.generate(rest[1:])
	case "intersect":
		return cmd.intersect(rest[1:])
	case "frame":
		return cmd.frame(rest[1:])
	case "version":
		return cmd.version(rest[1:])
	case "help":
		printUsage(stdout, flagSet)
		return nil
	default:
		printUsage(stderr, flagSet)
		return validation("unknown subcommand: %q", subcommand)
	}
}

// loadConfig reads path when given, else falls back to DDS_CONFIG and
// the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func printUsage(output io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(output, `Usage: dds-guid [flags] <subcommand> [arguments]

Subcommands:
  parse GUID...        Describe GUIDs: prefix, entity id, kind, built-in name, hash
  builtins             List the built-in entity catalogue
  generate             Allocate new participant GUIDs for the configured vendor
  intersect            Print the GUIDs present in both --left and --right
  frame GUID...        Show the encapsulated and relay forms of GUIDs as topic keys
  version              Print build and protocol version details

Flags:
%s
Run 'dds-guid <subcommand> --help' for subcommand flags.
`, flagSet.FlagUsages())
}
