// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/dds/lib/buffer"
	"github.com/bureau-foundation/dds/lib/guid"
	"github.com/bureau-foundation/dds/lib/serializer"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}

	vendor, _ := cfg.Vendor()
	if vendor != guid.VendorIDOCI {
		t.Errorf("expected vendor=%x, got %x", guid.VendorIDOCI, vendor)
	}
	encoding, _ := cfg.SampleEncoding()
	if encoding != serializer.XCDR2LittleEndian {
		t.Errorf("expected encoding=xcdr2-le, got %v", encoding)
	}
	tag, _ := cfg.CompressionTag()
	if tag != buffer.CompressionLZ4 {
		t.Errorf("expected compression=lz4, got %v", tag)
	}
	level, _ := cfg.LogLevel()
	if level != slog.LevelInfo {
		t.Errorf("expected log level=info, got %v", level)
	}
}

func TestLoad_WithoutDDSConfig(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() without DDS_CONFIG = %+v, want defaults", cfg)
	}
}

func TestLoad_WithDDSConfig(t *testing.T) {
	path := writeConfig(t, "dds.yaml", `
vendor_id: "01ff"
encoding: xcdr1-be
log:
  level: debug
`)
	t.Setenv(EnvironmentVariable, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	vendor, _ := cfg.Vendor()
	if vendor != (guid.VendorID{0x01, 0xff}) {
		t.Errorf("expected vendor=01ff, got %x", vendor)
	}
	if encoding, _ := cfg.SampleEncoding(); encoding != serializer.XCDR1BigEndian {
		t.Errorf("expected encoding=xcdr1-be, got %v", encoding)
	}
	if level, _ := cfg.LogLevel(); level != slog.LevelDebug {
		t.Errorf("expected log level=debug, got %v", level)
	}
	// Omitted fields keep their defaults.
	if cfg.Compression != "lz4" || cfg.Log.Format != "auto" {
		t.Errorf("omitted fields lost defaults: compression=%q format=%q", cfg.Compression, cfg.Log.Format)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	path := writeConfig(t, "dds.jsonc", `{
	// Relays on this host favor ratio over speed.
	"compression": "zstd",
	"log": {
		"format": "json", /* machine consumers */
	},
}`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if tag, _ := cfg.CompressionTag(); tag != buffer.CompressionZstd {
		t.Errorf("expected compression=zstd, got %v", tag)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected log.format=json, got %q", cfg.Log.Format)
	}
	if cfg.Encoding != "xcdr2-le" {
		t.Errorf("expected default encoding, got %q", cfg.Encoding)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"bad yaml", "dds.yaml", "vendor_id: [", "parsing"},
		{"bad jsonc", "dds.jsonc", `{"vendor_id": }`, "parsing"},
		{"short vendor", "dds.yaml", `vendor_id: "01"`, "vendor_id"},
		{"unknown encoding", "dds.yaml", "encoding: cdr3", "encoding"},
		{"unknown compression", "dds.yaml", "compression: gzip", "compression"},
		{"unknown level", "dds.yaml", "log:\n  level: loud", "log.level"},
		{"unknown format", "dds.yaml", "log:\n  format: xml", "log.format"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, test.file, test.content))
			if err == nil {
				t.Fatal("LoadFile() succeeded")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not mention %q", err, test.want)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() of a missing file succeeded")
	}
}

func TestValidate_ReportsEveryError(t *testing.T) {
	cfg := &Config{VendorID: "zz", Encoding: "x", Compression: "y", Log: LogConfig{Level: "z", Format: "w"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() accepted an invalid config")
	}
	for _, field := range []string{"vendor_id", "encoding", "compression", "log.level", "log.format"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}
