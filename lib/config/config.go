// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/dds/lib/buffer"
	"github.com/bureau-foundation/dds/lib/guid"
	"github.com/bureau-foundation/dds/lib/serializer"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "DDS_CONFIG"

// Config is the configuration shared by the DDS tools.
type Config struct {
	// VendorID is the two-octet vendor identifier, as four hex digits,
	// placed at the start of every generated GUID prefix.
	// Default: 0103
	VendorID string `yaml:"vendor_id" json:"vendor_id"`

	// Encoding is the sample data representation: xcdr1-le, xcdr1-be,
	// xcdr2-le or xcdr2-be.
	// Default: xcdr2-le
	Encoding string `yaml:"encoding" json:"encoding"`

	// Compression is the relay frame compression: none, lz4 or zstd.
	// Default: lz4
	Compression string `yaml:"compression" json:"compression"`

	// Log configures the command logger.
	Log LogConfig `yaml:"log" json:"log"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	// Default: info
	Level string `yaml:"level" json:"level"`

	// Format selects the handler: "auto" (text on a terminal, JSON
	// otherwise), "text" or "json".
	// Default: auto
	Format string `yaml:"format" json:"format"`
}

// Default returns the default configuration. Loaded files are merged
// over it, so fields a file omits keep these values.
func Default() *Config {
	return &Config{
		VendorID:    hex.EncodeToString(guid.VendorIDOCI[:]),
		Encoding:    serializer.XCDR2LittleEndian.String(),
		Compression: buffer.CompressionLZ4.String(),
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load loads configuration from the file named by DDS_CONFIG. An unset
// variable yields [Default].
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path and validates
// it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// loadFile merges a single configuration file into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".jsonc") {
		if err := json.Unmarshal(jsonc.ToJSON(data), c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Vendor(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SampleEncoding(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.CompressionTag(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: auto, text, json (got %q)", c.Log.Format))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Vendor parses VendorID.
func (c *Config) Vendor() (guid.VendorID, error) {
	var vendor guid.VendorID
	decoded, err := hex.DecodeString(c.VendorID)
	if err != nil || len(decoded) != len(vendor) {
		return vendor, fmt.Errorf("vendor_id must be four hex digits (got %q)", c.VendorID)
	}
	copy(vendor[:], decoded)
	return vendor, nil
}

// SampleEncoding parses Encoding.
func (c *Config) SampleEncoding() (serializer.Encoding, error) {
	encoding, err := serializer.ParseEncoding(c.Encoding)
	if err != nil {
		return encoding, fmt.Errorf("encoding: %w", err)
	}
	return encoding, nil
}

// CompressionTag parses Compression.
func (c *Config) CompressionTag() (buffer.CompressionTag, error) {
	tag, err := buffer.ParseCompressionTag(c.Compression)
	if err != nil {
		return tag, fmt.Errorf("compression: %w", err)
	}
	return tag, nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
