// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/dds/lib/buffer"
	"github.com/bureau-foundation/dds/lib/dynamic"
	"github.com/bureau-foundation/dds/lib/guid"
	"github.com/bureau-foundation/dds/lib/sample"
	"github.com/bureau-foundation/dds/lib/serializer"
	"github.com/bureau-foundation/dds/lib/version"
)

// newFlagSet returns a flag set for a subcommand. Errors and help go to
// stderr.
func (c *command) newFlagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("dds-guid "+name, pflag.ContinueOnError)
	flagSet.SetOutput(c.stderr)
	return flagSet
}

// parseFlags parses args into flagSet. It reports done when the caller
// asked for help and the subcommand should return without running.
func parseFlags(flagSet *pflag.FlagSet, args []string) (done bool, err error) {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return true, validation("%w", err)
	}
	return false, nil
}

func parseGUIDs(texts []string) ([]guid.GUID, error) {
	guids := make([]guid.GUID, 0, len(texts))
	for _, text := range texts {
		g, err := guid.Parse(text)
		if err != nil {
			return nil, validation("%w", err)
		}
		guids = append(guids, g)
	}
	return guids, nil
}

// description is the parse subcommand's view of one GUID.
type description struct {
	GUID    guid.GUID `json:"guid"`
	Prefix  string    `json:"prefix"`
	Vendor  string    `json:"vendor"`
	Entity  string    `json:"entity"`
	Kind    string    `json:"kind"`
	Builtin string    `json:"builtin,omitempty"`
	Hash    string    `json:"hash"`
}

func describe(g guid.GUID) description {
	vendor := g.Prefix.Vendor()
	builtin, _ := guid.LookupBuiltin(g.Entity)
	return description{
		GUID:    g,
		Prefix:  g.Prefix.String(),
		Vendor:  hex.EncodeToString(vendor[:]),
		Entity:  g.Entity.String(),
		Kind:    g.Kind().String(),
		Builtin: builtin,
		Hash:    fmt.Sprintf("%016x", g.Hash()),
	}
}

func (c *command) writeJSON(value any) error {
	encoder := json.NewEncoder(c.stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return internal("writing JSON: %w", err)
	}
	return nil
}

func (c *command) parse(args []string) error {
	var outputJSON bool
	flagSet := c.newFlagSet("parse")
	flagSet.BoolVar(&outputJSON, "json", false, "print a JSON array instead of text")
	if done, err := parseFlags(flagSet, args); done {
		return err
	}
	if flagSet.NArg() == 0 {
		return validation("parse requires at least one GUID")
	}
	guids, err := parseGUIDs(flagSet.Args())
	if err != nil {
		return err
	}

	descriptions := make([]description, 0, len(guids))
	for _, g := range guids {
		descriptions = append(descriptions, describe(g))
	}

	if outputJSON {
		return c.writeJSON(descriptions)
	}

	writer := tabwriter.NewWriter(c.stdout, 2, 0, 2, ' ', 0)
	for index, entry := range descriptions {
		if index > 0 {
			fmt.Fprintln(writer)
		}
		fmt.Fprintf(writer, "%s\n", entry.GUID)
		fmt.Fprintf(writer, "  prefix:\t%s\n", entry.Prefix)
		fmt.Fprintf(writer, "  vendor:\t%s\n", entry.Vendor)
		fmt.Fprintf(writer, "  entity:\t%s\n", entry.Entity)
		fmt.Fprintf(writer, "  kind:\t%s\n", entry.Kind)
		if entry.Builtin != "" {
			fmt.Fprintf(writer, "  builtin:\t%s\n", entry.Builtin)
		}
		fmt.Fprintf(writer, "  hash:\t%s\n", entry.Hash)
	}
	return writer.Flush()
}

func (c *command) builtins(args []string) error {
	flagSet := c.newFlagSet("builtins")
	if done, err := parseFlags(flagSet, args); done {
		return err
	}
	if flagSet.NArg() > 0 {
		return validation("unexpected argument: %s", flagSet.Arg(0))
	}

	writer := tabwriter.NewWriter(c.stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(writer, "ENTITY\tKIND\tNAME\n")
	for _, entry := range guid.BuiltinEntities() {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", entry.ID, entry.ID.Kind(), entry.Name)
	}
	return writer.Flush()
}

func (c *command) generate(args []string) error {
	var count int
	flagSet := c.newFlagSet("generate")
	flagSet.IntVarP(&count, "count", "n", 1, "number of participant GUIDs to allocate")
	if done, err := parseFlags(flagSet, args); done {
		return err
	}
	if flagSet.NArg() > 0 {
		return validation("unexpected argument: %s", flagSet.Arg(0))
	}
	if count < 1 {
		return validation("--count must be at least 1 (got %d)", count)
	}

	vendor, err := c.config.Vendor()
	if err != nil {
		return validation("%w", err)
	}
	generator := guid.NewGenerator(vendor)
	for range count {
		participant, err := generator.NextParticipant()
		if err != nil {
			return internal("allocating participant: %w", err)
		}
		c.logger.Debug("allocated participant", "guid", participant.String())
		fmt.Fprintln(c.stdout, participant)
	}
	return nil
}

func (c *command) intersect(args []string) error {
	var left, right []string
	flagSet := c.newFlagSet("intersect")
	flagSet.StringSliceVar(&left, "left", nil, "comma-separated GUIDs of the first set")
	flagSet.StringSliceVar(&right, "right", nil, "comma-separated GUIDs of the second set")
	if done, err := parseFlags(flagSet, args); done {
		return err
	}
	if flagSet.NArg() > 0 {
		return validation("unexpected argument: %s", flagSet.Arg(0))
	}

	leftGUIDs, err := parseGUIDs(left)
	if err != nil {
		return err
	}
	rightGUIDs, err := parseGUIDs(right)
	if err != nil {
		return err
	}
	leftSet, rightSet := guid.NewSet(leftGUIDs...), guid.NewSet(rightGUIDs...)
	common := guid.Intersect(leftSet, rightSet)
	c.logger.Debug("intersected GUID sets",
		"left", leftSet.Len(),
		"right", rightSet.Len(),
		"common", common.Len(),
	)
	for g := range common.All() {
		fmt.Fprintln(c.stdout, g)
	}
	return nil
}

// topicKeyType is the dynamic form of a built-in topic key: a single
// keyed GUID member.
var topicKeyType = dynamic.MustNewType("BuiltinTopicKey_t",
	dynamic.Member{Name: "value", Kind: dynamic.KindGUID, Key: true},
)

func (c *command) frame(args []string) error {
	var encodingName, compressionName string
	flagSet := c.newFlagSet("frame")
	flagSet.StringVar(&encodingName, "encoding", c.config.Encoding, "data representation: xcdr1-le, xcdr1-be, xcdr2-le, xcdr2-be")
	flagSet.StringVar(&compressionName, "compression", c.config.Compression, "relay frame compression: none, lz4, zstd")
	if done, err := parseFlags(flagSet, args); done {
		return err
	}
	if flagSet.NArg() == 0 {
		return validation("frame requires at least one GUID")
	}
	encoding, err := serializer.ParseEncoding(encodingName)
	if err != nil {
		return validation("--encoding: %w", err)
	}
	tag, err := buffer.ParseCompressionTag(compressionName)
	if err != nil {
		return validation("--compression: %w", err)
	}
	guids, err := parseGUIDs(flagSet.Args())
	if err != nil {
		return err
	}

	for _, g := range guids {
		data := dynamic.New(topicKeyType)
		if err := data.Set("value", g); err != nil {
			return internal("building topic key: %w", err)
		}
		key := sample.ViewDynamic(data)

		encapsulated, err := sample.EncodeEncapsulated(key, encoding)
		if err != nil {
			return internal("%s: %w", g, err)
		}
		frame, err := sample.Pack(key, tag)
		if err != nil {
			return internal("%s: %w", g, err)
		}
		frameBytes := frame.Bytes()
		frameText := hex.EncodeToString(frameBytes)
		sent := buffer.CompressionTag(frameBytes[0])

		received := sample.OwnDynamic(dynamic.New(topicKeyType))
		if err := sample.Unpack(received, frame); err != nil {
			return internal("%s: %w", g, err)
		}
		if received.Compare(key) != 0 {
			return internal("%s: relay frame restored %s", g, received.Data())
		}
		c.logger.Debug("framed topic key",
			"guid", g.String(),
			"encapsulated_bytes", len(encapsulated),
			"frame_bytes", len(frameBytes),
			"compression", sent.String(),
		)

		fmt.Fprintf(c.stdout, "%s\n", g)
		fmt.Fprintf(c.stdout, "  %s: %s\n", encoding, hex.EncodeToString(encapsulated))
		fmt.Fprintf(c.stdout, "  relay %s: %s\n", sent, frameText)
	}
	return nil
}

func (c *command) version(args []string) error {
	var outputJSON bool
	flagSet := c.newFlagSet("version")
	flagSet.BoolVar(&outputJSON, "json", false, "print build metadata as JSON")
	if done, err := parseFlags(flagSet, args); done {
		return err
	}
	if outputJSON {
		return c.writeJSON(version.Current())
	}
	fmt.Fprintf(c.stdout, "dds-guid %s\n", version.Full())
	return nil
}
