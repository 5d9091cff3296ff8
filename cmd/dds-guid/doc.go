// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Dds-guid inspects and produces DDS entity identifiers. It renders the
// parts of a GUID (participant prefix, entity id, kind, built-in name,
// stable hash), lists the built-in entity catalogue, allocates new
// participant GUIDs for the configured vendor, intersects GUID sets,
// and shows the wire and relay forms of a GUID carried as a built-in
// topic key.
//
// Configuration comes from --config, else the file named by DDS_CONFIG,
// else built-in defaults. Subcommands: parse, builtins, generate,
// intersect, frame, version.
package main
