// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package guid implements RTPS entity identity: the 16-byte GUID that
// names every participant, topic, publisher, subscriber, data writer
// and data reader, including the built-in discovery endpoints.
//
// A [GUID] is a 12-byte [Prefix] naming the owning participant followed
// by a 4-byte [EntityID] (3-byte [EntityKey] plus one kind octet)
// naming an entity inside it. GUIDs are plain comparable values: they
// can key Go maps, be copied freely, and be shared between goroutines
// without locking.
//
// Ordering is the lexicographic order of the raw 16 bytes ([Compare]).
// It is deliberately not field-aware: GUIDs cross the wire in a fixed
// byte order and every participant must sort them identically.
//
// Construction:
//
//   - [Make] combines a prefix with an entity id
//   - [Derive] copies a parent's prefix and replaces the entity id
//   - [Generator] allocates fresh participant prefixes
//   - [EntityAllocator] allocates child entity ids within a participant
//
// The text form is four period-separated groups of eight hex digits,
// e.g. 010003c1.00000001.00000000.000001c1 ([GUID.String], [Parse]).
// The CBOR form is a 16-byte byte string.
//
// [Set] is a sorted set of GUIDs with merge-based set algebra; [Pair]
// keys local/remote associations such as writer/reader matches.
package guid
