// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sample wraps one data value of a topic type so the
// publish/subscribe machinery can serialize, deserialize, order and
// copy it without knowing the concrete type.
//
// [Sample] has exactly two implementations. [Native] holds a value of
// a compiled Go type T and delegates every type-specific operation to
// a [Policy] for T, the adapter a code generator emits per topic type.
// [Dynamic] holds a [dynamic.Data] whose type is described at runtime.
//
// Every sample carries three independent flags fixed at construction:
//
//   - ownership: an Owned sample holds a private deep copy of its
//     value; a Borrowed sample holds the caller's pointer and never
//     copies it.
//   - read-only: deserializing into a read-only sample, or asking for
//     its mutable data, is a contract violation.
//   - key-only: serialization covers only the key members.
//
// Contract violations (writing to a read-only sample, comparing
// samples of different types, using a released sample) panic with an
// invariant.Violation. Malformed input and capacity exhaustion are
// ordinary errors.
//
// [Encode] and [Decode] move a sample to and from a byte slice in a
// chosen encoding; [EncodeEncapsulated] and [DecodeEncapsulated] add
// the four-byte representation header. [Pack] and [Unpack] carry a
// sample's opaque buffer form through a compression frame for relays
// that forward data without deserializing it.
package sample
