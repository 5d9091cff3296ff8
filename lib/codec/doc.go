// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the shared CBOR configuration.
//
// XCDR (package serializer) is the wire encoding for samples; it is
// what every compliant DDS implementation speaks. CBOR covers the
// self-describing side channels where no peer type description is
// available:
//
//   - the buffer form of dynamic samples (name → value maps), used by
//     the relay path to forward a sample without a type adapter
//   - the compact binary form of GUIDs embedded in those maps and in
//     diagnostic output
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical value always produces identical bytes, so CBOR buffers
// can be compared and hashed directly.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
package codec
