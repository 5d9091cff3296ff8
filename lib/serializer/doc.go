// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package serializer encodes and decodes sample data in the OMG
// Extended CDR representations (XCDR1 and XCDR2) for final types.
//
// An [Encoding] selects the representation and byte order. Primitives
// are aligned to their natural size relative to the start of the
// stream, capped at 8 bytes for XCDR1 and 4 bytes for XCDR2; padding
// bytes are zero. Strings are a uint32 length that counts the
// terminating NUL, the bytes, then the NUL. Octet sequences are a
// uint32 length followed by the bytes.
//
// [Encoder] appends to an in-memory buffer, optionally bounded: a
// write past the bound fails with [ErrCapacity]. [NewSizer] returns an
// Encoder that only counts, so a type's serialized size can be computed
// by running its serializer against a Sizer; the count is exact by
// construction. [Decoder] reads the same layout and reports
// [ErrTruncated] for input that ends early and [ErrMalformed] for
// input that is structurally invalid.
//
// The four-byte RTPS encapsulation header that precedes a serialized
// payload is handled by [AppendEncapsulation] and [ReadEncapsulation].
package serializer
