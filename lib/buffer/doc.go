// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package buffer provides [Block], the opaque byte container samples
// write their transport form into, and the compression frame used when
// a sample is relayed without being deserialized.
//
// A Block is a growable byte slice with a read cursor. Blocks can be
// chained with [Block.Append] so a header and a payload produced
// separately travel as one unit; reads walk the chain in order.
//
// [Compress] wraps a Block's unread bytes in a frame:
//
//	[tag u8][uncompressed length u32 big-endian][payload]
//
// The tag selects LZ4 block compression, zstd, or none. Data that does
// not shrink is stored with [CompressionNone] regardless of the tag
// requested, so the frame is never larger than the input plus the
// five-byte header. [Decompress] validates the tag and the declared
// length and reports [ErrCorruptFrame] for anything inconsistent.
package buffer
