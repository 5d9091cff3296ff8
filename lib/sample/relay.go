// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"fmt"

	"github.com/bureau-foundation/dds/lib/buffer"
)

// Pack writes s's buffer form and wraps it in a compression frame.
// The frame carries the value opaquely: a relay can forward it and a
// receiver restores the value with [Unpack] without either side
// running the XCDR serializer.
func Pack(s Sample, tag buffer.CompressionTag) (*buffer.Block, error) {
	block := buffer.New(0)
	if err := s.ToBuffer(block); err != nil {
		return nil, fmt.Errorf("packing %s: %w", s.TypeName(), err)
	}
	return buffer.Compress(block, tag)
}

// Unpack restores a frame produced by [Pack] into destination, which
// must be a writable sample of the same type.
func Unpack(destination Sample, frame *buffer.Block) error {
	block, err := buffer.Decompress(frame)
	if err != nil {
		return fmt.Errorf("unpacking %s: %w", destination.TypeName(), err)
	}
	if err := destination.FromBuffer(block); err != nil {
		return fmt.Errorf("unpacking %s: %w", destination.TypeName(), err)
	}
	if block.Len() != 0 {
		return fmt.Errorf("unpacking %s: %d bytes left after the value", destination.TypeName(), block.Len())
	}
	return nil
}
