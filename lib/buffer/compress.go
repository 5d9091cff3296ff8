// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package buffer

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionTag identifies the compression applied to a frame
// payload. The value is the first byte of every frame; changing the
// numbering breaks frames already in flight.
type CompressionTag uint8

const (
	// CompressionNone stores the payload as-is.
	CompressionNone CompressionTag = 0

	// CompressionLZ4 is LZ4 block compression. Fast, modest ratio;
	// the default for relayed samples.
	CompressionLZ4 CompressionTag = 1

	// CompressionZstd is zstd at the default level. Better ratio for
	// text-heavy samples at a higher CPU cost.
	CompressionZstd CompressionTag = 2
)

// FrameHeaderSize is the length of the tag plus the uncompressed
// length that precede a frame payload.
const FrameHeaderSize = 5

// MaxFrameSize is the largest uncompressed length a frame may carry.
// [Decompress] rejects larger declared lengths before allocating.
const MaxFrameSize = 64 << 20

// lz4MaxExpansion is the largest ratio of decompressed to compressed
// bytes an LZ4 block can produce.
const lz4MaxExpansion = 255

// ErrCorruptFrame is returned by [Decompress] for frames with an
// unknown tag, a truncated header, or a payload that does not expand
// to the declared length.
var ErrCorruptFrame = errors.New("buffer: corrupt frame")

// String returns the name of the tag.
func (tag CompressionTag) String() string {
	switch tag {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", tag)
	}
}

// ParseCompressionTag parses a tag from its name.
func ParseCompressionTag(name string) (CompressionTag, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression tag: %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (tag CompressionTag) MarshalText() ([]byte, error) {
	if tag > CompressionZstd {
		return nil, fmt.Errorf("unknown compression tag %d", tag)
	}
	return []byte(tag.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (tag *CompressionTag) UnmarshalText(text []byte) error {
	parsed, err := ParseCompressionTag(string(text))
	if err != nil {
		return err
	}
	*tag = parsed
	return nil
}

// Compress frames the unread bytes of block with the requested
// compression. The source Block is not consumed. When the payload does
// not shrink the frame is written with CompressionNone.
func Compress(block *Block, tag CompressionTag) (*Block, error) {
	data := block.Bytes()
	if len(data) > MaxFrameSize {
		return nil, fmt.Errorf("buffer: payload of %d bytes exceeds frame limit of %d", len(data), MaxFrameSize)
	}

	if len(data) == 0 && tag <= CompressionZstd {
		tag = CompressionNone
	}

	var payload []byte
	var err error
	switch tag {
	case CompressionNone:
		payload = data
	case CompressionLZ4:
		payload, err = compressLZ4(data)
	case CompressionZstd:
		payload, err = compressZstd(data)
	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
	if err != nil {
		if !errors.Is(err, errIncompressible) {
			return nil, err
		}
		tag, payload = CompressionNone, data
	}

	frame := New(FrameHeaderSize + len(payload))
	frame.data = append(frame.data, byte(tag))
	frame.data = binary.BigEndian.AppendUint32(frame.data, uint32(len(data)))
	frame.data = append(frame.data, payload...)
	return frame, nil
}

// Decompress consumes a frame produced by [Compress] and returns a
// Block holding the original bytes. The declared length is checked
// against [MaxFrameSize] and the payload size before any allocation.
func Decompress(frame *Block) (*Block, error) {
	var header [FrameHeaderSize]byte
	if err := frame.ReadFull(header[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	tag := CompressionTag(header[0])
	declared := binary.BigEndian.Uint32(header[1:])
	if declared > MaxFrameSize {
		return nil, fmt.Errorf("%w: declared length %d exceeds limit of %d", ErrCorruptFrame, declared, MaxFrameSize)
	}
	size := int(declared)
	payload := frame.Bytes()

	var data []byte
	var err error
	switch tag {
	case CompressionNone:
		if len(payload) != size {
			return nil, fmt.Errorf("%w: uncompressed payload is %d bytes, header says %d", ErrCorruptFrame, len(payload), size)
		}
		data = append([]byte(nil), payload...)
	case CompressionLZ4:
		if uint64(size) > uint64(len(payload))*lz4MaxExpansion {
			return nil, fmt.Errorf("%w: lz4 payload of %d bytes cannot expand to %d", ErrCorruptFrame, len(payload), size)
		}
		data, err = decompressLZ4(payload, size)
	case CompressionZstd:
		data, err = decompressZstd(payload, size)
	default:
		return nil, fmt.Errorf("%w: unknown compression tag %d", ErrCorruptFrame, header[0])
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	frame.Reset()
	return FromBytes(data), nil
}

func compressLZ4(data []byte) ([]byte, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	// CompressBlock reports 0 for incompressible input.
	if written == 0 || written >= len(data) {
		return nil, errIncompressible
	}
	return destination[:written], nil
}

func decompressLZ4(compressed []byte, size int) ([]byte, error) {
	destination := make([]byte, size)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != size {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, size)
	}
	return destination, nil
}

// zstd.Encoder and zstd.Decoder are safe for concurrent use, so one of
// each serves every frame.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("buffer: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxFrameSize))
	if err != nil {
		panic("buffer: zstd decoder initialization failed: " + err.Error())
	}
}

func compressZstd(data []byte) ([]byte, error) {
	compressed := zstdEncoder.EncodeAll(data, nil)
	if len(compressed) >= len(data) {
		return nil, errIncompressible
	}
	return compressed, nil
}

// zstdInitialCapacity caps the up-front allocation for a zstd frame;
// DecodeAll grows the slice when the real output is larger.
const zstdInitialCapacity = 1 << 20

func decompressZstd(compressed []byte, size int) ([]byte, error) {
	result, err := zstdDecoder.DecodeAll(compressed, make([]byte, 0, min(size, zstdInitialCapacity)))
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if len(result) != size {
		return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(result), size)
	}
	return result, nil
}

// errIncompressible reports that a payload did not shrink.
var errIncompressible = errors.New("data is incompressible")
