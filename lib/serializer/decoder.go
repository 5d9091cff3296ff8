// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package serializer

import (
	"fmt"
	"math"
)

// Decoder reads CDR-encoded values from a byte slice. It never
// modifies or retains the input beyond its own lifetime: ReadBytes and
// ReadString return copies.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	encoding Encoding
	order    byteOrder
	data     []byte
	offset   int
}

// NewDecoder returns a Decoder reading data in encoding.
func NewDecoder(encoding Encoding, data []byte) *Decoder {
	return &Decoder{encoding: encoding, order: encoding.byteOrder(), data: data}
}

// Encoding returns the encoding the Decoder reads.
func (d *Decoder) Encoding() Encoding { return d.encoding }

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int { return d.offset }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.data) - d.offset }

// take skips alignment padding and returns the next size bytes.
func (d *Decoder) take(alignment, size int) ([]byte, error) {
	padding := 0
	if alignment > 1 {
		padding = (alignment - d.offset%alignment) % alignment
	}
	if size < 0 || d.offset+padding+size > len(d.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, padding+size, d.offset, len(d.data)-d.offset)
	}
	start := d.offset + padding
	d.offset = start + size
	return d.data[start:d.offset], nil
}

// ReadBool reads a boolean octet. Values other than 0 and 1 are
// malformed.
func (d *Decoder) ReadBool() (bool, error) {
	octet, err := d.ReadUint8()
	if err != nil {
		return false, err
	}
	switch octet {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: boolean octet %#x at offset %d", ErrMalformed, octet, d.offset-1)
}

// ReadUint8 reads one octet.
func (d *Decoder) ReadUint8() (uint8, error) {
	raw, err := d.take(1, 1)
	if err != nil {
		return 0, err
	}
	return raw[0], nil
}

// ReadInt8 reads one signed octet.
func (d *Decoder) ReadInt8() (int8, error) {
	value, err := d.ReadUint8()
	return int8(value), err
}

// ReadUint16 reads an aligned 16-bit unsigned integer.
func (d *Decoder) ReadUint16() (uint16, error) {
	raw, err := d.take(d.encoding.Alignment(2), 2)
	if err != nil {
		return 0, err
	}
	return d.order.Uint16(raw), nil
}

// ReadInt16 reads an aligned 16-bit signed integer.
func (d *Decoder) ReadInt16() (int16, error) {
	value, err := d.ReadUint16()
	return int16(value), err
}

// ReadUint32 reads an aligned 32-bit unsigned integer.
func (d *Decoder) ReadUint32() (uint32, error) {
	raw, err := d.take(d.encoding.Alignment(4), 4)
	if err != nil {
		return 0, err
	}
	return d.order.Uint32(raw), nil
}

// ReadInt32 reads an aligned 32-bit signed integer.
func (d *Decoder) ReadInt32() (int32, error) {
	value, err := d.ReadUint32()
	return int32(value), err
}

// ReadUint64 reads an aligned 64-bit unsigned integer.
func (d *Decoder) ReadUint64() (uint64, error) {
	raw, err := d.take(d.encoding.Alignment(8), 8)
	if err != nil {
		return 0, err
	}
	return d.order.Uint64(raw), nil
}

// ReadInt64 reads an aligned 64-bit signed integer.
func (d *Decoder) ReadInt64() (int64, error) {
	value, err := d.ReadUint64()
	return int64(value), err
}

// ReadFloat32 reads an IEEE 754 single.
func (d *Decoder) ReadFloat32() (float32, error) {
	bits, err := d.ReadUint32()
	return math.Float32frombits(bits), err
}

// ReadFloat64 reads an IEEE 754 double.
func (d *Decoder) ReadFloat64() (float64, error) {
	bits, err := d.ReadUint64()
	return math.Float64frombits(bits), err
}

// ReadOctets fills destination from a fixed-size octet array.
func (d *Decoder) ReadOctets(destination []byte) error {
	raw, err := d.take(1, len(destination))
	if err != nil {
		return err
	}
	copy(destination, raw)
	return nil
}

// ReadLength reads a sequence length prefix and checks that the
// remaining input can hold that many elements of at least
// minElementSize bytes each. A corrupt length therefore fails here
// instead of driving a huge allocation.
func (d *Decoder) ReadLength(minElementSize int) (int, error) {
	length, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	if minElementSize > 0 && uint64(length)*uint64(minElementSize) > uint64(d.Remaining()) {
		return 0, fmt.Errorf("%w: sequence of %d elements at offset %d, %d bytes remain", ErrTruncated, length, d.offset-4, d.Remaining())
	}
	return int(length), nil
}

// ReadBytes reads an octet sequence and returns a copy of its bytes.
func (d *Decoder) ReadBytes() ([]byte, error) {
	length, err := d.ReadLength(1)
	if err != nil {
		return nil, err
	}
	raw, err := d.take(1, length)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), raw...), nil
}

// ReadString reads a NUL-terminated string. A zero length or a missing
// terminator is malformed.
func (d *Decoder) ReadString() (string, error) {
	length, err := d.ReadLength(1)
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", fmt.Errorf("%w: string length 0 at offset %d (must count the NUL)", ErrMalformed, d.offset-4)
	}
	raw, err := d.take(1, length)
	if err != nil {
		return "", err
	}
	if raw[length-1] != 0 {
		return "", fmt.Errorf("%w: string at offset %d is not NUL-terminated", ErrMalformed, d.offset-length)
	}
	return string(raw[:length-1]), nil
}
