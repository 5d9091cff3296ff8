// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package serializer

import (
	"fmt"
	"math"
)

// unbounded marks an Encoder without a capacity limit.
const unbounded = -1

var zeroPadding [8]byte

// Encoder appends CDR-encoded values to a buffer. Each Write method
// aligns, checks capacity and appends. After an error the buffer may
// hold a partial value (a string's length prefix without its bytes);
// callers abandon the Encoder.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	encoding Encoding
	order    byteOrder
	buffer   []byte
	length   int
	capacity int
	measure  bool
}

// NewEncoder returns an unbounded Encoder for encoding.
func NewEncoder(encoding Encoding) *Encoder {
	return &Encoder{encoding: encoding, order: encoding.byteOrder(), capacity: unbounded}
}

// NewBoundedEncoder returns an Encoder that refuses to grow past
// capacity bytes. The buffer is allocated up front.
func NewBoundedEncoder(encoding Encoding, capacity int) *Encoder {
	return &Encoder{
		encoding: encoding,
		order:    encoding.byteOrder(),
		buffer:   make([]byte, 0, capacity),
		capacity: capacity,
	}
}

// NewSizer returns an Encoder that counts the bytes each write would
// produce without storing them. Len reports the total.
func NewSizer(encoding Encoding) *Encoder {
	return &Encoder{encoding: encoding, order: encoding.byteOrder(), capacity: unbounded, measure: true}
}

// Encoding returns the encoding the Encoder writes.
func (e *Encoder) Encoding() Encoding { return e.encoding }

// Len returns the number of bytes written (or counted) so far.
func (e *Encoder) Len() int { return e.length }

// Bytes returns the encoded bytes. A Sizer returns nil. The slice
// aliases the Encoder's buffer until the next write.
func (e *Encoder) Bytes() []byte { return e.buffer }

// IsSizer reports whether the Encoder only counts.
func (e *Encoder) IsSizer() bool { return e.measure }

// prepare reserves padding plus size bytes for a value aligned to
// alignment, writes the padding, and reports whether the caller should
// append the value itself (false for a Sizer).
func (e *Encoder) prepare(alignment, size int) (bool, error) {
	padding := 0
	if alignment > 1 {
		padding = (alignment - e.length%alignment) % alignment
	}
	if e.capacity != unbounded && e.length+padding+size > e.capacity {
		return false, fmt.Errorf("%w: %d bytes at offset %d, capacity %d", ErrCapacity, padding+size, e.length, e.capacity)
	}
	e.length += padding + size
	if e.measure {
		return false, nil
	}
	e.buffer = append(e.buffer, zeroPadding[:padding]...)
	return true, nil
}

// WriteBool writes a boolean as one octet, 0 or 1.
func (e *Encoder) WriteBool(value bool) error {
	var octet uint8
	if value {
		octet = 1
	}
	return e.WriteUint8(octet)
}

// WriteUint8 writes one octet.
func (e *Encoder) WriteUint8(value uint8) error {
	write, err := e.prepare(1, 1)
	if write {
		e.buffer = append(e.buffer, value)
	}
	return err
}

// WriteInt8 writes one signed octet.
func (e *Encoder) WriteInt8(value int8) error { return e.WriteUint8(uint8(value)) }

// WriteUint16 writes an aligned 16-bit unsigned integer.
func (e *Encoder) WriteUint16(value uint16) error {
	write, err := e.prepare(e.encoding.Alignment(2), 2)
	if write {
		e.buffer = e.order.AppendUint16(e.buffer, value)
	}
	return err
}

// WriteInt16 writes an aligned 16-bit signed integer.
func (e *Encoder) WriteInt16(value int16) error { return e.WriteUint16(uint16(value)) }

// WriteUint32 writes an aligned 32-bit unsigned integer.
func (e *Encoder) WriteUint32(value uint32) error {
	write, err := e.prepare(e.encoding.Alignment(4), 4)
	if write {
		e.buffer = e.order.AppendUint32(e.buffer, value)
	}
	return err
}

// WriteInt32 writes an aligned 32-bit signed integer.
func (e *Encoder) WriteInt32(value int32) error { return e.WriteUint32(uint32(value)) }

// WriteUint64 writes an aligned 64-bit unsigned integer.
func (e *Encoder) WriteUint64(value uint64) error {
	write, err := e.prepare(e.encoding.Alignment(8), 8)
	if write {
		e.buffer = e.order.AppendUint64(e.buffer, value)
	}
	return err
}

// WriteInt64 writes an aligned 64-bit signed integer.
func (e *Encoder) WriteInt64(value int64) error { return e.WriteUint64(uint64(value)) }

// WriteFloat32 writes an IEEE 754 single.
func (e *Encoder) WriteFloat32(value float32) error { return e.WriteUint32(math.Float32bits(value)) }

// WriteFloat64 writes an IEEE 754 double.
func (e *Encoder) WriteFloat64(value float64) error { return e.WriteUint64(math.Float64bits(value)) }

// WriteOctets writes a fixed-size octet array with no length prefix.
func (e *Encoder) WriteOctets(octets []byte) error {
	write, err := e.prepare(1, len(octets))
	if write {
		e.buffer = append(e.buffer, octets...)
	}
	return err
}

// WriteLength writes a sequence or string length prefix.
func (e *Encoder) WriteLength(length int) error {
	if length < 0 || uint64(length) > math.MaxUint32 {
		return fmt.Errorf("%w: length %d does not fit a uint32 prefix", ErrCapacity, length)
	}
	return e.WriteUint32(uint32(length))
}

// WriteBytes writes an octet sequence: uint32 length, then the octets.
func (e *Encoder) WriteBytes(octets []byte) error {
	if err := e.WriteLength(len(octets)); err != nil {
		return err
	}
	return e.WriteOctets(octets)
}

// WriteString writes a string: uint32 length including the NUL, the
// bytes, then the NUL.
func (e *Encoder) WriteString(value string) error {
	if err := e.WriteLength(len(value) + 1); err != nil {
		return err
	}
	write, err := e.prepare(1, len(value)+1)
	if write {
		e.buffer = append(e.buffer, value...)
		e.buffer = append(e.buffer, 0)
	}
	return err
}
