// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package serializer

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned when a bounded Encoder cannot fit a value.
	ErrCapacity = errors.New("serializer: capacity exceeded")

	// ErrTruncated is returned when input ends before a value is
	// complete.
	ErrTruncated = errors.New("serializer: truncated input")

	// ErrMalformed is returned for input that is structurally invalid:
	// an unterminated string, a boolean other than 0 or 1, an unknown
	// encapsulation identifier.
	ErrMalformed = errors.New("serializer: malformed input")
)

// Kind selects the CDR representation.
type Kind uint8

const (
	// XCDR1 is classic CDR: 8-byte values align to 8.
	XCDR1 Kind = 1
	// XCDR2 caps alignment at 4 bytes.
	XCDR2 Kind = 2
)

// Endian selects the byte order of multi-byte primitives.
type Endian uint8

const (
	LittleEndian Endian = iota
	BigEndian
)

// Encoding is a representation plus byte order. The zero value is not
// valid; use one of the predefined encodings or [ParseEncoding].
type Encoding struct {
	Kind   Kind
	Endian Endian
}

// Predefined encodings.
var (
	XCDR1LittleEndian = Encoding{Kind: XCDR1, Endian: LittleEndian}
	XCDR1BigEndian    = Encoding{Kind: XCDR1, Endian: BigEndian}
	XCDR2LittleEndian = Encoding{Kind: XCDR2, Endian: LittleEndian}
	XCDR2BigEndian    = Encoding{Kind: XCDR2, Endian: BigEndian}
)

// Validate reports whether e names a supported representation.
func (e Encoding) Validate() error {
	if e.Kind != XCDR1 && e.Kind != XCDR2 {
		return fmt.Errorf("unsupported encoding kind %d", e.Kind)
	}
	if e.Endian != LittleEndian && e.Endian != BigEndian {
		return fmt.Errorf("unsupported byte order %d", e.Endian)
	}
	return nil
}

// maxAlignment is the largest alignment the representation applies.
func (e Encoding) maxAlignment() int {
	if e.Kind == XCDR1 {
		return 8
	}
	return 4
}

// Alignment returns the alignment applied to a primitive of size bytes.
func (e Encoding) Alignment(size int) int {
	return min(size, e.maxAlignment())
}

// byteOrder reads and appends multi-byte primitives.
type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

func (e Encoding) byteOrder() byteOrder {
	if e.Endian == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// String returns the encoding's name, e.g. "xcdr2-le".
func (e Encoding) String() string {
	var kind, endian string
	switch e.Kind {
	case XCDR1:
		kind = "xcdr1"
	case XCDR2:
		kind = "xcdr2"
	default:
		return fmt.Sprintf("Encoding(%d,%d)", e.Kind, e.Endian)
	}
	switch e.Endian {
	case LittleEndian:
		endian = "le"
	case BigEndian:
		endian = "be"
	default:
		return fmt.Sprintf("Encoding(%d,%d)", e.Kind, e.Endian)
	}
	return kind + "-" + endian
}

// ParseEncoding is the inverse of [Encoding.String].
func ParseEncoding(name string) (Encoding, error) {
	for _, encoding := range []Encoding{XCDR1LittleEndian, XCDR1BigEndian, XCDR2LittleEndian, XCDR2BigEndian} {
		if encoding.String() == name {
			return encoding, nil
		}
	}
	return Encoding{}, fmt.Errorf("unknown encoding %q (want xcdr1-le, xcdr1-be, xcdr2-le or xcdr2-be)", name)
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(data []byte) error {
	parsed, err := ParseEncoding(string(data))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
