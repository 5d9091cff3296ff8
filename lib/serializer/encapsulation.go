// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package serializer

import (
	"encoding/binary"
	"fmt"
)

// EncapsulationSize is the length of the header that precedes a
// serialized payload on the wire.
const EncapsulationSize = 4

// Representation identifiers carried in the first two (big-endian)
// octets of the encapsulation header.
const (
	representationCDRBigEndian       uint16 = 0x0000
	representationCDRLittleEndian    uint16 = 0x0001
	representationPlainCDR2BigEndian uint16 = 0x0010
	representationPlainCDR2Little    uint16 = 0x0011
)

func (e Encoding) representation() (uint16, error) {
	switch e {
	case XCDR1BigEndian:
		return representationCDRBigEndian, nil
	case XCDR1LittleEndian:
		return representationCDRLittleEndian, nil
	case XCDR2BigEndian:
		return representationPlainCDR2BigEndian, nil
	case XCDR2LittleEndian:
		return representationPlainCDR2Little, nil
	}
	return 0, fmt.Errorf("%w: no representation identifier for %v", ErrMalformed, e)
}

// AppendEncapsulation appends the encapsulation header for encoding to
// destination. The options octets are zero.
func AppendEncapsulation(destination []byte, encoding Encoding) ([]byte, error) {
	identifier, err := encoding.representation()
	if err != nil {
		return destination, err
	}
	destination = binary.BigEndian.AppendUint16(destination, identifier)
	return append(destination, 0, 0), nil
}

// ReadEncapsulation parses the encapsulation header at the start of
// data and returns the encoding it names together with the payload
// that follows. The options octets are ignored.
func ReadEncapsulation(data []byte) (Encoding, []byte, error) {
	if len(data) < EncapsulationSize {
		return Encoding{}, nil, fmt.Errorf("%w: encapsulation header needs %d bytes, have %d", ErrTruncated, EncapsulationSize, len(data))
	}
	var encoding Encoding
	switch identifier := binary.BigEndian.Uint16(data); identifier {
	case representationCDRBigEndian:
		encoding = XCDR1BigEndian
	case representationCDRLittleEndian:
		encoding = XCDR1LittleEndian
	case representationPlainCDR2BigEndian:
		encoding = XCDR2BigEndian
	case representationPlainCDR2Little:
		encoding = XCDR2LittleEndian
	default:
		return Encoding{}, nil, fmt.Errorf("%w: unknown representation identifier %#04x", ErrMalformed, identifier)
	}
	return encoding, data[EncapsulationSize:], nil
}
