// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guid

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/bureau-foundation/dds/lib/codec"
)

// ErrMalformed is wrapped by every text and binary decoding failure.
var ErrMalformed = errors.New("malformed GUID")

// textLength is four groups of eight hex digits plus three periods.
const textLength = 4*8 + 3

// String renders g as four period-separated groups of eight lowercase
// hex digits: "010003c1.00000001.00000000.000001c1".
func (g GUID) String() string {
	raw := g.Bytes()
	var text [textLength]byte
	position := 0
	for group := range 4 {
		if group > 0 {
			text[position] = '.'
			position++
		}
		hex.Encode(text[position:position+8], raw[group*4:group*4+4])
		position += 8
	}
	return string(text[:])
}

// String renders the prefix as three period-separated groups of eight
// hex digits, the first three groups of the GUID text form.
func (p Prefix) String() string {
	full := Make(p, EntityIDUnknown).String()
	return full[:3*8+2]
}

// Parse is the exact inverse of [GUID.String]. Hex digits may be upper
// or lower case. Anything else fails with an error wrapping
// [ErrMalformed]; no partial result is returned.
func Parse(text string) (GUID, error) {
	if len(text) != textLength {
		return GUID{}, fmt.Errorf("%w: %q: want %d characters, got %d", ErrMalformed, text, textLength, len(text))
	}
	var raw [Size]byte
	for group := range 4 {
		start := group * 9
		if group > 0 && text[start-1] != '.' {
			return GUID{}, fmt.Errorf("%w: %q: expected '.' at offset %d", ErrMalformed, text, start-1)
		}
		if _, err := hex.Decode(raw[group*4:group*4+4], []byte(text[start:start+8])); err != nil {
			return GUID{}, fmt.Errorf("%w: %q: group %d: %v", ErrMalformed, text, group+1, err)
		}
	}
	return FromBytes(raw), nil
}

// MustParse is like [Parse] but panics on error. Use in tests and
// static initialization where the input is known-valid.
func MustParse(text string) GUID {
	g, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("guid.MustParse(%q): %v", text, err))
	}
	return g
}

// MarshalText implements encoding.TextMarshaler using the dotted hex
// form. The unknown GUID marshals as its zero text, not as empty.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input
// produces the unknown GUID so that an empty JSON or YAML string
// decodes as the zero value; [Parse] still rejects "".
func (g *GUID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*g = Unknown
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler. Encodes as a CBOR byte string
// containing the raw 16 bytes: 17 bytes on the wire versus 37 for the
// text form.
func (g GUID) MarshalCBOR() ([]byte, error) {
	raw := g.Bytes()
	return codec.Marshal(raw[:])
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (g *GUID) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := codec.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: CBOR: %v", ErrMalformed, err)
	}
	if len(raw) != Size {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformed, Size, len(raw))
	}
	*g = FromBytes([Size]byte(raw))
	return nil
}
