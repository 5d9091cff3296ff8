// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dynamic

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/dds/lib/guid"
	"github.com/bureau-foundation/dds/lib/invariant"
	"github.com/bureau-foundation/dds/lib/serializer"
)

var (
	// ErrUnknownMember is returned when a name is not a member of the
	// Data's type.
	ErrUnknownMember = errors.New("unknown member")

	// ErrKindMismatch is returned by Set when the Go value does not
	// match the member's kind.
	ErrKindMismatch = errors.New("value does not match member kind")
)

// Data is one value of a [Type]. Values are held as the Go type that
// corresponds to each member's kind: bool, int32, uint32, int64,
// uint64, float64, string, []byte, guid.GUID.
//
// Data is not safe for concurrent mutation.
type Data struct {
	t      *Type
	values []any
}

func zeroValue(kind Kind) any {
	switch kind {
	case KindBool:
		return false
	case KindInt32:
		return int32(0)
	case KindUint32:
		return uint32(0)
	case KindInt64:
		return int64(0)
	case KindUint64:
		return uint64(0)
	case KindFloat64:
		return float64(0)
	case KindString:
		return ""
	case KindBytes:
		return []byte(nil)
	case KindGUID:
		return guid.GUID{}
	}
	panic(fmt.Sprintf("dynamic: no zero value for %v", kind))
}

// New returns a Data of type t with every member at its zero value.
func New(t *Type) *Data {
	values := make([]any, len(t.members))
	for position, member := range t.members {
		values[position] = zeroValue(member.Kind)
	}
	return &Data{t: t, values: values}
}

// Type returns the Data's type.
func (d *Data) Type() *Type { return d.t }

// Get returns the value of the named member.
func (d *Data) Get(name string) (any, bool) {
	position, ok := d.t.index[name]
	if !ok {
		return nil, false
	}
	return d.values[position], true
}

// Set assigns the named member. The value's Go type must match the
// member's kind exactly; a []byte is stored without copying.
func (d *Data) Set(name string, value any) error {
	position, ok := d.t.index[name]
	if !ok {
		return fmt.Errorf("%s.%s: %w", d.t.name, name, ErrUnknownMember)
	}
	kind := d.t.members[position].Kind
	var matches bool
	switch value.(type) {
	case bool:
		matches = kind == KindBool
	case int32:
		matches = kind == KindInt32
	case uint32:
		matches = kind == KindUint32
	case int64:
		matches = kind == KindInt64
	case uint64:
		matches = kind == KindUint64
	case float64:
		matches = kind == KindFloat64
	case string:
		matches = kind == KindString
	case []byte:
		matches = kind == KindBytes
	case guid.GUID:
		matches = kind == KindGUID
	}
	if !matches {
		return fmt.Errorf("%s.%s is %v, got %T: %w", d.t.name, name, kind, value, ErrKindMismatch)
	}
	d.values[position] = value
	return nil
}

// Clone returns a deep copy of d.
func (d *Data) Clone() *Data {
	values := make([]any, len(d.values))
	for position, value := range d.values {
		if octets, ok := value.([]byte); ok && octets != nil {
			value = bytes.Clone(octets)
		}
		values[position] = value
	}
	return &Data{t: d.t, values: values}
}

// CopyFrom overwrites d's values with a deep copy of source's. Both
// must share a type.
func (d *Data) CopyFrom(source *Data) {
	invariant.Check(d.t == source.t, "dynamic.type-mismatch",
		"copy from %s into %s", source.t.name, d.t.name)
	copy(d.values, source.Clone().values)
}

// Equal reports whether other has the same type and member values.
func (d *Data) Equal(other *Data) bool {
	if d.t != other.t {
		return false
	}
	for position, value := range d.values {
		if compareValues(d.t.members[position].Kind, value, other.values[position]) != 0 {
			return false
		}
	}
	return true
}

// Compare orders two values of the same type by their key members in
// declaration order. A type without key members has a single instance,
// so all of its values compare equal. Comparing values of different
// types is a contract violation.
func (d *Data) Compare(other *Data) int {
	invariant.Check(d.t == other.t, "dynamic.type-mismatch",
		"compare %s with %s", d.t.name, other.t.name)
	for position, member := range d.t.members {
		if !member.Key {
			continue
		}
		if result := compareValues(member.Kind, d.values[position], other.values[position]); result != 0 {
			return result
		}
	}
	return 0
}

func compareValues(kind Kind, a, b any) int {
	switch kind {
	case KindBool:
		x, y := a.(bool), b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case KindInt32:
		return cmp.Compare(a.(int32), b.(int32))
	case KindUint32:
		return cmp.Compare(a.(uint32), b.(uint32))
	case KindInt64:
		return cmp.Compare(a.(int64), b.(int64))
	case KindUint64:
		return cmp.Compare(a.(uint64), b.(uint64))
	case KindFloat64:
		return cmp.Compare(a.(float64), b.(float64))
	case KindString:
		return strings.Compare(a.(string), b.(string))
	case KindBytes:
		return bytes.Compare(a.([]byte), b.([]byte))
	case KindGUID:
		return guid.Compare(a.(guid.GUID), b.(guid.GUID))
	}
	panic(fmt.Sprintf("dynamic: cannot compare %v", kind))
}

// Serialize writes the members in declaration order, or only the key
// members when keyOnly is set.
func (d *Data) Serialize(encoder *serializer.Encoder, keyOnly bool) error {
	for position, member := range d.t.members {
		if keyOnly && !member.Key {
			continue
		}
		if err := writeValue(encoder, member.Kind, d.values[position]); err != nil {
			return fmt.Errorf("%s.%s: %w", d.t.name, member.Name, err)
		}
	}
	return nil
}

func writeValue(encoder *serializer.Encoder, kind Kind, value any) error {
	switch kind {
	case KindBool:
		return encoder.WriteBool(value.(bool))
	case KindInt32:
		return encoder.WriteInt32(value.(int32))
	case KindUint32:
		return encoder.WriteUint32(value.(uint32))
	case KindInt64:
		return encoder.WriteInt64(value.(int64))
	case KindUint64:
		return encoder.WriteUint64(value.(uint64))
	case KindFloat64:
		return encoder.WriteFloat64(value.(float64))
	case KindString:
		return encoder.WriteString(value.(string))
	case KindBytes:
		return encoder.WriteBytes(value.([]byte))
	case KindGUID:
		raw := value.(guid.GUID).Bytes()
		return encoder.WriteOctets(raw[:])
	}
	return fmt.Errorf("cannot serialize %v", kind)
}

// Deserialize reads members in declaration order, or only the key
// members when keyOnly is set, replacing d's values. Members not read
// keep their previous values. On error d may be partially updated.
func (d *Data) Deserialize(decoder *serializer.Decoder, keyOnly bool) error {
	for position, member := range d.t.members {
		if keyOnly && !member.Key {
			continue
		}
		value, err := readValue(decoder, member.Kind)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", d.t.name, member.Name, err)
		}
		d.values[position] = value
	}
	return nil
}

func readValue(decoder *serializer.Decoder, kind Kind) (any, error) {
	switch kind {
	case KindBool:
		return decoder.ReadBool()
	case KindInt32:
		return decoder.ReadInt32()
	case KindUint32:
		return decoder.ReadUint32()
	case KindInt64:
		return decoder.ReadInt64()
	case KindUint64:
		return decoder.ReadUint64()
	case KindFloat64:
		return decoder.ReadFloat64()
	case KindString:
		return decoder.ReadString()
	case KindBytes:
		return decoder.ReadBytes()
	case KindGUID:
		var raw [guid.Size]byte
		if err := decoder.ReadOctets(raw[:]); err != nil {
			return nil, err
		}
		return guid.FromBytes(raw), nil
	}
	return nil, fmt.Errorf("cannot deserialize %v", kind)
}

// String renders the members as "Type{name: value, ...}".
func (d *Data) String() string {
	var builder strings.Builder
	builder.WriteString(d.t.name)
	builder.WriteByte('{')
	for position, member := range d.t.members {
		if position > 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%s: %v", member.Name, d.values[position])
	}
	builder.WriteByte('}')
	return builder.String()
}
