// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dynamic

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/dds/lib/codec"
	"github.com/bureau-foundation/dds/lib/guid"
)

// MarshalCBOR encodes d as a map from member name to value. GUIDs are
// 16-byte byte strings; everything else uses its natural CBOR type.
func (d *Data) MarshalCBOR() ([]byte, error) {
	fields := make(map[string]any, len(d.values))
	for position, member := range d.t.members {
		fields[member.Name] = d.values[position]
	}
	return codec.Marshal(fields)
}

// UnmarshalCBOR replaces d's values with those in a map produced by
// MarshalCBOR. d must already have a type (see [New]); members absent
// from the map are reset to their zero values and names that are not
// members are rejected.
func (d *Data) UnmarshalCBOR(data []byte) error {
	if d.t == nil {
		return errors.New("dynamic: UnmarshalCBOR into Data without a type")
	}
	var fields map[string]codec.RawMessage
	if err := codec.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%s: %w", d.t.name, err)
	}
	values := make([]any, len(d.t.members))
	for position, member := range d.t.members {
		values[position] = zeroValue(member.Kind)
	}
	for name, raw := range fields {
		position, ok := d.t.index[name]
		if !ok {
			return fmt.Errorf("%s.%s: %w", d.t.name, name, ErrUnknownMember)
		}
		value, err := decodeField(d.t.members[position].Kind, raw)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", d.t.name, name, err)
		}
		values[position] = value
	}
	d.values = values
	return nil
}

func decodeField(kind Kind, raw codec.RawMessage) (any, error) {
	switch kind {
	case KindBool:
		return decodeAs[bool](raw)
	case KindInt32:
		return decodeAs[int32](raw)
	case KindUint32:
		return decodeAs[uint32](raw)
	case KindInt64:
		return decodeAs[int64](raw)
	case KindUint64:
		return decodeAs[uint64](raw)
	case KindFloat64:
		return decodeAs[float64](raw)
	case KindString:
		return decodeAs[string](raw)
	case KindBytes:
		return decodeAs[[]byte](raw)
	case KindGUID:
		return decodeAs[guid.GUID](raw)
	}
	return nil, fmt.Errorf("cannot decode %v", kind)
}

func decodeAs[T any](raw codec.RawMessage) (any, error) {
	var value T
	if err := codec.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}
