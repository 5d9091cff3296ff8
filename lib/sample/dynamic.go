// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"fmt"

	"github.com/bureau-foundation/dds/lib/buffer"
	"github.com/bureau-foundation/dds/lib/codec"
	"github.com/bureau-foundation/dds/lib/dynamic"
	"github.com/bureau-foundation/dds/lib/invariant"
	"github.com/bureau-foundation/dds/lib/serializer"
)

// Dynamic is a sample whose type is described at runtime. Its buffer
// form is the CBOR map produced by [dynamic.Data.MarshalCBOR].
type Dynamic struct {
	flags
	data *dynamic.Data
}

var _ Sample = (*Dynamic)(nil)

// NewDynamic returns a sample over data with the given flags. An Owned
// sample clones data; a Borrowed one references it.
func NewDynamic(data *dynamic.Data, ownership Ownership, readOnly, keyOnly bool) *Dynamic {
	if ownership == Owned {
		data = data.Clone()
	}
	return &Dynamic{
		flags: flags{ownership: ownership, readOnly: readOnly, keyOnly: keyOnly},
		data:  data,
	}
}

func newDynamic(data *dynamic.Data, ownership Ownership, readOnly bool, options []Option) *Dynamic {
	f := newFlags(ownership, readOnly, options)
	return NewDynamic(data, ownership, readOnly, f.keyOnly)
}

// BorrowDynamic returns a mutable sample that references data.
func BorrowDynamic(data *dynamic.Data, options ...Option) *Dynamic {
	return newDynamic(data, Borrowed, false, options)
}

// ViewDynamic returns a read-only sample that references data.
func ViewDynamic(data *dynamic.Data, options ...Option) *Dynamic {
	return newDynamic(data, Borrowed, true, options)
}

// OwnDynamic returns a mutable sample holding a clone of data.
func OwnDynamic(data *dynamic.Data, options ...Option) *Dynamic {
	return newDynamic(data, Owned, false, options)
}

// OwnDynamicReadOnly returns a read-only sample holding a clone of
// data.
func OwnDynamicReadOnly(data *dynamic.Data, options ...Option) *Dynamic {
	return newDynamic(data, Owned, true, options)
}

// TypeName returns the dynamic type's name.
func (s *Dynamic) TypeName() string {
	if s.data == nil {
		return "<released>"
	}
	return s.data.Type().Name()
}

// Data returns the value for reading.
func (s *Dynamic) Data() *dynamic.Data {
	s.checkLive(s.TypeName(), "Data")
	return s.data
}

// MutableData returns the value for modification.
func (s *Dynamic) MutableData() *dynamic.Data {
	s.checkWritable(s.TypeName(), "MutableData")
	return s.data
}

// Serialize writes the members in declaration order.
func (s *Dynamic) Serialize(encoder *serializer.Encoder) error {
	s.checkLive(s.TypeName(), "Serialize")
	return s.data.Serialize(encoder, s.keyOnly)
}

// Deserialize reads the members in declaration order.
func (s *Dynamic) Deserialize(decoder *serializer.Decoder) error {
	s.checkWritable(s.TypeName(), "Deserialize")
	return s.data.Deserialize(decoder, s.keyOnly)
}

// SerializedSize measures with a Sizer.
func (s *Dynamic) SerializedSize(encoding serializer.Encoding) (int, error) {
	s.checkLive(s.TypeName(), "SerializedSize")
	return measure(encoding, s)
}

// Compare orders by key members. other must be a *Dynamic over the
// same *dynamic.Type.
func (s *Dynamic) Compare(other Sample) int {
	if other == nil {
		invariant.Failf(ContractTypeMismatch, "compare %s sample with nil", s.TypeName())
	}
	peer, ok := other.(*Dynamic)
	if !ok {
		invariant.Failf(ContractTypeMismatch, "compare %s sample with %s sample", s.TypeName(), other.TypeName())
	}
	if peer == nil {
		invariant.Failf(ContractTypeMismatch, "compare %s sample with nil", s.TypeName())
	}
	s.checkLive(s.TypeName(), "Compare")
	peer.checkLive(peer.TypeName(), "Compare")
	if s.data.Type() != peer.data.Type() {
		invariant.Failf(ContractTypeMismatch, "compare %s sample with %s sample of a different type", s.TypeName(), peer.TypeName())
	}
	return s.data.Compare(peer.data)
}

// ToBuffer appends the CBOR form of the data.
func (s *Dynamic) ToBuffer(block *buffer.Block) error {
	s.checkLive(s.TypeName(), "ToBuffer")
	encoded, err := codec.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("%s to buffer: %w", s.TypeName(), err)
	}
	_, err = block.Write(encoded)
	return err
}

// FromBuffer decodes one CBOR item from block, consuming only its
// bytes.
func (s *Dynamic) FromBuffer(block *buffer.Block) error {
	s.checkWritable(s.TypeName(), "FromBuffer")
	unread := block.Bytes()
	rest, err := codec.UnmarshalFirst(unread, s.data)
	if err != nil {
		return fmt.Errorf("%s from buffer: %w", s.TypeName(), err)
	}
	return block.Discard(len(unread) - len(rest))
}

// Copy returns an owned clone with the requested mutability.
func (s *Dynamic) Copy(readOnly bool) Sample {
	s.checkLive(s.TypeName(), "Copy")
	return NewDynamic(s.data, Owned, readOnly, s.keyOnly)
}

// Release drops the data of an owned sample.
func (s *Dynamic) Release() {
	if s.ownership != Owned {
		return
	}
	s.data = nil
	s.released = true
}
