// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"github.com/bureau-foundation/dds/lib/buffer"
	"github.com/bureau-foundation/dds/lib/invariant"
	"github.com/bureau-foundation/dds/lib/serializer"
)

// Policy is the per-type adapter a Native sample delegates to. A
// policy must round trip: deserializing what it serialized yields an
// equal value, for both projections.
type Policy[T any] interface {
	// TypeName returns the topic type name.
	TypeName() string

	// Serialize writes value, or only its key members when keyOnly.
	Serialize(encoder *serializer.Encoder, value *T, keyOnly bool) error

	// Deserialize reads into value, or only its key members when
	// keyOnly.
	Deserialize(decoder *serializer.Decoder, value *T, keyOnly bool) error

	// Less orders two values by key.
	Less(a, b *T) bool

	// Copy deep-copies source into destination.
	Copy(destination, source *T)

	// ToBuffer appends value's opaque transport form to block.
	ToBuffer(block *buffer.Block, value *T) error

	// FromBuffer reads value from its transport form, consuming only
	// the bytes ToBuffer wrote.
	FromBuffer(value *T, block *buffer.Block) error
}

// SizePolicy is implemented by policies that can compute a serialized
// size without running the serializer. Policies without it are sized
// by serializing into a [serializer.NewSizer] Encoder.
type SizePolicy[T any] interface {
	SerializedSize(encoding serializer.Encoding, value *T, keyOnly bool) (int, error)
}

// Native is a sample of the compiled Go type T.
type Native[T any] struct {
	flags
	policy Policy[T]
	value  *T
}

var _ Sample = (*Native[struct{}])(nil)

// Borrow returns a mutable sample that references value.
func Borrow[T any](policy Policy[T], value *T, options ...Option) *Native[T] {
	return &Native[T]{flags: newFlags(Borrowed, false, options), policy: policy, value: value}
}

// View returns a read-only sample that references value.
func View[T any](policy Policy[T], value *T, options ...Option) *Native[T] {
	return &Native[T]{flags: newFlags(Borrowed, true, options), policy: policy, value: value}
}

// Own returns a mutable sample holding a deep copy of value.
func Own[T any](policy Policy[T], value T, options ...Option) *Native[T] {
	return owned(policy, &value, false, options)
}

// OwnReadOnly returns a read-only sample holding a deep copy of value.
func OwnReadOnly[T any](policy Policy[T], value T, options ...Option) *Native[T] {
	return owned(policy, &value, true, options)
}

// New returns a mutable owned sample holding T's zero value, ready to
// be deserialized into.
func New[T any](policy Policy[T], options ...Option) *Native[T] {
	return &Native[T]{flags: newFlags(Owned, false, options), policy: policy, value: new(T)}
}

func owned[T any](policy Policy[T], source *T, readOnly bool, options []Option) *Native[T] {
	value := new(T)
	policy.Copy(value, source)
	return &Native[T]{flags: newFlags(Owned, readOnly, options), policy: policy, value: value}
}

// Policy returns the sample's type adapter.
func (s *Native[T]) Policy() Policy[T] { return s.policy }

// TypeName returns the policy's type name.
func (s *Native[T]) TypeName() string { return s.policy.TypeName() }

// Data returns the value for reading. Callers must not modify it
// through the returned pointer if the sample is read-only.
func (s *Native[T]) Data() *T {
	s.checkLive(s.TypeName(), "Data")
	return s.value
}

// MutableData returns the value for modification.
func (s *Native[T]) MutableData() *T {
	s.checkWritable(s.TypeName(), "MutableData")
	return s.value
}

// Serialize writes the value through the policy.
func (s *Native[T]) Serialize(encoder *serializer.Encoder) error {
	s.checkLive(s.TypeName(), "Serialize")
	return s.policy.Serialize(encoder, s.value, s.keyOnly)
}

// Deserialize reads into the value through the policy.
func (s *Native[T]) Deserialize(decoder *serializer.Decoder) error {
	s.checkWritable(s.TypeName(), "Deserialize")
	return s.policy.Deserialize(decoder, s.value, s.keyOnly)
}

// SerializedSize uses the policy's SizePolicy when it has one and
// measures with a Sizer otherwise.
func (s *Native[T]) SerializedSize(encoding serializer.Encoding) (int, error) {
	s.checkLive(s.TypeName(), "SerializedSize")
	if sizer, ok := s.policy.(SizePolicy[T]); ok {
		return sizer.SerializedSize(encoding, s.value, s.keyOnly)
	}
	return measure(encoding, s)
}

// Compare orders s and other with the policy's Less. other must also
// be a *Native[T].
func (s *Native[T]) Compare(other Sample) int {
	if other == nil {
		invariant.Failf(ContractTypeMismatch, "compare %s sample with nil", s.TypeName())
	}
	peer, ok := other.(*Native[T])
	if !ok {
		invariant.Failf(ContractTypeMismatch, "compare %s sample with %s sample", s.TypeName(), other.TypeName())
	}
	if peer == nil {
		invariant.Failf(ContractTypeMismatch, "compare %s sample with nil", s.TypeName())
	}
	s.checkLive(s.TypeName(), "Compare")
	peer.checkLive(peer.TypeName(), "Compare")
	switch {
	case s.policy.Less(s.value, peer.value):
		return -1
	case s.policy.Less(peer.value, s.value):
		return 1
	}
	return 0
}

// ToBuffer appends the value's transport form through the policy.
func (s *Native[T]) ToBuffer(block *buffer.Block) error {
	s.checkLive(s.TypeName(), "ToBuffer")
	return s.policy.ToBuffer(block, s.value)
}

// FromBuffer reads the value's transport form through the policy.
func (s *Native[T]) FromBuffer(block *buffer.Block) error {
	s.checkWritable(s.TypeName(), "FromBuffer")
	return s.policy.FromBuffer(s.value, block)
}

// Copy returns an owned deep copy with the requested mutability.
func (s *Native[T]) Copy(readOnly bool) Sample {
	s.checkLive(s.TypeName(), "Copy")
	copied := owned(s.policy, s.value, readOnly, nil)
	copied.keyOnly = s.keyOnly
	return copied
}

// Release drops the value of an owned sample. A borrowed sample keeps
// referencing the caller's value.
func (s *Native[T]) Release() {
	if s.ownership != Owned {
		return
	}
	s.value = nil
	s.released = true
}

// measure runs a sample's serializer against a Sizer.
func measure(encoding serializer.Encoding, s Sample) (int, error) {
	sizer := serializer.NewSizer(encoding)
	if err := s.Serialize(sizer); err != nil {
		return 0, err
	}
	return sizer.Len(), nil
}
