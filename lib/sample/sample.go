// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"fmt"

	"github.com/bureau-foundation/dds/lib/buffer"
	"github.com/bureau-foundation/dds/lib/invariant"
	"github.com/bureau-foundation/dds/lib/serializer"
)

// Contract names carried by the violations this package raises.
const (
	ContractReadOnly     = "sample.read-only"
	ContractTypeMismatch = "sample.type-mismatch"
	ContractReleased     = "sample.released"
	ContractSizeMismatch = "sample.size-mismatch"
)

// Sample is one data value of a topic type together with its
// ownership, access and projection flags. The only implementations
// are [*Native] and [*Dynamic].
type Sample interface {
	// OwnsData reports whether the sample holds a private copy of its
	// value.
	OwnsData() bool

	// ReadOnly reports whether the sample rejects mutation.
	ReadOnly() bool

	// KeyOnly reports whether serialization covers only key members.
	KeyOnly() bool

	// TypeName returns the topic type name.
	TypeName() string

	// Serialize writes the value, or its key members, to encoder.
	Serialize(encoder *serializer.Encoder) error

	// Deserialize replaces the value, or its key members, with data
	// read from decoder.
	Deserialize(decoder *serializer.Decoder) error

	// SerializedSize returns exactly the number of bytes Serialize
	// would write for encoding.
	SerializedSize(encoding serializer.Encoding) (int, error)

	// Compare orders two samples of the same type by key.
	Compare(other Sample) int

	// ToBuffer appends the value's opaque transport form to block.
	ToBuffer(block *buffer.Block) error

	// FromBuffer replaces the value from its transport form in block.
	FromBuffer(block *buffer.Block) error

	// Copy returns a new owned sample holding a deep copy of the
	// value, with the requested mutability and the same projection.
	Copy(readOnly bool) Sample

	// Release drops an owned sample's value. Borrowed samples are not
	// affected.
	Release()

	// Released reports whether Release dropped the value.
	Released() bool

	sealed()
}

// Ownership states whether a sample holds a private copy of its value.
type Ownership uint8

const (
	// Borrowed samples reference a value the caller owns.
	Borrowed Ownership = iota
	// Owned samples hold a deep copy that no caller can reach.
	Owned
)

// String returns "borrowed" or "owned".
func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	default:
		return fmt.Sprintf("Ownership(%d)", o)
	}
}

// Option adjusts the flags of a sample built by one of the
// constructors.
type Option func(*flags)

// KeyOnly selects the key-only projection.
func KeyOnly() Option {
	return func(f *flags) { f.keyOnly = true }
}

// flags is the state shared by both sample implementations.
type flags struct {
	ownership Ownership
	readOnly  bool
	keyOnly   bool
	released  bool
}

func newFlags(ownership Ownership, readOnly bool, options []Option) flags {
	f := flags{ownership: ownership, readOnly: readOnly}
	for _, option := range options {
		option(&f)
	}
	return f
}

func (f *flags) OwnsData() bool { return f.ownership == Owned }
func (f *flags) ReadOnly() bool { return f.readOnly }
func (f *flags) KeyOnly() bool { return f.keyOnly }
func (f *flags) Released() bool { return f.released }

func (f *flags) sealed() {}

func (f *flags) checkLive(typeName, operation string) {
	invariant.Check(!f.released, ContractReleased, "%s on released %s sample", operation, typeName)
}

func (f *flags) checkWritable(typeName, operation string) {
	f.checkLive(typeName, operation)
	invariant.Check(!f.readOnly, ContractReadOnly, "%s on read-only %s sample", operation, typeName)
}

// Less reports whether a orders before b.
func Less(a, b Sample) bool { return a.Compare(b) < 0 }

// SortFunc orders samples by key; it has the signature slices.SortFunc
// expects.
func SortFunc(a, b Sample) int { return a.Compare(b) }
