// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dynamic

import (
	"errors"
	"fmt"
	"slices"
)

// Kind is the primitive type of a member.
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat64
	KindString
	KindBytes
	KindGUID
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindInt64:   "int64",
	KindUint64:  "uint64",
	KindFloat64: "float64",
	KindString:  "string",
	KindBytes:   "bytes",
	KindGUID:    "guid",
}

func (k Kind) valid() bool { return k >= KindBool && k <= KindGUID }

// String returns the kind's name.
func (k Kind) String() string {
	if k.valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(name string) (Kind, error) {
	for kind := KindBool; kind <= KindGUID; kind++ {
		if kindNames[kind] == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown member kind %q", name)
}

// Member describes one field of a Type.
type Member struct {
	Name string
	Kind Kind
	// Key marks the member as part of the instance key.
	Key bool
}

// ErrInvalidType is returned by [NewType] for a malformed description.
var ErrInvalidType = errors.New("invalid dynamic type")

// Type is an immutable description of a structured sample type.
type Type struct {
	name    string
	members []Member
	index   map[string]int
}

// NewType validates and returns a Type. The name and every member
// name must be non-empty, member names must be unique, and every kind
// must be known.
func NewType(name string, members ...Member) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty type name", ErrInvalidType)
	}
	index := make(map[string]int, len(members))
	for position, member := range members {
		if member.Name == "" {
			return nil, fmt.Errorf("%w: %s member %d has no name", ErrInvalidType, name, position)
		}
		if !member.Kind.valid() {
			return nil, fmt.Errorf("%w: %s.%s has %v", ErrInvalidType, name, member.Name, member.Kind)
		}
		if _, duplicate := index[member.Name]; duplicate {
			return nil, fmt.Errorf("%w: %s declares %q twice", ErrInvalidType, name, member.Name)
		}
		index[member.Name] = position
	}
	return &Type{name: name, members: slices.Clone(members), index: index}, nil
}

// MustNewType is NewType for package-level type declarations.
func MustNewType(name string, members ...Member) *Type {
	t, err := NewType(name, members...)
	if err != nil {
		panic(fmt.Sprintf("dynamic.MustNewType(%q): %v", name, err))
	}
	return t
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Members returns a copy of the member list in declaration order.
func (t *Type) Members() []Member { return slices.Clone(t.members) }

// Member returns the member called name.
func (t *Type) Member(name string) (Member, bool) {
	position, ok := t.index[name]
	if !ok {
		return Member{}, false
	}
	return t.members[position], true
}

// Keyed reports whether any member is part of the key.
func (t *Type) Keyed() bool {
	return slices.ContainsFunc(t.members, func(member Member) bool { return member.Key })
}
