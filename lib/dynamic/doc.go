// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package dynamic holds sample data whose type is described at runtime
// rather than compiled in.
//
// A [Type] is a named, ordered list of members, each with a primitive
// [Kind] and a flag marking it as part of the instance key. [Data] is
// one value of a Type. It serializes to XCDR in member order (key
// members only for the key-only projection), orders by its key members
// in declaration order, and converts to a CBOR map keyed by member
// name for the opaque transport path.
//
// Types are compared by identity: two Data values are of the same type
// only if they were created from the same *Type.
package dynamic
