// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package invariant reports programmer errors.
//
// The middleware distinguishes two failure classes. Bad input (a
// truncated datagram, a corrupt frame, a GUID string typed by an
// operator) is an ordinary error value: the caller drops the input and
// keeps going. A broken contract (mutating a read-only sample,
// comparing samples of different types, a serializer that writes a
// different number of bytes than it predicted) cannot happen when the
// surrounding code is correct, so it is never returned as an error.
// [Check] and [Failf] panic with a [*Violation] instead.
//
// Tests that exercise a contract violation recover the panic and
// inspect the [*Violation]; see testutil.RequireViolation.
package invariant
