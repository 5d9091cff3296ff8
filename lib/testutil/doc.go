// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for the DDS packages.
//
// [RequireViolation] runs a function that is expected to break a
// contract and checks that it panics with an invariant.Violation for
// the named contract.
//
// [UniqueTypeName] generates distinct dynamic type names for tests that
// build several types of the same shape.
//
// Helpers report failures through t.Fatalf.
package testutil
