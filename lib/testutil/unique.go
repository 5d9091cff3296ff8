// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"sync/atomic"
)

var uniqueCounter atomic.Uint64

// UniqueTypeName returns an IDL-style type name "prefix_N" with N
// increasing on every call. Dynamic types compare by identity, so
// tests that build several types of the same shape name them apart to
// keep failure messages readable.
//
//	name := testutil.UniqueTypeName("Sensor") // "Sensor_1", "Sensor_2", ...
func UniqueTypeName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, uniqueCounter.Add(1))
}
