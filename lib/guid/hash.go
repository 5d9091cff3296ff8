// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guid

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// hashDomainKey keys BLAKE3 so GUID hashes never collide with hashes
// of the same 16 bytes computed for another purpose. The value is the
// ASCII domain name zero-padded to 32 bytes; changing it changes every
// shard assignment derived from Hash.
var hashDomainKey = [32]byte{
	'd', 'd', 's', '.', 'g', 'u', 'i', 'd', 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Hash returns a 64-bit hash of g's raw bytes, stable across processes
// and releases. Equal GUIDs hash equal. Use it where a hash must agree
// between participants (shard selection, consistent placement); a Go
// map keyed by GUID needs no explicit hash.
func (g GUID) Hash() uint64 {
	hasher, err := blake3.NewKeyed(hashDomainKey[:])
	if err != nil {
		// NewKeyed only fails for keys that are not 32 bytes.
		panic("guid: blake3 keyed hasher: " + err.Error())
	}
	raw := g.Bytes()
	hasher.Write(raw[:])
	return binary.LittleEndian.Uint64(hasher.Sum(nil)[:8])
}
