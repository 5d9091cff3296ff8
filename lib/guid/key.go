// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guid

// BuiltinTopicKey is the 16-byte key field of the DDS built-in topic
// samples (participant, publication, subscription and topic
// announcements). It carries the announced entity's GUID unchanged.
type BuiltinTopicKey [Size]byte

// ToBuiltinTopicKey copies g's bytes into a built-in topic key.
func (g GUID) ToBuiltinTopicKey() BuiltinTopicKey {
	return BuiltinTopicKey(g.Bytes())
}

// FromBuiltinTopicKey is the inverse of [GUID.ToBuiltinTopicKey]. Every
// 16-byte key maps to exactly one GUID.
func FromBuiltinTopicKey(key BuiltinTopicKey) GUID {
	return FromBytes([Size]byte(key))
}
