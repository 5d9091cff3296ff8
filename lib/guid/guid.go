// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guid

import "bytes"

// Size is the encoded size of a GUID in bytes.
const Size = 16

// Prefix identifies a participant. It is globally unique by
// construction (see [Generator]) and shared by every entity the
// participant owns.
type Prefix [12]byte

// VendorID is the two-byte RTPS vendor identifier that starts every
// prefix produced by a compliant implementation.
type VendorID [2]byte

// VendorIDOCI is the vendor id registered for OpenDDS, used as the
// default for prefixes generated by this implementation.
var VendorIDOCI = VendorID{0x01, 0x03}

// PrefixUnknown is the nil participant prefix.
var PrefixUnknown = Prefix{}

// Vendor returns the vendor id stored in the first two bytes.
func (p Prefix) Vendor() VendorID { return VendorID{p[0], p[1]} }

// IsZero reports whether p is the nil prefix.
func (p Prefix) IsZero() bool { return p == Prefix{} }

// GUID is the 16-byte identity of a DDS entity.
type GUID struct {
	Prefix Prefix
	Entity EntityID
}

// Unknown is the reserved all-zero GUID meaning "no entity".
var Unknown = GUID{}

// Make combines a participant prefix with an entity id.
func Make(prefix Prefix, entity EntityID) GUID {
	return GUID{Prefix: prefix, Entity: entity}
}

// Derive returns the GUID of a child entity of parent: parent's prefix
// is copied verbatim and the entity id replaced.
func Derive(parent GUID, entity EntityID) GUID {
	return GUID{Prefix: parent.Prefix, Entity: entity}
}

// ParticipantGUID returns the GUID of the participant that owns prefix.
func ParticipantGUID(prefix Prefix) GUID {
	return Make(prefix, EntityIDParticipant)
}

// UnknownGUID returns prefix combined with the unknown entity id. It
// addresses "every entity of this participant" in RTPS submessages.
func UnknownGUID(prefix Prefix) GUID {
	return Make(prefix, EntityIDUnknown)
}

// FromBytes reinterprets 16 raw bytes as a GUID.
func FromBytes(raw [Size]byte) GUID {
	var g GUID
	copy(g.Prefix[:], raw[:12])
	copy(g.Entity.Key[:], raw[12:15])
	g.Entity.KindOctet = raw[15]
	return g
}

// Bytes returns the 16-byte wire representation.
func (g GUID) Bytes() [Size]byte {
	var raw [Size]byte
	copy(raw[:12], g.Prefix[:])
	copy(raw[12:15], g.Entity.Key[:])
	raw[15] = g.Entity.KindOctet
	return raw
}

// Participant returns the GUID of the participant that owns g.
func (g GUID) Participant() GUID { return ParticipantGUID(g.Prefix) }

// UnknownEntity returns g's prefix combined with the unknown entity id.
func (g GUID) UnknownEntity() GUID { return UnknownGUID(g.Prefix) }

// IsZero reports whether g is the unknown GUID.
func (g GUID) IsZero() bool { return g == Unknown }

// Kind classifies g by its entity kind octet.
func (g GUID) Kind() EntityKind { return g.Entity.Kind() }

// Compare returns -1, 0 or +1 comparing the raw bytes of a and b.
func Compare(a, b GUID) int {
	left, right := a.Bytes(), b.Bytes()
	return bytes.Compare(left[:], right[:])
}

// Compare is the method form of [Compare].
func (g GUID) Compare(other GUID) int { return Compare(g, other) }

// Less reports whether g sorts before other.
func (g GUID) Less(other GUID) bool { return Compare(g, other) < 0 }

// Equal reports byte equality. Equivalent to ==.
func (g GUID) Equal(other GUID) bool { return g == other }

// EqualPrefixes reports whether a and b belong to the same participant.
func EqualPrefixes(a, b GUID) bool { return a.Prefix == b.Prefix }
