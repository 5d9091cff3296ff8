// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guid

import (
	"bytes"
	"fmt"
)

// EntityKey distinguishes entities within one participant.
type EntityKey [3]byte

// EntityKeyFromUint32 packs the low 24 bits of n, least significant
// byte first.
func EntityKeyFromUint32(n uint32) EntityKey {
	return EntityKey{byte(n), byte(n >> 8), byte(n >> 16)}
}

// Uint32 is the inverse of [EntityKeyFromUint32].
func (k EntityKey) Uint32() uint32 {
	return uint32(k[0]) | uint32(k[1])<<8 | uint32(k[2])<<16
}

// EntityID identifies one entity within a participant.
type EntityID struct {
	Key       EntityKey
	KindOctet byte
}

// Entity kind octets. The 0xc0 bits mark built-in entities, 0x40 marks
// vendor-specific kinds.
const (
	KindOctetUserUnknown          byte = 0x00
	KindOctetUserWriterWithKey    byte = 0x02
	KindOctetUserWriterNoKey      byte = 0x03
	KindOctetUserReaderNoKey      byte = 0x04
	KindOctetUserReaderWithKey    byte = 0x07
	KindOctetVendorSubscriber     byte = 0x41
	KindOctetVendorPublisher      byte = 0x42
	KindOctetVendorTopic          byte = 0x45
	KindOctetVendorUser           byte = 0x4a
	KindOctetBuiltinUnknown       byte = 0xc0
	KindOctetBuiltinParticipant   byte = 0xc1
	KindOctetBuiltinWriterWithKey byte = 0xc2
	KindOctetBuiltinWriterNoKey   byte = 0xc3
	KindOctetBuiltinReaderNoKey   byte = 0xc4
	KindOctetBuiltinTopic         byte = 0xc5
	KindOctetBuiltinReaderWithKey byte = 0xc7
)

// Bytes returns the 4-byte wire representation.
func (e EntityID) Bytes() [4]byte {
	return [4]byte{e.Key[0], e.Key[1], e.Key[2], e.KindOctet}
}

// CompareEntityIDs compares the raw bytes of two entity ids.
func CompareEntityIDs(a, b EntityID) int {
	left, right := a.Bytes(), b.Bytes()
	return bytes.Compare(left[:], right[:])
}

// Less reports whether e sorts before other.
func (e EntityID) Less(other EntityID) bool { return CompareEntityIDs(e, other) < 0 }

// String renders the entity id as eight lowercase hex digits.
func (e EntityID) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x", e.Key[0], e.Key[1], e.Key[2], e.KindOctet)
}

// Kind classifies the entity by its kind octet.
func (e EntityID) Kind() EntityKind {
	switch e.KindOctet {
	case KindOctetBuiltinParticipant:
		return KindParticipant
	case KindOctetUserWriterWithKey, KindOctetUserWriterNoKey:
		return KindUserWriter
	case KindOctetUserReaderWithKey, KindOctetUserReaderNoKey:
		return KindUserReader
	case KindOctetVendorTopic:
		return KindUserTopic
	case KindOctetBuiltinWriterWithKey, KindOctetBuiltinWriterNoKey:
		return KindBuiltinWriter
	case KindOctetBuiltinReaderWithKey, KindOctetBuiltinReaderNoKey:
		return KindBuiltinReader
	case KindOctetBuiltinTopic:
		return KindBuiltinTopic
	case KindOctetVendorPublisher:
		return KindPublisher
	case KindOctetVendorSubscriber:
		return KindSubscriber
	case KindOctetVendorUser:
		return KindUser
	default:
		return KindUnknown
	}
}

// IsBuiltin reports whether the kind octet marks a built-in entity.
func (e EntityID) IsBuiltin() bool { return e.KindOctet&0xc0 == 0xc0 }

// IsWriter reports whether e names a user or built-in data writer.
func (e EntityID) IsWriter() bool {
	kind := e.Kind()
	return kind == KindUserWriter || kind == KindBuiltinWriter
}

// IsReader reports whether e names a user or built-in data reader.
func (e EntityID) IsReader() bool {
	kind := e.Kind()
	return kind == KindUserReader || kind == KindBuiltinReader
}

// IsTopic reports whether e names a user or built-in topic.
func (e EntityID) IsTopic() bool {
	kind := e.Kind()
	return kind == KindUserTopic || kind == KindBuiltinTopic
}

// HasKey reports whether e names a writer or reader of a keyed type.
func (e EntityID) HasKey() bool {
	switch e.KindOctet {
	case KindOctetUserWriterWithKey, KindOctetUserReaderWithKey,
		KindOctetBuiltinWriterWithKey, KindOctetBuiltinReaderWithKey:
		return true
	}
	return false
}

// EntityKind is the classification of an entity derived from its kind
// octet. It is informational and never takes part in equality.
type EntityKind uint8

const (
	// KindUnknown covers the user and built-in unknown octets and any
	// octet this implementation does not recognize.
	KindUnknown EntityKind = iota
	KindParticipant
	KindUserWriter
	KindUserReader
	KindUserTopic
	KindBuiltinWriter
	KindBuiltinReader
	KindBuiltinTopic
	KindPublisher
	KindSubscriber
	// KindUser is for identifiers of things that are not DDS entities.
	KindUser
)

var entityKindNames = [...]string{
	KindUnknown:       "unknown",
	KindParticipant:   "participant",
	KindUserWriter:    "user-writer",
	KindUserReader:    "user-reader",
	KindUserTopic:     "user-topic",
	KindBuiltinWriter: "builtin-writer",
	KindBuiltinReader: "builtin-reader",
	KindBuiltinTopic:  "builtin-topic",
	KindPublisher:     "publisher",
	KindSubscriber:    "subscriber",
	KindUser:          "user",
}

// String returns the kind's name, e.g. "builtin-writer".
func (k EntityKind) String() string {
	if int(k) < len(entityKindNames) {
		return entityKindNames[k]
	}
	return fmt.Sprintf("EntityKind(%d)", uint8(k))
}

// ParseEntityKind is the inverse of [EntityKind.String].
func ParseEntityKind(name string) (EntityKind, error) {
	for kind, kindName := range entityKindNames {
		if kindName == name {
			return EntityKind(kind), nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown entity kind %q", name)
}

// KindOctet returns the canonical kind octet for a user-created entity
// of kind k. Writers and readers use the with-key variants. Reports
// false for kinds that are never allocated by applications (built-in
// endpoints, unknown).
func (k EntityKind) KindOctet() (byte, bool) {
	switch k {
	case KindParticipant:
		return KindOctetBuiltinParticipant, true
	case KindUserWriter:
		return KindOctetUserWriterWithKey, true
	case KindUserReader:
		return KindOctetUserReaderWithKey, true
	case KindUserTopic:
		return KindOctetVendorTopic, true
	case KindPublisher:
		return KindOctetVendorPublisher, true
	case KindSubscriber:
		return KindOctetVendorSubscriber, true
	case KindUser:
		return KindOctetVendorUser, true
	}
	return 0, false
}
