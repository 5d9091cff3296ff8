// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guid

// Well-known entity ids from the RTPS specification. These values are
// protocol constants: every compliant implementation uses the same
// bytes, so changing one breaks discovery with every peer.
var (
	EntityIDUnknown     = EntityID{EntityKey{0x00, 0x00, 0x00}, 0x00}
	EntityIDParticipant = EntityID{EntityKey{0x00, 0x00, 0x01}, 0xc1}

	EntityIDSEDPBuiltinTopicWriter         = EntityID{EntityKey{0x00, 0x00, 0x02}, 0xc2}
	EntityIDSEDPBuiltinTopicReader         = EntityID{EntityKey{0x00, 0x00, 0x02}, 0xc7}
	EntityIDSEDPBuiltinPublicationsWriter  = EntityID{EntityKey{0x00, 0x00, 0x03}, 0xc2}
	EntityIDSEDPBuiltinPublicationsReader  = EntityID{EntityKey{0x00, 0x00, 0x03}, 0xc7}
	EntityIDSEDPBuiltinSubscriptionsWriter = EntityID{EntityKey{0x00, 0x00, 0x04}, 0xc2}
	EntityIDSEDPBuiltinSubscriptionsReader = EntityID{EntityKey{0x00, 0x00, 0x04}, 0xc7}

	EntityIDSPDPBuiltinParticipantWriter = EntityID{EntityKey{0x00, 0x01, 0x00}, 0xc2}
	EntityIDSPDPBuiltinParticipantReader = EntityID{EntityKey{0x00, 0x01, 0x00}, 0xc7}

	EntityIDP2PBuiltinParticipantMessageWriter = EntityID{EntityKey{0x00, 0x02, 0x00}, 0xc2}
	EntityIDP2PBuiltinParticipantMessageReader = EntityID{EntityKey{0x00, 0x02, 0x00}, 0xc7}

	// XTypes type lookup service.
	EntityIDTypeLookupRequestWriter = EntityID{EntityKey{0x00, 0x03, 0x00}, 0xc3}
	EntityIDTypeLookupRequestReader = EntityID{EntityKey{0x00, 0x03, 0x00}, 0xc4}
	EntityIDTypeLookupReplyWriter   = EntityID{EntityKey{0x00, 0x03, 0x01}, 0xc3}
	EntityIDTypeLookupReplyReader   = EntityID{EntityKey{0x00, 0x03, 0x01}, 0xc4}
)

// BuiltinEntity is one row of the well-known entity catalogue.
type BuiltinEntity struct {
	// Name is the identifier used by the RTPS and XTypes
	// specifications, e.g. "ENTITYID_SPDP_BUILTIN_PARTICIPANT_WRITER".
	Name string
	ID   EntityID
}

var builtinEntities = []BuiltinEntity{
	{"ENTITYID_PARTICIPANT", EntityIDParticipant},
	{"ENTITYID_SEDP_BUILTIN_TOPIC_WRITER", EntityIDSEDPBuiltinTopicWriter},
	{"ENTITYID_SEDP_BUILTIN_TOPIC_READER", EntityIDSEDPBuiltinTopicReader},
	{"ENTITYID_SEDP_BUILTIN_PUBLICATIONS_WRITER", EntityIDSEDPBuiltinPublicationsWriter},
	{"ENTITYID_SEDP_BUILTIN_PUBLICATIONS_READER", EntityIDSEDPBuiltinPublicationsReader},
	{"ENTITYID_SEDP_BUILTIN_SUBSCRIPTIONS_WRITER", EntityIDSEDPBuiltinSubscriptionsWriter},
	{"ENTITYID_SEDP_BUILTIN_SUBSCRIPTIONS_READER", EntityIDSEDPBuiltinSubscriptionsReader},
	{"ENTITYID_SPDP_BUILTIN_PARTICIPANT_WRITER", EntityIDSPDPBuiltinParticipantWriter},
	{"ENTITYID_SPDP_BUILTIN_PARTICIPANT_READER", EntityIDSPDPBuiltinParticipantReader},
	{"ENTITYID_P2P_BUILTIN_PARTICIPANT_MESSAGE_WRITER", EntityIDP2PBuiltinParticipantMessageWriter},
	{"ENTITYID_P2P_BUILTIN_PARTICIPANT_MESSAGE_READER", EntityIDP2PBuiltinParticipantMessageReader},
	{"ENTITYID_TL_SVC_REQ_WRITER", EntityIDTypeLookupRequestWriter},
	{"ENTITYID_TL_SVC_REQ_READER", EntityIDTypeLookupRequestReader},
	{"ENTITYID_TL_SVC_REPLY_WRITER", EntityIDTypeLookupReplyWriter},
	{"ENTITYID_TL_SVC_REPLY_READER", EntityIDTypeLookupReplyReader},
}

// BuiltinEntities returns the well-known entity catalogue in
// specification order. The returned slice is a copy.
func BuiltinEntities() []BuiltinEntity {
	return append([]BuiltinEntity(nil), builtinEntities...)
}

// LookupBuiltin returns the catalogue name of a well-known entity id.
func LookupBuiltin(id EntityID) (string, bool) {
	for _, entry := range builtinEntities {
		if entry.ID == id {
			return entry.Name, true
		}
	}
	return "", false
}

// LookupBuiltinName returns the entity id registered under name.
func LookupBuiltinName(name string) (EntityID, bool) {
	for _, entry := range builtinEntities {
		if entry.Name == name {
			return entry.ID, true
		}
	}
	return EntityID{}, false
}
