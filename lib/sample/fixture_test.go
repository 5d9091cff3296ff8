// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"bytes"

	"github.com/bureau-foundation/dds/lib/buffer"
	"github.com/bureau-foundation/dds/lib/codec"
	"github.com/bureau-foundation/dds/lib/dynamic"
	"github.com/bureau-foundation/dds/lib/guid"
	"github.com/bureau-foundation/dds/lib/serializer"
)

// message is a keyed topic type: (Subject, ID) identifies the
// instance, the rest is payload.
type message struct {
	Subject  guid.GUID `cbor:"subject"`
	ID       uint32    `cbor:"id"`
	Text     string    `cbor:"text"`
	Payload  []byte    `cbor:"payload"`
	Priority int32     `cbor:"priority"`
}

// messagePolicy is written the way a code generator would emit it.
type messagePolicy struct{}

func (messagePolicy) TypeName() string { return "chat::Message" }

func (messagePolicy) Serialize(encoder *serializer.Encoder, value *message, keyOnly bool) error {
	subject := value.Subject.Bytes()
	if err := encoder.WriteOctets(subject[:]); err != nil {
		return err
	}
	if err := encoder.WriteUint32(value.ID); err != nil {
		return err
	}
	if keyOnly {
		return nil
	}
	if err := encoder.WriteString(value.Text); err != nil {
		return err
	}
	if err := encoder.WriteBytes(value.Payload); err != nil {
		return err
	}
	return encoder.WriteInt32(value.Priority)
}

func (messagePolicy) Deserialize(decoder *serializer.Decoder, value *message, keyOnly bool) error {
	var subject [guid.Size]byte
	if err := decoder.ReadOctets(subject[:]); err != nil {
		return err
	}
	id, err := decoder.ReadUint32()
	if err != nil {
		return err
	}
	value.Subject, value.ID = guid.FromBytes(subject), id
	if keyOnly {
		return nil
	}
	if value.Text, err = decoder.ReadString(); err != nil {
		return err
	}
	if value.Payload, err = decoder.ReadBytes(); err != nil {
		return err
	}
	value.Priority, err = decoder.ReadInt32()
	return err
}

func (messagePolicy) Less(a, b *message) bool {
	if order := guid.Compare(a.Subject, b.Subject); order != 0 {
		return order < 0
	}
	return a.ID < b.ID
}

func (messagePolicy) Copy(destination, source *message) {
	*destination = *source
	destination.Payload = bytes.Clone(source.Payload)
}

func (messagePolicy) ToBuffer(block *buffer.Block, value *message) error {
	encoded, err := codec.Marshal(value)
	if err != nil {
		return err
	}
	_, err = block.Write(encoded)
	return err
}

func (messagePolicy) FromBuffer(value *message, block *buffer.Block) error {
	unread := block.Bytes()
	rest, err := codec.UnmarshalFirst(unread, value)
	if err != nil {
		return err
	}
	return block.Discard(len(unread) - len(rest))
}

// sizedMessagePolicy adds a closed-form SerializedSize. No member is
// wider than 4 bytes, so XCDR1 and XCDR2 lay the type out identically.
type sizedMessagePolicy struct{ messagePolicy }

func (sizedMessagePolicy) SerializedSize(_ serializer.Encoding, value *message, keyOnly bool) (int, error) {
	align := func(offset int) int { return (offset + 3) &^ 3 }
	size := guid.Size + 4
	if keyOnly {
		return size, nil
	}
	size = align(size) + 4 + len(value.Text) + 1
	size = align(size) + 4 + len(value.Payload)
	size = align(size) + 4
	return size, nil
}

// skewedMessagePolicy reports a size off by skew bytes.
type skewedMessagePolicy struct {
	messagePolicy
	skew int
}

func (p skewedMessagePolicy) SerializedSize(encoding serializer.Encoding, value *message, keyOnly bool) (int, error) {
	size, err := sizedMessagePolicy{}.SerializedSize(encoding, value, keyOnly)
	return size + p.skew, err
}

// counter is a second topic type, used to provoke cross-type
// comparisons.
type counter struct{ N int64 }

type counterPolicy struct{}

func (counterPolicy) TypeName() string { return "Counter" }

func (counterPolicy) Serialize(encoder *serializer.Encoder, value *counter, _ bool) error {
	return encoder.WriteInt64(value.N)
}

func (counterPolicy) Deserialize(decoder *serializer.Decoder, value *counter, _ bool) error {
	n, err := decoder.ReadInt64()
	value.N = n
	return err
}

func (counterPolicy) Less(a, b *counter) bool { return a.N < b.N }

func (counterPolicy) Copy(destination, source *counter) { *destination = *source }

func (counterPolicy) ToBuffer(block *buffer.Block, value *counter) error {
	encoded, err := codec.Marshal(value.N)
	if err != nil {
		return err
	}
	_, err = block.Write(encoded)
	return err
}

func (counterPolicy) FromBuffer(value *counter, block *buffer.Block) error {
	unread := block.Bytes()
	rest, err := codec.UnmarshalFirst(unread, &value.N)
	if err != nil {
		return err
	}
	return block.Discard(len(unread) - len(rest))
}

var (
	alice = guid.MustParse("01030a0b.0c0d0e0f.00010001.000001c2")
	bob   = guid.MustParse("01030a0b.0c0d0e0f.00010001.000002c2")
)

func sampleMessage() message {
	return message{
		Subject:  alice,
		ID:       3,
		Text:     "status nominal",
		Payload:  []byte{1, 2, 3, 4, 5},
		Priority: -7,
	}
}

// messageType is the dynamic description with the same layout as
// message.
var messageType = dynamic.MustNewType("chat::Message",
	dynamic.Member{Name: "subject", Kind: dynamic.KindGUID, Key: true},
	dynamic.Member{Name: "id", Kind: dynamic.KindUint32, Key: true},
	dynamic.Member{Name: "text", Kind: dynamic.KindString},
	dynamic.Member{Name: "payload", Kind: dynamic.KindBytes},
	dynamic.Member{Name: "priority", Kind: dynamic.KindInt32},
)

func dynamicMessage(value message) *dynamic.Data {
	data := dynamic.New(messageType)
	for name, field := range map[string]any{
		"subject":  value.Subject,
		"id":       value.ID,
		"text":     value.Text,
		"payload":  value.Payload,
		"priority": value.Priority,
	} {
		if err := data.Set(name, field); err != nil {
			panic(err)
		}
	}
	return data
}

var allEncodings = []serializer.Encoding{
	serializer.XCDR1LittleEndian, serializer.XCDR1BigEndian,
	serializer.XCDR2LittleEndian, serializer.XCDR2BigEndian,
}
