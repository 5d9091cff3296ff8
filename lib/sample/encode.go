// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/dds/lib/invariant"
	"github.com/bureau-foundation/dds/lib/serializer"
)

// Encode serializes s into a buffer sized by SerializedSize. A sample
// whose serializer writes a different number of bytes than its size
// predicts breaks the size contract and panics.
func Encode(s Sample, encoding serializer.Encoding) ([]byte, error) {
	size, err := s.SerializedSize(encoding)
	if err != nil {
		return nil, fmt.Errorf("sizing %s: %w", s.TypeName(), err)
	}
	encoder := serializer.NewBoundedEncoder(encoding, size)
	if err := s.Serialize(encoder); err != nil {
		if errors.Is(err, serializer.ErrCapacity) {
			invariant.Failf(ContractSizeMismatch, "%s serialized past its predicted size of %d bytes", s.TypeName(), size)
		}
		return nil, fmt.Errorf("serializing %s: %w", s.TypeName(), err)
	}
	invariant.Check(encoder.Len() == size, ContractSizeMismatch,
		"%s serialized %d bytes, predicted %d", s.TypeName(), encoder.Len(), size)
	return encoder.Bytes(), nil
}

// Decode deserializes data into s. Bytes after the value are ignored.
func Decode(s Sample, encoding serializer.Encoding, data []byte) error {
	if err := s.Deserialize(serializer.NewDecoder(encoding, data)); err != nil {
		return fmt.Errorf("deserializing %s: %w", s.TypeName(), err)
	}
	return nil
}

// EncodeEncapsulated is Encode preceded by the encapsulation header
// naming encoding.
func EncodeEncapsulated(s Sample, encoding serializer.Encoding) ([]byte, error) {
	header, err := serializer.AppendEncapsulation(nil, encoding)
	if err != nil {
		return nil, err
	}
	payload, err := Encode(s, encoding)
	if err != nil {
		return nil, err
	}
	return append(header, payload...), nil
}

// DecodeEncapsulated reads the encapsulation header and deserializes
// the payload that follows in the encoding it names.
func DecodeEncapsulated(s Sample, data []byte) error {
	encoding, payload, err := serializer.ReadEncapsulation(data)
	if err != nil {
		return fmt.Errorf("deserializing %s: %w", s.TypeName(), err)
	}
	return Decode(s, encoding, payload)
}
