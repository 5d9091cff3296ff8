// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package guid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
)

// ErrExhausted is returned when a generator or allocator has handed out
// every value its counter field can represent.
var ErrExhausted = errors.New("identifier space exhausted")

// Generator allocates participant prefixes. A prefix is laid out as
//
//	vendor(2) | node(6) | process(2) | counter(2)
//
// The node id comes from the host's hardware address when one is
// available (random otherwise), the process id from the running
// process, and the counter increases with every allocation. A
// Generator is safe for concurrent use.
type Generator struct {
	vendor  VendorID
	node    [6]byte
	process uint16
	counter atomic.Uint32
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithNodeID overrides the host node id. Tooling and tests use it to
// produce reproducible prefixes.
func WithNodeID(node [6]byte) GeneratorOption {
	return func(generator *Generator) { generator.node = node }
}

// WithProcessID overrides the process id field.
func WithProcessID(process uint16) GeneratorOption {
	return func(generator *Generator) { generator.process = process }
}

// NewGenerator returns a Generator for vendor.
func NewGenerator(vendor VendorID, options ...GeneratorOption) *Generator {
	generator := &Generator{
		vendor:  vendor,
		process: uint16(os.Getpid()),
	}
	copy(generator.node[:], uuid.NodeID())
	for _, option := range options {
		option(generator)
	}
	return generator
}

// NextPrefix returns a prefix no earlier call on this Generator has
// returned. After 65536 prefixes it fails with [ErrExhausted].
func (g *Generator) NextPrefix() (Prefix, error) {
	// The counter stops at 0x10000; failed calls leave it there.
	var sequence uint32
	for {
		sequence = g.counter.Load()
		if sequence > 0xffff {
			return Prefix{}, fmt.Errorf("participant prefix counter: %w", ErrExhausted)
		}
		if g.counter.CompareAndSwap(sequence, sequence+1) {
			break
		}
	}
	var prefix Prefix
	copy(prefix[0:2], g.vendor[:])
	copy(prefix[2:8], g.node[:])
	binary.BigEndian.PutUint16(prefix[8:10], g.process)
	binary.BigEndian.PutUint16(prefix[10:12], uint16(sequence))
	return prefix, nil
}

// NextParticipant returns the GUID of a new participant.
func (g *Generator) NextParticipant() (GUID, error) {
	prefix, err := g.NextPrefix()
	if err != nil {
		return GUID{}, err
	}
	return ParticipantGUID(prefix), nil
}

// maxEntityKey is the largest value an EntityKey can hold.
const maxEntityKey = 1<<24 - 1

// EntityAllocator hands out child entity GUIDs within one participant.
// Keys start at 1 and increase; kinds are chosen per allocation. An
// EntityAllocator is safe for concurrent use.
type EntityAllocator struct {
	participant GUID
	next        atomic.Uint32
}

// NewEntityAllocator returns an allocator for the entities of
// participant. Only participant's prefix is used.
func NewEntityAllocator(participant GUID) *EntityAllocator {
	return &EntityAllocator{participant: participant.Participant()}
}

// Participant returns the participant GUID the allocator derives from.
func (a *EntityAllocator) Participant() GUID { return a.participant }

// Next returns the GUID of a new child entity with the given kind
// octet. Fails with [ErrExhausted] once the 24-bit key space is used up.
func (a *EntityAllocator) Next(kindOctet byte) (GUID, error) {
	var key uint32
	for {
		last := a.next.Load()
		if last >= maxEntityKey {
			return GUID{}, fmt.Errorf("entity key counter for %s: %w", a.participant, ErrExhausted)
		}
		key = last + 1
		if a.next.CompareAndSwap(last, key) {
			break
		}
	}
	return Derive(a.participant, EntityID{Key: EntityKeyFromUint32(key), KindOctet: kindOctet}), nil
}

// NextOfKind is [EntityAllocator.Next] for an [EntityKind], using the
// kind's canonical octet.
func (a *EntityAllocator) NextOfKind(kind EntityKind) (GUID, error) {
	octet, ok := kind.KindOctet()
	if !ok || kind == KindParticipant {
		return GUID{}, fmt.Errorf("entity kind %s cannot be allocated within a participant", kind)
	}
	return a.Next(octet)
}
