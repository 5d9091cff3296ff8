// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package buffer

import (
	"fmt"
	"io"
)

// Block is a growable byte container with a read cursor and an
// optional continuation. Writes append to the last Block in the
// chain; reads consume from the first Block that has unread bytes.
//
// The zero value is an empty Block ready for use. A Block is not safe
// for concurrent use.
type Block struct {
	data []byte
	read int
	next *Block
}

// New returns an empty Block with room for capacity bytes.
func New(capacity int) *Block {
	return &Block{data: make([]byte, 0, capacity)}
}

// FromBytes returns a Block whose unread contents are data. The Block
// takes ownership of data; the caller must not modify it afterwards.
func FromBytes(data []byte) *Block {
	return &Block{data: data}
}

// tail returns the last Block in the chain.
func (b *Block) tail() *Block {
	last := b
	for last.next != nil {
		last = last.next
	}
	return last
}

// Append links next after the last Block in b's chain. Appending a
// Block that is already part of b's chain would create a cycle and is
// rejected.
func (b *Block) Append(next *Block) error {
	if next == nil {
		return nil
	}
	for link := b; link != nil; link = link.next {
		for other := next; other != nil; other = other.next {
			if link == other {
				return fmt.Errorf("buffer: block already in chain")
			}
		}
	}
	b.tail().next = next
	return nil
}

// Next returns the Block that continues b, or nil.
func (b *Block) Next() *Block { return b.next }

// Write appends p to the last Block in the chain. It never fails.
func (b *Block) Write(p []byte) (int, error) {
	last := b.tail()
	last.data = append(last.data, p...)
	return len(p), nil
}

// WriteByte appends one byte to the last Block in the chain.
func (b *Block) WriteByte(c byte) error {
	last := b.tail()
	last.data = append(last.data, c)
	return nil
}

// Read consumes up to len(p) unread bytes across the chain. It returns
// io.EOF once every Block is exhausted.
func (b *Block) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	total := 0
	for link := b; link != nil && total < len(p); link = link.next {
		copied := copy(p[total:], link.data[link.read:])
		link.read += copied
		total += copied
	}
	if total == 0 {
		return 0, io.EOF
	}
	return total, nil
}

// ReadFull consumes exactly len(p) bytes. If fewer are available
// nothing is consumed and the error wraps io.ErrUnexpectedEOF.
func (b *Block) ReadFull(p []byte) error {
	if available := b.Len(); available < len(p) {
		return fmt.Errorf("buffer: need %d bytes, have %d: %w", len(p), available, io.ErrUnexpectedEOF)
	}
	_, err := b.Read(p)
	return err
}

// Discard consumes n unread bytes without copying them out.
func (b *Block) Discard(n int) error {
	if available := b.Len(); available < n {
		return fmt.Errorf("buffer: discard %d bytes, have %d: %w", n, available, io.ErrUnexpectedEOF)
	}
	for link := b; link != nil && n > 0; link = link.next {
		skipped := min(n, len(link.data)-link.read)
		link.read += skipped
		n -= skipped
	}
	return nil
}

// Len returns the number of unread bytes across the chain.
func (b *Block) Len() int {
	total := 0
	for link := b; link != nil; link = link.next {
		total += len(link.data) - link.read
	}
	return total
}

// Bytes returns the unread bytes without consuming them. For a single
// Block the result aliases its storage until the next write; for a
// chain the bytes are copied into one slice.
func (b *Block) Bytes() []byte {
	if b.next == nil {
		return b.data[b.read:]
	}
	flattened := make([]byte, 0, b.Len())
	for link := b; link != nil; link = link.next {
		flattened = append(flattened, link.data[link.read:]...)
	}
	return flattened
}

// Reset empties the Block, rewinds its cursor, and detaches the chain.
// The underlying storage is kept for reuse.
func (b *Block) Reset() {
	b.data = b.data[:0]
	b.read = 0
	b.next = nil
}
