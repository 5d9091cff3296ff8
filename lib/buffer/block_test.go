// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package buffer

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestBlockWriteRead(t *testing.T) {
	block := New(4)
	if _, err := block.Write([]byte("hello, ")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	block.WriteByte('w')
	block.Write([]byte("orld"))
	if block.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", block.Len())
	}

	first := make([]byte, 5)
	if err := block.ReadFull(first); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if string(first) != "hello" {
		t.Errorf("ReadFull = %q, want hello", first)
	}
	if got := string(block.Bytes()); got != ", world" {
		t.Errorf("Bytes() = %q, want unread remainder", got)
	}
	if block.Len() != 7 {
		t.Errorf("Len() = %d after partial read, want 7", block.Len())
	}

	rest, err := io.ReadAll(block)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(rest) != ", world" {
		t.Errorf("ReadAll = %q", rest)
	}
	if n, err := block.Read(make([]byte, 1)); n != 0 || err != io.EOF {
		t.Errorf("Read on drained block = %d, %v; want 0, EOF", n, err)
	}
}

func TestBlockReadFullShort(t *testing.T) {
	block := FromBytes([]byte{1, 2, 3})
	err := block.ReadFull(make([]byte, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("ReadFull past end: got %v, want ErrUnexpectedEOF", err)
	}
	if block.Len() != 3 {
		t.Errorf("failed ReadFull consumed bytes: Len() = %d", block.Len())
	}
}

func TestBlockChain(t *testing.T) {
	header := FromBytes([]byte{0xaa, 0xbb})
	payload := FromBytes([]byte{1, 2, 3})
	if err := header.Append(payload); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if header.Next() != payload {
		t.Fatal("Next() does not return the appended block")
	}
	// Writes land on the tail of the chain.
	header.Write([]byte{4})

	if header.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", header.Len())
	}
	want := []byte{0xaa, 0xbb, 1, 2, 3, 4}
	if got := header.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes() = % x, want % x", got, want)
	}

	// A read that spans the boundary.
	span := make([]byte, 3)
	if err := header.ReadFull(span); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if !bytes.Equal(span, []byte{0xaa, 0xbb, 1}) {
		t.Errorf("spanning read = % x", span)
	}
	if got := header.Bytes(); !bytes.Equal(got, []byte{2, 3, 4}) {
		t.Errorf("Bytes() after spanning read = % x", got)
	}
}

func TestBlockAppendCycle(t *testing.T) {
	first := New(0)
	second := New(0)
	if err := first.Append(second); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := second.Append(first); err == nil {
		t.Error("Append accepted a block already in the chain")
	}
	if err := first.Append(nil); err != nil {
		t.Errorf("Append(nil) = %v", err)
	}
}

func TestBlockReset(t *testing.T) {
	block := FromBytes([]byte("abc"))
	block.Append(FromBytes([]byte("def")))
	block.ReadFull(make([]byte, 1))
	block.Reset()
	if block.Len() != 0 || block.Next() != nil {
		t.Fatalf("Reset left Len() = %d, Next() = %v", block.Len(), block.Next())
	}
	block.Write([]byte("xyz"))
	if got := string(block.Bytes()); got != "xyz" {
		t.Errorf("Bytes() after reuse = %q", got)
	}
}

func TestZeroBlock(t *testing.T) {
	var block Block
	if block.Len() != 0 || len(block.Bytes()) != 0 {
		t.Fatal("zero Block is not empty")
	}
	block.Write([]byte{7})
	if got := block.Bytes(); !bytes.Equal(got, []byte{7}) {
		t.Errorf("Bytes() = % x", got)
	}
}

func TestBlockDiscard(t *testing.T) {
	block := FromBytes([]byte{1, 2})
	block.Append(FromBytes([]byte{3, 4, 5}))
	if err := block.Discard(3); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if got := block.Bytes(); !bytes.Equal(got, []byte{4, 5}) {
		t.Errorf("Bytes() after Discard = % x", got)
	}
	if err := block.Discard(3); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Discard past end = %v, want ErrUnexpectedEOF", err)
	}
	if block.Len() != 2 {
		t.Errorf("failed Discard consumed bytes: Len() = %d", block.Len())
	}
}
