// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package buffer

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"testing"
)

func TestCompressionTagString(t *testing.T) {
	tests := []struct {
		tag  CompressionTag
		want string
	}{
		{CompressionNone, "none"},
		{CompressionLZ4, "lz4"},
		{CompressionZstd, "zstd"},
		{CompressionTag(99), "unknown(99)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tag.String(); got != tt.want {
				t.Errorf("CompressionTag(%d).String() = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParseCompressionTag(t *testing.T) {
	for _, name := range []string{"none", "lz4", "zstd"} {
		t.Run(name, func(t *testing.T) {
			tag, err := ParseCompressionTag(name)
			if err != nil {
				t.Fatalf("ParseCompressionTag(%q) failed: %v", name, err)
			}
			if tag.String() != name {
				t.Errorf("roundtrip: ParseCompressionTag(%q).String() = %q", name, tag.String())
			}
			var unmarshaled CompressionTag
			if err := unmarshaled.UnmarshalText([]byte(name)); err != nil || unmarshaled != tag {
				t.Errorf("UnmarshalText(%q) = %v, %v", name, unmarshaled, err)
			}
		})
	}
	if _, err := ParseCompressionTag("gzip"); err == nil {
		t.Error("ParseCompressionTag(\"gzip\") should fail")
	}
	if _, err := CompressionTag(9).MarshalText(); err == nil {
		t.Error("MarshalText accepted an unknown tag")
	}
}

// compressible returns text with enough repetition for both codecs to
// shrink it.
func compressible() []byte {
	return bytes.Repeat([]byte("sample payload with repeating structure; "), 64)
}

func TestCompressRoundTrip(t *testing.T) {
	for _, tag := range []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(tag.String(), func(t *testing.T) {
			data := compressible()
			source := FromBytes(data)
			frame, err := Compress(source, tag)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			if source.Len() != len(data) {
				t.Error("Compress consumed the source block")
			}
			header := frame.Bytes()[:FrameHeaderSize]
			if CompressionTag(header[0]) != tag {
				t.Errorf("frame tag = %d, want %d", header[0], tag)
			}
			if size := binary.BigEndian.Uint32(header[1:]); int(size) != len(data) {
				t.Errorf("frame length = %d, want %d", size, len(data))
			}
			if tag != CompressionNone && frame.Len() >= len(data) {
				t.Errorf("compressed frame is %d bytes for %d bytes of input", frame.Len(), len(data))
			}

			restored, err := Decompress(frame)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(restored.Bytes(), data) {
				t.Error("round trip changed the payload")
			}
			if frame.Len() != 0 {
				t.Errorf("Decompress left %d bytes in the frame", frame.Len())
			}
		})
	}
}

func TestCompressIncompressibleFallsBack(t *testing.T) {
	data := make([]byte, 512)
	rand.Read(data)
	for _, tag := range []CompressionTag{CompressionLZ4, CompressionZstd} {
		t.Run(tag.String(), func(t *testing.T) {
			frame, err := Compress(FromBytes(data), tag)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			if got := CompressionTag(frame.Bytes()[0]); got != CompressionNone {
				t.Errorf("random data framed with %v, want none", got)
			}
			if frame.Len() != FrameHeaderSize+len(data) {
				t.Errorf("frame is %d bytes, want %d", frame.Len(), FrameHeaderSize+len(data))
			}
			restored, err := Decompress(frame)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(restored.Bytes(), data) {
				t.Error("round trip changed the payload")
			}
		})
	}
}

func TestCompressEmpty(t *testing.T) {
	frame, err := Compress(New(0), CompressionLZ4)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	restored, err := Decompress(frame)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if restored.Len() != 0 {
		t.Errorf("restored %d bytes from an empty frame", restored.Len())
	}
}

func TestCompressChain(t *testing.T) {
	block := FromBytes([]byte("head:"))
	block.Append(FromBytes(compressible()))
	frame, err := Compress(block, CompressionZstd)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	restored, err := Decompress(frame)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if want := append([]byte("head:"), compressible()...); !bytes.Equal(restored.Bytes(), want) {
		t.Error("chained block did not round trip")
	}
}

func TestDecompressCorrupt(t *testing.T) {
	valid, err := Compress(FromBytes(compressible()), CompressionLZ4)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	validBytes := valid.Bytes()

	wrongLength := append([]byte(nil), validBytes...)
	binary.BigEndian.PutUint32(wrongLength[1:], uint32(len(compressible())+1))

	tests := []struct {
		name  string
		frame []byte
	}{
		{"empty", nil},
		{"short header", []byte{0, 0, 0}},
		{"unknown tag", []byte{7, 0, 0, 0, 0}},
		{"none length mismatch", []byte{0, 0, 0, 0, 3, 1, 2}},
		{"lz4 garbage", []byte{1, 0, 0, 0, 8, 0xff, 0xff, 0xff}},
		{"zstd garbage", []byte{2, 0, 0, 0, 8, 0xff, 0xff, 0xff}},
		{"lz4 wrong length", wrongLength},
		{"lz4 truncated payload", validBytes[:len(validBytes)-4]},
		{"lz4 declared length near 2 GiB", []byte{1, 0x7f, 0xff, 0xff, 0xff, 0x00}},
		{"lz4 declared length beyond expansion", []byte{1, 0, 0, 0x10, 0x00, 0x00}},
		{"zstd declared length above limit", []byte{2, 0xff, 0xff, 0xff, 0xff, 0x28, 0xb5, 0x2f, 0xfd}},
		{"none declared length above limit", []byte{0, 0x04, 0x00, 0x00, 0x01}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decompress(FromBytes(append([]byte(nil), test.frame...)))
			if !errors.Is(err, ErrCorruptFrame) {
				t.Errorf("got %v, want ErrCorruptFrame", err)
			}
		})
	}
}

func TestCompressRejectsOversizedPayload(t *testing.T) {
	_, err := Compress(FromBytes(make([]byte, MaxFrameSize+1)), CompressionNone)
	if err == nil {
		t.Fatal("Compress accepted a payload above MaxFrameSize")
	}
}

func TestDecompressAcceptsMaxExpansion(t *testing.T) {
	// A run of zeros compresses near the LZ4 expansion limit and must
	// still pass the declared-length check.
	source := make([]byte, 64<<10)
	frame, err := Compress(FromBytes(source), CompressionLZ4)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if frame.Bytes()[0] != byte(CompressionLZ4) {
		t.Fatalf("frame tag = %d, want lz4", frame.Bytes()[0])
	}
	restored, err := Decompress(frame)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if restored.Len() != len(source) {
		t.Errorf("restored %d bytes, want %d", restored.Len(), len(source))
	}
}

func BenchmarkCompressLZ4(b *testing.B) {
	source := FromBytes(compressible())
	for b.Loop() {
		Compress(source, CompressionLZ4)
	}
}
