package prs

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompress(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
		consumed int
	}{
		{
			name: "リテラルのみ",
			// Control bits: literal, literal, end marker.
			input:    []byte{0x0B, 'A', 'B', 0x00, 0x00},
			expected: []byte("AB"),
			consumed: 5,
		},
		{
			name: "短距離コピー",
			// One literal, then a 2-byte copy from offset -1, then end.
			input:    []byte{0x41, 'A', 0xFF, 0x00, 0x00},
			expected: []byte("AAA"),
			consumed: 5,
		},
		{
			name: "長距離コピー",
			// Three literals, then a 4-byte copy from offset -3, then end.
			input:    []byte{0x57, 'A', 'B', 'C', 0xEA, 0xFF, 0x00, 0x00},
			expected: []byte("ABCABCA"),
			consumed: 8,
		},
		{
			name: "長距離コピー（拡張カウント）",
			// Count bits of zero pull the real count from the next byte.
			input:    []byte{0x57, 'A', 'B', 'C', 0xE8, 0xFF, 0x04, 0x00, 0x00},
			expected: []byte("ABCABCAB"),
			consumed: 9,
		},
		{
			name: "終端マーカー後の余剰バイト",
			// Consumed count stops at the end marker.
			input:    []byte{0x0B, 'A', 'B', 0x00, 0x00, 0xFF, 0xFF},
			expected: []byte("AB"),
			consumed: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, consumed, err := Decompress(tt.input)
			if err != nil {
				t.Fatalf("Decompress returned error: %v", err)
			}
			if !bytes.Equal(out, tt.expected) {
				t.Errorf("Decompress output = %q, want %q", out, tt.expected)
			}
			if consumed != tt.consumed {
				t.Errorf("consumed = %d, want %d", consumed, tt.consumed)
			}
		})
	}
}

func TestDecompressErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "空の入力", input: []byte{}},
		{name: "リテラルのデータが無い", input: []byte{0x01}},
		{name: "終端マーカーの途中で切れている", input: []byte{0x02, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Decompress(tt.input); !errors.Is(err, ErrTruncated) {
				t.Errorf("expected ErrTruncated, got %v", err)
			}
		})
	}
}

func TestDecompressBadBackreference(t *testing.T) {
	// A copy command before any output has been produced cannot be satisfied.
	_, _, err := Decompress([]byte{0x00, 0xFF})
	if err == nil || errors.Is(err, ErrTruncated) {
		t.Errorf("expected backreference error, got %v", err)
	}
}
