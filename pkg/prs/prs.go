// Package prs implements decompression of the PRS format, an LZ77 variant
// used for embedded image archives. Control bits are consumed LSB-first
// from flag bytes interleaved with the literal and copy data.
package prs

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when the compressed stream ends mid-command.
var ErrTruncated = errors.New("compressed data is truncated")

type bitReader struct {
	data []byte
	off  int
	bits uint8
	n    int
}

func (r *bitReader) readBit() (uint8, error) {
	if r.n == 0 {
		if r.off >= len(r.data) {
			return 0, fmt.Errorf("flag byte at %#x: %w", r.off, ErrTruncated)
		}
		r.bits = r.data[r.off]
		r.off++
		r.n = 8
	}
	b := r.bits & 1
	r.bits >>= 1
	r.n--
	return b, nil
}

func (r *bitReader) readByte() (uint8, error) {
	if r.off >= len(r.data) {
		return 0, fmt.Errorf("data byte at %#x: %w", r.off, ErrTruncated)
	}
	v := r.data[r.off]
	r.off++
	return v, nil
}

// Decompress expands a PRS stream. It returns the decompressed data and the
// number of input bytes consumed, so callers can detect trailing bytes after
// the end-of-stream marker.
func Decompress(data []byte) ([]byte, int, error) {
	r := &bitReader{data: data}
	var out []byte

	copyBack := func(offset, count int) error {
		src := len(out) + offset
		if src < 0 {
			return fmt.Errorf("backreference to %d before start of output", src)
		}
		for z := 0; z < count; z++ {
			out = append(out, out[src+z])
		}
		return nil
	}

	for {
		b, err := r.readBit()
		if err != nil {
			return nil, r.off, err
		}
		if b == 1 {
			v, err := r.readByte()
			if err != nil {
				return nil, r.off, err
			}
			out = append(out, v)
			continue
		}

		b, err = r.readBit()
		if err != nil {
			return nil, r.off, err
		}
		if b == 1 {
			// Long copy. A zero offset word marks the end of the stream.
			lo, err := r.readByte()
			if err != nil {
				return nil, r.off, err
			}
			hi, err := r.readByte()
			if err != nil {
				return nil, r.off, err
			}
			word := int(lo) | int(hi)<<8
			if word == 0 {
				return out, r.off, nil
			}
			offset := (word >> 3) - 0x2000
			count := word & 7
			if count == 0 {
				v, err := r.readByte()
				if err != nil {
					return nil, r.off, err
				}
				count = int(v) + 1
			} else {
				count += 2
			}
			if err := copyBack(offset, count); err != nil {
				return nil, r.off, err
			}
			continue
		}

		// Short copy. Two more control bits give the count.
		b1, err := r.readBit()
		if err != nil {
			return nil, r.off, err
		}
		b2, err := r.readBit()
		if err != nil {
			return nil, r.off, err
		}
		count := int(b1)<<1 | int(b2)
		count += 2
		v, err := r.readByte()
		if err != nil {
			return nil, r.off, err
		}
		offset := int(v) - 0x100
		if err := copyBack(offset, count); err != nil {
			return nil, r.off, err
		}
	}
}
