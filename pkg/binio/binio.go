// Package binio provides cursor-based readers and growable writers for the
// little-endian binary formats used by quest files. The Reader tracks a read
// position and reports truncation as an error instead of panicking, which
// keeps the disassembler robust against corrupt input.
package binio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrUnexpectedEnd is returned when a read runs past the end of the input.
var ErrUnexpectedEnd = errors.New("unexpected end of data")

// Reader reads scalar values from a byte slice at a movable offset.
type Reader struct {
	data []byte
	off  int
}

// NewReader Readerを作成
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Where returns the current read offset.
func (r *Reader) Where() int {
	return r.off
}

// Size returns the total length of the underlying data.
func (r *Reader) Size() int {
	return len(r.data)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// EOF reports whether the cursor is at or past the end of the data.
func (r *Reader) EOF() bool {
	return r.off >= len(r.data)
}

// Go moves the cursor to an absolute offset.
func (r *Reader) Go(off int) error {
	if off < 0 || off > len(r.data) {
		return fmt.Errorf("seek to %#x out of range (size %#x): %w", off, len(r.data), ErrUnexpectedEnd)
	}
	r.off = off
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	return r.Go(r.off + n)
}

func (r *Reader) need(n int) error {
	if r.off+n > len(r.data) {
		return fmt.Errorf("read of %d bytes at %#x exceeds size %#x: %w", n, r.off, len(r.data), ErrUnexpectedEnd)
	}
	return nil
}

// U8 reads an unsigned byte.
func (r *Reader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.off]
	r.off++
	return v, nil
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v, nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

// F32 reads a little-endian float32.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Bytes reads n bytes and returns them as a subslice of the input.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.data[r.off : r.off+n]
	r.off += n
	return v, nil
}

// Sub returns a Reader over the n bytes at the current offset without
// advancing the cursor.
func (r *Reader) Sub(n int) (*Reader, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	return NewReader(r.data[r.off : r.off+n]), nil
}

// PU32 reads a little-endian uint32 at an absolute offset without moving
// the cursor.
func (r *Reader) PU32(off int) (uint32, error) {
	if off < 0 || off+4 > len(r.data) {
		return 0, fmt.Errorf("read of 4 bytes at %#x exceeds size %#x: %w", off, len(r.data), ErrUnexpectedEnd)
	}
	return binary.LittleEndian.Uint32(r.data[off:]), nil
}

// PBytes returns the n bytes at an absolute offset without moving the cursor.
func (r *Reader) PBytes(off, n int) ([]byte, error) {
	if off < 0 || off+n > len(r.data) {
		return nil, fmt.Errorf("read of %d bytes at %#x exceeds size %#x: %w", n, off, len(r.data), ErrUnexpectedEnd)
	}
	return r.data[off : off+n], nil
}

// CString reads bytes up to and including a zero terminator and returns the
// bytes before the terminator.
func (r *Reader) CString() ([]byte, error) {
	start := r.off
	for r.off < len(r.data) {
		if r.data[r.off] == 0 {
			v := r.data[start:r.off]
			r.off++
			return v, nil
		}
		r.off++
	}
	return nil, fmt.Errorf("unterminated string at %#x: %w", start, ErrUnexpectedEnd)
}

// WString reads 16-bit units up to and including a zero terminator and
// returns the raw bytes before the terminator.
func (r *Reader) WString() ([]byte, error) {
	start := r.off
	for r.off+2 <= len(r.data) {
		if r.data[r.off] == 0 && r.data[r.off+1] == 0 {
			v := r.data[start:r.off]
			r.off += 2
			return v, nil
		}
		r.off += 2
	}
	return nil, fmt.Errorf("unterminated wide string at %#x: %w", start, ErrUnexpectedEnd)
}

// Writer builds a byte buffer of little-endian values. Offsets written
// earlier can be patched later, which the assembler uses for register
// placeholders and table fixups.
type Writer struct {
	buf []byte
}

// NewWriter Writerを作成
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Write appends raw bytes.
func (w *Writer) Write(p []byte) {
	w.buf = append(w.buf, p...)
}

// PutU8 appends an unsigned byte.
func (w *Writer) PutU8(v uint8) {
	w.buf = append(w.buf, v)
}

// PutU16 appends a little-endian uint16.
func (w *Writer) PutU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// PutBEU16 appends a big-endian uint16. Two-byte opcodes are stored with
// the high byte first.
func (w *Writer) PutBEU16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

// PutU32 appends a little-endian uint32.
func (w *Writer) PutU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// PutF32 appends a little-endian float32.
func (w *Writer) PutF32(v float32) {
	w.PutU32(math.Float32bits(v))
}

// ExtendBy appends n zero bytes.
func (w *Writer) ExtendBy(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}

// ExtendTo pads the buffer with zeroes until it is at least n bytes long.
func (w *Writer) ExtendTo(n int) {
	if len(w.buf) < n {
		w.ExtendBy(n - len(w.buf))
	}
}

// Align pads the buffer with zeroes to a multiple of n.
func (w *Writer) Align(n int) {
	if rem := len(w.buf) % n; rem != 0 {
		w.ExtendBy(n - rem)
	}
}

// PatchU8 overwrites a single byte at an earlier offset.
func (w *Writer) PatchU8(off int, v uint8) error {
	if off < 0 || off >= len(w.buf) {
		return fmt.Errorf("patch at %#x out of range (size %#x)", off, len(w.buf))
	}
	w.buf[off] = v
	return nil
}
