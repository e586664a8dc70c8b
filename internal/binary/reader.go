// Package binary provides little-endian cursors over encoded HDF5 datatype messages.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a read runs past the end of the data.
var ErrShortBuffer = errors.New("unexpected end of data")

// Reader reads little-endian fields from a byte slice, tracking its position.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, fmt.Errorf("read %d bytes at %d: %w", n, r.pos, ErrShortBuffer)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUintN reads an unsigned integer of n bytes (1 to 8).
func (r *Reader) ReadUintN(n int) (uint64, error) {
	if n < 1 || n > 8 {
		return 0, fmt.Errorf("invalid integer width %d", n)
	}
	b, err := r.ReadBytes(n)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v, nil
}

// ReadCString reads a null-terminated string and consumes the terminator.
func (r *Reader) ReadCString() (string, error) {
	for i := r.pos; i < len(r.data); i++ {
		if r.data[i] == 0 {
			s := string(r.data[r.pos:i])
			r.pos = i + 1
			return s, nil
		}
	}
	return "", fmt.Errorf("unterminated string at %d: %w", r.pos, ErrShortBuffer)
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// Align advances the position to the next multiple of alignment, measured
// from base.
func (r *Reader) Align(base, alignment int) error {
	rel := r.pos - base
	if rem := rel % alignment; rem != 0 {
		return r.Skip(alignment - rem)
	}
	return nil
}
