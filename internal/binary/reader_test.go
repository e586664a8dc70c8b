package binary

import (
	"errors"
	"testing"
)

func TestReaderReadUint8(t *testing.T) {
	r := NewReader([]byte{0x42, 0xFF})

	v, err := r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02x", v)
	}

	v, err = r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0xFF {
		t.Errorf("expected 0xFF, got 0x%02x", v)
	}

	if _, err := r.ReadUint8(); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}

func TestReaderReadUint16And32(t *testing.T) {
	// Little-endian: 0x0102 stored as [0x02, 0x01]
	r := NewReader([]byte{0x02, 0x01, 0x78, 0x56, 0x34, 0x12})

	v16, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v16 != 0x0102 {
		t.Errorf("expected 0x0102, got 0x%04x", v16)
	}

	v32, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v32 != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08x", v32)
	}
	if r.Len() != 0 {
		t.Errorf("expected no remaining bytes, got %d", r.Len())
	}
}

func TestReaderReadUintN(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		n        int
		expected uint64
	}{
		{"1 byte", []byte{0xAB}, 1, 0xAB},
		{"2 bytes", []byte{0x34, 0x12}, 2, 0x1234},
		{"3 bytes", []byte{0x56, 0x34, 0x12}, 3, 0x123456},
		{"8 bytes", []byte{8, 7, 6, 5, 4, 3, 2, 1}, 8, 0x0102030405060708},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewReader(tt.data).ReadUintN(tt.n)
			if err != nil {
				t.Fatalf("ReadUintN failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected 0x%x, got 0x%x", tt.expected, got)
			}
		})
	}

	if _, err := NewReader(make([]byte, 16)).ReadUintN(9); err == nil {
		t.Error("expected error for width 9")
	}
}

func TestReaderReadCString(t *testing.T) {
	r := NewReader([]byte("abc\x00de"))

	s, err := r.ReadCString()
	if err != nil {
		t.Fatalf("ReadCString failed: %v", err)
	}
	if s != "abc" {
		t.Errorf("expected %q, got %q", "abc", s)
	}
	if r.Pos() != 4 {
		t.Errorf("expected position 4, got %d", r.Pos())
	}

	if _, err := r.ReadCString(); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer for unterminated string, got %v", err)
	}
}

func TestReaderAlign(t *testing.T) {
	r := NewReader(make([]byte, 32))
	if err := r.Skip(11); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}

	if err := r.Align(2, 8); err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if r.Pos() != 18 {
		t.Errorf("expected position 18, got %d", r.Pos())
	}

	// Already aligned.
	if err := r.Align(2, 8); err != nil {
		t.Fatalf("Align failed: %v", err)
	}
	if r.Pos() != 18 {
		t.Errorf("expected position 18, got %d", r.Pos())
	}
}
