package binary

import (
	"bytes"
	"testing"
)

func TestWriterFields(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0x01)
	w.WriteUint16(0x0302)
	w.WriteUint32(0x07060504)
	w.WriteUintN(0x0908, 3)
	w.WriteCString("ab")
	w.WriteBytes([]byte{0xFF})

	expected := []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x00,
		'a', 'b', 0x00,
		0xFF,
	}
	if !bytes.Equal(w.Bytes(), expected) {
		t.Errorf("expected %x, got %x", expected, w.Bytes())
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(0xDEADBEEF)
	w.WriteUintN(0x123456, 3)
	w.WriteCString("name")

	r := NewReader(w.Bytes())
	v32, err := r.ReadUint32()
	if err != nil || v32 != 0xDEADBEEF {
		t.Fatalf("ReadUint32: got 0x%x, err %v", v32, err)
	}
	v, err := r.ReadUintN(3)
	if err != nil || v != 0x123456 {
		t.Fatalf("ReadUintN: got 0x%x, err %v", v, err)
	}
	s, err := r.ReadCString()
	if err != nil || s != "name" {
		t.Fatalf("ReadCString: got %q, err %v", s, err)
	}
}
