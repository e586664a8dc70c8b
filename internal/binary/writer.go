package binary

// Writer appends little-endian fields to a growing byte slice.
type Writer struct {
	buf []byte
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends data.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// WriteUint8 appends an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint16 appends an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) {
	w.WriteUintN(uint64(v), 2)
}

// WriteUint32 appends an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	w.WriteUintN(uint64(v), 4)
}

// WriteUintN appends the low n bytes of v.
func (w *Writer) WriteUintN(v uint64, n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, byte(v>>(8*i)))
	}
}

// WriteCString appends s followed by a null terminator.
func (w *Writer) WriteCString(s string) {
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
}
