package h5type

import (
	"fmt"

	"github.com/robert-malhotra/go-dtype/dtype"
	"github.com/robert-malhotra/go-dtype/internal/binary"
)

// Encode serialises a descriptor as an HDF5 datatype message.
//
// Compound members keep their explicit offsets, so padded and reordered
// layouts survive; the aligned flag itself has no HDF5 equivalent and is
// dropped. Kinds HDF5 cannot express (unicode, complex, timedelta, user
// types, unsized strings, titled fields) return ErrUnsupported.
func Encode(d *dtype.Descriptor) ([]byte, error) {
	w := binary.NewWriter()
	if err := encode(w, d, 0); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func writeHeader(w *binary.Writer, class Class, version uint8, bits uint32, size int) {
	w.WriteUint8(uint8(class) | version<<4)
	w.WriteUintN(uint64(bits), 3)
	w.WriteUint32(uint32(size))
}

func unsupported(d *dtype.Descriptor, reason string) error {
	return fmt.Errorf("encode %s: %s: %w", d.Kind, reason, ErrUnsupported)
}

func encode(w *binary.Writer, d *dtype.Descriptor, depth int) error {
	if d == nil {
		return dtype.ErrNilDescriptor
	}
	if depth > dtype.MaxNestingDepth {
		return dtype.ErrTooDeep
	}

	switch d.Kind {
	case dtype.KindInt, dtype.KindUint:
		bits := orderBits(d)
		if d.Kind == dtype.KindInt {
			bits |= bitSigned
		}
		writeHeader(w, ClassFixedPoint, 1, bits, d.ItemSize)
		w.WriteUint16(0)
		w.WriteUint16(uint16(d.ItemSize * 8))

	case dtype.KindFloat:
		props, signLocation, ok := floatProperties(d.ItemSize)
		if !ok {
			return unsupported(d, "no IEEE layout for this size")
		}
		writeHeader(w, ClassFloatPoint, 1, orderBits(d)|bitMantNorm|signLocation<<8, d.ItemSize)
		w.WriteBytes(props)

	case dtype.KindBool:
		// Stored the way h5py does: an int8 enum of FALSE=0 and TRUE=1.
		writeHeader(w, ClassEnum, 3, 2, 1)
		if err := encode(w, dtype.Int(1), depth+1); err != nil {
			return err
		}
		w.WriteCString("FALSE")
		w.WriteCString("TRUE")
		w.WriteUint8(0)
		w.WriteUint8(1)

	case dtype.KindBytes:
		if d.IsUnsized() {
			return unsupported(d, "unsized string")
		}
		writeHeader(w, ClassString, 1, padNullPad, d.ItemSize)

	case dtype.KindVoid:
		if d.IsUnsized() {
			return unsupported(d, "unsized opaque")
		}
		writeHeader(w, ClassOpaque, 1, 0, d.ItemSize)

	case dtype.KindObject:
		writeHeader(w, ClassReference, 1, 0, 8)

	case dtype.KindDatetime:
		if d.Unit != "s" || d.ItemSize != 8 {
			return unsupported(d, "only second resolution is representable")
		}
		writeHeader(w, ClassTime, 1, orderBits(d), 8)
		w.WriteUint16(64)

	case dtype.KindStruct:
		return encodeCompound(w, d, depth)

	case dtype.KindSubarray:
		if d.Sub == nil {
			return unsupported(d, "missing base")
		}
		writeHeader(w, ClassArray, 3, 0, d.ItemSize)
		w.WriteUint8(uint8(len(d.Sub.Shape)))
		for _, n := range d.Sub.Shape {
			w.WriteUint32(uint32(n))
		}
		return encode(w, d.Sub.Base, depth+1)

	default:
		return unsupported(d, "no HDF5 class")
	}
	return nil
}

func encodeCompound(w *binary.Writer, d *dtype.Descriptor, depth int) error {
	writeHeader(w, ClassCompound, 3, uint32(len(d.Fields)), d.ItemSize)
	width := memberOffsetWidth(uint32(d.ItemSize))
	for _, f := range d.Fields {
		if f.Title != "" {
			return unsupported(d, "field "+f.Name+" has a title")
		}
		w.WriteCString(f.Name)
		w.WriteUintN(uint64(f.Offset), width)
		if err := encode(w, f.Type, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// orderBits returns the byte-order class bit for the descriptor's resolved order.
func orderBits(d *dtype.Descriptor) uint32 {
	big := false
	switch d.Order {
	case dtype.OrderBig:
		big = true
	case dtype.OrderNative:
		big = dtype.NativeOrder() == ">"
	case dtype.OrderSwapped:
		big = dtype.NativeOrder() == "<"
	}
	if big {
		return bitBigEndian
	}
	return 0
}

// floatProperties returns the 12-byte IEEE 754 property block and sign bit
// position for half, single and double precision.
func floatProperties(size int) ([]byte, uint32, bool) {
	switch size {
	case 2:
		return []byte{
			0, 0, // bit offset
			16, 0, // bit precision
			10,          // exponent location
			5,           // exponent size
			0,           // mantissa location
			10,          // mantissa size
			15, 0, 0, 0, // exponent bias
		}, 15, true
	case 4:
		return []byte{
			0, 0,
			32, 0,
			23,
			8,
			0,
			23,
			127, 0, 0, 0,
		}, 31, true
	case 8:
		return []byte{
			0, 0,
			64, 0,
			52,
			11,
			0,
			52,
			255, 3, 0, 0, // 1023
		}, 63, true
	}
	return nil, 0, false
}
