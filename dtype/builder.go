package dtype

import "strconv"

// Bool returns the one-byte boolean descriptor.
func Bool() *Descriptor {
	return &Descriptor{Kind: KindBool, ItemSize: 1, Order: OrderNA}
}

// Int returns a native signed integer descriptor of the given byte size.
func Int(size int) *Descriptor { return numeric(KindInt, size) }

// Uint returns a native unsigned integer descriptor of the given byte size.
func Uint(size int) *Descriptor { return numeric(KindUint, size) }

// Float returns a native floating-point descriptor of the given byte size.
func Float(size int) *Descriptor { return numeric(KindFloat, size) }

// Complex returns a native complex descriptor of the given byte size.
func Complex(size int) *Descriptor { return numeric(KindComplex, size) }

func numeric(kind Kind, size int) *Descriptor {
	order := OrderNative
	if size == 1 {
		order = OrderNA
	}
	return &Descriptor{Kind: kind, ItemSize: size, Order: order}
}

// Object returns the object-reference descriptor. Its size is the platform pointer size.
func Object() *Descriptor {
	return &Descriptor{Kind: KindObject, ItemSize: strconv.IntSize / 8, Order: OrderNA}
}

// Bytes returns a fixed-length byte string descriptor; n == 0 is unsized.
func Bytes(n int) *Descriptor {
	return &Descriptor{Kind: KindBytes, ItemSize: n, Order: OrderNA}
}

// Unicode returns a fixed-length UCS4 string descriptor of n code points; n == 0 is unsized.
func Unicode(n int) *Descriptor {
	return &Descriptor{Kind: KindUnicode, ItemSize: 4 * n, Order: OrderNative}
}

// Void returns a raw byte descriptor; n == 0 is unsized.
func Void(n int) *Descriptor {
	return &Descriptor{Kind: KindVoid, ItemSize: n, Order: OrderNA}
}

// Datetime returns a native datetime64 descriptor with the given unit ("" for generic).
func Datetime(unit string) *Descriptor {
	return &Descriptor{Kind: KindDatetime, ItemSize: 8, Order: OrderNative, Unit: unit}
}

// Timedelta returns a native timedelta64 descriptor with the given unit ("" for generic).
func Timedelta(unit string) *Descriptor {
	return &Descriptor{Kind: KindTimedelta, ItemSize: 8, Order: OrderNative, Unit: unit}
}

// User returns a descriptor for a registered user-defined scalar type.
func User(typeName string, size int) *Descriptor {
	return &Descriptor{Kind: KindUser, ItemSize: size, Order: OrderNA, TypeName: typeName}
}

// Struct returns a structured descriptor with explicit field offsets and total size.
func Struct(itemsize int, fields ...Field) *Descriptor {
	return &Descriptor{
		Kind:     KindStruct,
		ItemSize: itemsize,
		Order:    OrderNA,
		Fields:   append([]Field(nil), fields...),
	}
}

// Packed returns a structured descriptor whose fields follow each other
// with no padding. Offsets in the given fields are ignored.
func Packed(fields ...Field) *Descriptor {
	d := Struct(0, fields...)
	for i := range d.Fields {
		d.Fields[i].Offset = d.ItemSize
		if t := d.Fields[i].Type; t != nil {
			d.ItemSize += t.ItemSize
		}
	}
	return d
}

// Array returns a subarray descriptor repeating base over shape.
func Array(base *Descriptor, shape ...int) *Descriptor {
	n := 1
	for _, s := range shape {
		n *= s
	}
	size := 0
	if base != nil {
		size = base.ItemSize * n
	}
	return &Descriptor{
		Kind:     KindSubarray,
		ItemSize: size,
		Order:    OrderNA,
		Sub:      &Subarray{Base: base, Shape: append([]int(nil), shape...)},
	}
}

// WithOrder returns a copy of d with the given byte order. Explicit orders
// equal to the platform order become OrderNative; kinds where order does
// not apply keep OrderNA.
func (d *Descriptor) WithOrder(o ByteOrder) *Descriptor {
	c := *d
	if d.Kind.orderIrrelevant() || d.Kind == KindUser || (d.Kind.IsNumeric() && d.ItemSize == 1) {
		c.Order = OrderNA
		return &c
	}
	c.Order = o.normalize()
	return &c
}

// WithAligned returns a copy of a structured descriptor with the aligned flag set.
func (d *Descriptor) WithAligned() *Descriptor {
	c := *d
	c.Aligned = d.Kind == KindStruct
	return &c
}

// WithTypeName returns a copy of d carrying the given scalar type identity.
func (d *Descriptor) WithTypeName(name string) *Descriptor {
	c := *d
	c.TypeName = name
	return &c
}

// F is shorthand for an untitled Field.
func F(name string, typ *Descriptor) Field {
	return Field{Name: name, Type: typ}
}

// At returns a copy of f placed at the given byte offset.
func (f Field) At(offset int) Field {
	f.Offset = offset
	return f
}

// Titled returns a copy of f carrying the given title.
func (f Field) Titled(title string) Field {
	f.Title = title
	return f
}
