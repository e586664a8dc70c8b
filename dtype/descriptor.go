package dtype

import (
	"strconv"
	"strings"
)

// Type identities used when wrapping structured renderings.
const (
	VoidTypeName   = "numpy.void"
	RecordTypeName = "numpy.record"
)

// Descriptor describes the binary layout of one array element.
//
// Descriptors are treated as immutable once built; the renderers in this
// package only read them and are safe to call from multiple goroutines.
type Descriptor struct {
	Kind     Kind
	ItemSize int
	Order    ByteOrder

	// Aligned is the sticky aligned-struct flag. Only meaningful for KindStruct.
	Aligned bool

	// Fields lists the members of a KindStruct descriptor in declaration order.
	Fields []Field

	// Sub holds the base and shape of a KindSubarray descriptor.
	Sub *Subarray

	// Unit is the datetime/timedelta unit without brackets, e.g. "ns".
	Unit string

	// TypeName is the fully-qualified scalar type, e.g. "numpy.record".
	// Empty means the default for the kind.
	TypeName string
}

// Field is one member of a structured descriptor.
type Field struct {
	Name   string
	Type   *Descriptor
	Offset int
	Title  string // empty when the field has no title
}

// Subarray is a fixed-shape repetition of a base descriptor.
type Subarray struct {
	Base  *Descriptor
	Shape []int
}

// IsNative reports whether the descriptor's byte order is the platform order.
func (d *Descriptor) IsNative() bool {
	switch d.Order {
	case OrderNative, OrderNA:
		return true
	case OrderSwapped:
		return false
	default:
		return d.Order == platformOrder()
	}
}

// IsBuiltin returns 0 for structured descriptors, 2 for registered user
// types and 1 for every builtin kind.
func (d *Descriptor) IsBuiltin() int {
	switch d.Kind {
	case KindStruct:
		return 0
	case KindUser:
		if d.TypeName != "" {
			return 2
		}
		return 0
	}
	return 1
}

// IsAlignedStruct reports whether d is a structured descriptor with the aligned flag set.
func (d *Descriptor) IsAlignedStruct() bool {
	return d.Kind == KindStruct && d.Aligned
}

// IsUnsized reports whether d is a flexible descriptor with no size yet.
func (d *Descriptor) IsUnsized() bool {
	return d.ItemSize == 0
}

// Names returns the field names in declaration order, or nil for non-structured descriptors.
func (d *Descriptor) Names() []string {
	if d.Kind != KindStruct {
		return nil
	}
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// Field looks up a field by name.
func (d *Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Char returns the type-kind character of the descriptor.
func (d *Descriptor) Char() byte {
	return d.Kind.Char()
}

// Name returns the long type name, e.g. "float64", "bytes80" or "datetime64[ns]".
func (d *Descriptor) Name() string {
	bits := strconv.Itoa(d.ItemSize * 8)
	switch d.Kind {
	case KindBool:
		return "bool"
	case KindInt, KindUint, KindFloat, KindComplex:
		return d.Kind.String() + bits
	case KindObject:
		return "object"
	case KindBytes, KindVoid:
		if d.IsUnsized() {
			return d.Kind.String()
		}
		return d.Kind.String() + bits
	case KindUnicode:
		if d.IsUnsized() {
			return "str"
		}
		return "str" + bits
	case KindDatetime, KindTimedelta:
		name := d.Kind.String() + "64"
		if d.Unit != "" {
			name += "[" + d.Unit + "]"
		}
		return name
	case KindStruct, KindSubarray:
		if d.TypeName == RecordTypeName {
			return "record" + bits
		}
		return "void" + bits
	case KindUser:
		return bareTypeName(d.TypeName)
	}
	return d.Kind.String()
}

// Str returns the platform short string: order character, kind character
// and size, e.g. "<f8", "|S10", "<U5" or "<M8[ns]".
func (d *Descriptor) Str() string {
	var b strings.Builder
	if d.Order == OrderNA || d.Kind.orderIrrelevant() || (d.Kind.IsNumeric() && d.ItemSize == 1) {
		b.WriteByte('|')
	} else {
		b.WriteString(byteOrderStr(d.Order))
	}
	b.WriteByte(d.Char())
	switch d.Kind {
	case KindObject:
	case KindUnicode:
		b.WriteString(strconv.Itoa(d.ItemSize / 4))
	case KindDatetime, KindTimedelta:
		b.WriteByte('8')
		if d.Unit != "" {
			b.WriteString("[" + d.Unit + "]")
		}
	default:
		b.WriteString(strconv.Itoa(d.ItemSize))
	}
	return b.String()
}

// bareTypeName strips the module path from a fully-qualified type name.
func bareTypeName(typeName string) string {
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		return typeName[i+1:]
	}
	return typeName
}
