package dtype

import (
	"fmt"
	"strconv"
	"strings"
)

// numericKindNames spells the long form of numeric kinds.
var numericKindNames = map[byte]string{
	'u': "uint",
	'i': "int",
	'f': "float",
	'c': "complex",
}

// Construction returns the first argument of a dtype constructor call that
// reproduces d: a quoted type string, a field list, a field dict or a
// (base, shape) pair.
//
// With includeAlign set, a structured descriptor carrying the aligned flag is
// always written as a dict with 'aligned':True, at every nesting level.
// With short set, numeric kinds use the '<f8' spelling instead of 'float64'.
func Construction(d *Descriptor, includeAlign, short bool, opts ...Option) (string, error) {
	r := newRenderer(opts)
	var b strings.Builder
	if err := r.construction(&b, d, includeAlign, short, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *renderer) construction(b *strings.Builder, d *Descriptor, includeAlign, short bool, depth int) error {
	if err := r.enter(d, depth); err != nil {
		return err
	}

	order := byteOrderStr(d.Order)

	switch d.Kind {
	case KindStruct:
		return r.structStr(b, d, includeAlign, depth)

	case KindSubarray:
		return r.subarrayStr(b, d, includeAlign, depth)

	case KindBool:
		if short {
			b.WriteString("'?'")
		} else {
			b.WriteString("'bool'")
		}

	case KindObject:
		// The reference size differs across platforms and is never written.
		b.WriteString("'O'")

	case KindBytes:
		if d.IsUnsized() {
			b.WriteString("'S'")
		} else {
			fmt.Fprintf(b, "'S%d'", d.ItemSize)
		}

	case KindUnicode:
		if d.IsUnsized() {
			fmt.Fprintf(b, "'%sU'", order)
		} else {
			fmt.Fprintf(b, "'%sU%d'", order, d.ItemSize/4)
		}

	case KindVoid:
		if d.IsUnsized() {
			b.WriteString("'V'")
		} else {
			fmt.Fprintf(b, "'V%d'", d.ItemSize)
		}

	case KindDatetime:
		fmt.Fprintf(b, "'%sM8%s'", order, r.datetimeMetadata(d))

	case KindTimedelta:
		fmt.Fprintf(b, "'%sm8%s'", order, r.datetimeMetadata(d))

	case KindInt, KindUint, KindFloat, KindComplex:
		return r.numericStr(b, d, order, short)

	case KindUser:
		if d.IsBuiltin() != 2 {
			return r.internal("construction", d, "user type is not registered", ErrUnrecognizedType)
		}
		b.WriteString(bareTypeName(d.TypeName))

	default:
		return r.internal("construction", d, "", ErrUnrecognizedType)
	}
	return nil
}

// numericStr writes '<f8' in short form or for non-native orders, else 'float64'.
func (r *renderer) numericStr(b *strings.Builder, d *Descriptor, order string, short bool) error {
	c := d.Char()
	if short || !d.IsNative() {
		fmt.Fprintf(b, "'%s%c%d'", order, c, d.ItemSize)
		return nil
	}

	name, err := longNumericName(c, d.ItemSize)
	if err != nil {
		return r.internal("construction", d, fmt.Sprintf("unknown kind %q", c), err)
	}
	b.WriteByte('\'')
	b.WriteString(name)
	b.WriteByte('\'')
	return nil
}

func longNumericName(c byte, itemsize int) (string, error) {
	kind, ok := numericKindNames[c]
	if !ok {
		return "", ErrUnknownKindChar
	}
	return kind + strconv.Itoa(8*itemsize), nil
}

// subarrayStr writes (base, shape) with the base in short form.
func (r *renderer) subarrayStr(b *strings.Builder, d *Descriptor, includeAlign bool, depth int) error {
	if d.Sub == nil || d.Sub.Base == nil {
		return r.internal("subarray", d, "missing base descriptor", ErrNilDescriptor)
	}
	b.WriteByte('(')
	if err := r.construction(b, d.Sub.Base, includeAlign, true, depth+1); err != nil {
		return err
	}
	b.WriteString(", ")
	writeShape(b, d.Sub.Shape)
	b.WriteByte(')')
	return nil
}
