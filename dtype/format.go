package dtype

import (
	"fmt"
	"strings"
)

// Display returns the short display string of d: the field rendering for
// structs, (base, shape) for subarrays, the platform short string for
// flexible or byte-swapped kinds, and the long name otherwise.
func Display(d *Descriptor, opts ...Option) (string, error) {
	r := newRenderer(opts)
	if err := r.enter(d, 0); err != nil {
		return "", err
	}
	if d.Kind == KindInvalid || d.Kind > KindUser {
		return "", r.internal("display", d, "", ErrUnrecognizedType)
	}
	if d.Kind == KindUser && d.IsBuiltin() != 2 {
		return "", r.internal("display", d, "user type is not registered", ErrUnrecognizedType)
	}

	var b strings.Builder
	switch {
	case d.Kind == KindStruct:
		if err := r.structStr(&b, d, true, 0); err != nil {
			return "", err
		}
	case d.Kind == KindSubarray:
		if err := r.subarrayStr(&b, d, true, 0); err != nil {
			return "", err
		}
	case d.Kind.IsFlexible() || !d.IsNative():
		b.WriteString(d.Str())
	default:
		b.WriteString(d.Name())
	}
	return b.String(), nil
}

// Repr returns the canonical representation of d, e.g. dtype('float64') or
// dtype([('a', '<i4'), ('b', '<f8')]). Feeding it back to a dtype
// constructor yields an identical descriptor.
func Repr(d *Descriptor, opts ...Option) (string, error) {
	r := newRenderer(opts)
	var b strings.Builder
	b.WriteString("dtype(")
	if err := r.construction(&b, d, true, false, 0); err != nil {
		return "", err
	}
	if d.IsAlignedStruct() {
		b.WriteString(", align=True")
	}
	b.WriteByte(')')
	return b.String(), nil
}

// String implements fmt.Stringer using Display.
func (d *Descriptor) String() string {
	s, err := Display(d)
	if err != nil {
		return fmt.Sprintf("<invalid dtype: %v>", err)
	}
	return s
}

// GoString implements fmt.GoStringer using Repr.
func (d *Descriptor) GoString() string {
	s, err := Repr(d)
	if err != nil {
		return fmt.Sprintf("<invalid dtype: %v>", err)
	}
	return s
}
