package dtype

import (
	"strconv"
	"strings"
)

// structStr writes the fields of a structured descriptor, as a list when the
// layout is packed and nothing else must be preserved, else as a dict.
// Non-default scalar types wrap the result as (type, fields).
func (r *renderer) structStr(b *strings.Builder, d *Descriptor, includeAlign bool, depth int) error {
	wrap := d.TypeName != "" && d.TypeName != VoidTypeName
	if wrap {
		b.WriteByte('(')
		b.WriteString(d.TypeName)
		b.WriteString(", ")
	}

	// A list cannot carry the aligned flag.
	var err error
	if !(includeAlign && d.Aligned) && IsPacked(d) {
		err = r.structListStr(b, d, includeAlign, depth)
	} else {
		err = r.structDictStr(b, d, includeAlign, depth)
	}
	if err != nil {
		return err
	}

	if wrap {
		b.WriteByte(')')
	}
	return nil
}

// structListStr writes [('a', '<i4'), (('title', 'b'), '<f8'), ('c', '<i2', (2, 3))].
func (r *renderer) structListStr(b *strings.Builder, d *Descriptor, includeAlign bool, depth int) error {
	b.WriteByte('[')
	for i, f := range d.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		if f.Title != "" {
			b.WriteByte('(')
			writeQuoted(b, f.Title)
			b.WriteString(", ")
			writeQuoted(b, f.Name)
			b.WriteString("), ")
		} else {
			writeQuoted(b, f.Name)
			b.WriteString(", ")
		}

		if f.Type != nil && f.Type.Kind == KindSubarray && f.Type.Sub != nil {
			if err := r.construction(b, f.Type.Sub.Base, includeAlign, true, depth+2); err != nil {
				return err
			}
			b.WriteString(", ")
			writeShape(b, f.Type.Sub.Shape)
		} else if err := r.construction(b, f.Type, includeAlign, true, depth+1); err != nil {
			return err
		}
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return nil
}

// structDictStr writes
// {'names':[...], 'formats':[...], 'offsets':[...], 'titles':[...], 'itemsize':N, 'aligned':True}
// where titles only appear when some field has one and aligned only when requested.
func (r *renderer) structDictStr(b *strings.Builder, d *Descriptor, includeAlign bool, depth int) error {
	b.WriteString("{'names':[")
	for i, f := range d.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		writeQuoted(b, f.Name)
	}

	b.WriteString("], 'formats':[")
	for i, f := range d.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := r.construction(b, f.Type, includeAlign, true, depth+1); err != nil {
			return err
		}
	}

	b.WriteString("], 'offsets':[")
	for i, f := range d.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(f.Offset))
	}

	if hasTitles(d) {
		b.WriteString("], 'titles':[")
		for i, f := range d.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			if f.Title == "" {
				b.WriteString("None")
			} else {
				writeQuoted(b, f.Title)
			}
		}
	}

	b.WriteString("], 'itemsize':")
	b.WriteString(strconv.Itoa(d.ItemSize))

	if includeAlign && d.Aligned {
		b.WriteString(", 'aligned':True}")
	} else {
		b.WriteByte('}')
	}
	return nil
}

func hasTitles(d *Descriptor) bool {
	for _, f := range d.Fields {
		if f.Title != "" {
			return true
		}
	}
	return false
}
