package dtype

// IsPacked reports whether the fields of a structured descriptor are in
// declaration order and follow each other with no gaps, overlaps or
// trailing padding. Such a layout can be rebuilt from names and formats alone.
func IsPacked(d *Descriptor) bool {
	total := 0
	for _, f := range d.Fields {
		if f.Offset != total || f.Type == nil {
			return false
		}
		total += f.Type.ItemSize
	}
	return total == d.ItemSize
}
