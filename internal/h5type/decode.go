package h5type

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-dtype/dtype"
	"github.com/robert-malhotra/go-dtype/internal/binary"
)

// Decode converts an encoded HDF5 datatype message into a descriptor.
// Trailing bytes after the message are ignored.
func Decode(data []byte, opts ...Option) (*dtype.Descriptor, error) {
	d, _, err := DecodePrefix(data, opts...)
	return d, err
}

// DecodePrefix decodes the datatype message at the start of data and
// returns the number of bytes it occupied.
func DecodePrefix(data []byte, opts ...Option) (*dtype.Descriptor, int, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger
	if log == nil {
		log = dtype.Logger()
	}

	dec := &decoder{r: binary.NewReader(data), maxDepth: o.maxDepth, log: log}
	d, err := dec.decode(0)
	if err != nil {
		return nil, 0, err
	}
	return d, dec.r.Pos(), nil
}

// decoder walks one datatype message, recursing into member and base types.
type decoder struct {
	r        *binary.Reader
	maxDepth int
	log      *zap.Logger
}

func (dec *decoder) decode(depth int) (*dtype.Descriptor, error) {
	r := dec.r
	h := header{offset: r.Pos()}
	if depth > dec.maxDepth {
		return nil, h.errorf(dtype.ErrTooDeep, "nesting limit %d", dec.maxDepth)
	}

	classAndVersion, err := r.ReadUint8()
	if err != nil {
		return nil, h.errorf(err, "header")
	}
	h.class = Class(classAndVersion & 0x0F)
	h.version = classAndVersion >> 4

	bits, err := r.ReadUintN(3)
	if err != nil {
		return nil, h.errorf(err, "class bits")
	}
	h.bits = uint32(bits)

	if h.size, err = r.ReadUint32(); err != nil {
		return nil, h.errorf(err, "size")
	}

	switch h.class {
	case ClassFixedPoint, ClassFloatPoint, ClassBitfield:
		if h.size == 0 {
			return nil, h.errorf(ErrMalformed, "zero-sized %s", h.class)
		}
	}

	switch h.class {
	case ClassFixedPoint:
		if err := readBitRange(r, h); err != nil {
			return nil, err
		}
		d := dtype.Uint(int(h.size))
		if h.bits&bitSigned != 0 {
			d = dtype.Int(int(h.size))
		}
		return d.WithOrder(orderOf(h.bits)), nil

	case ClassFloatPoint:
		// bit offset, precision, exponent and mantissa layout, exponent bias
		if err := r.Skip(12); err != nil {
			return nil, h.errorf(err, "properties")
		}
		if h.bits&bitFloatVAX != 0 {
			return nil, h.errorf(ErrUnsupported, "VAX byte order")
		}
		return dtype.Float(int(h.size)).WithOrder(orderOf(h.bits)), nil

	case ClassTime:
		// bit precision (2)
		if err := r.Skip(2); err != nil {
			return nil, h.errorf(err, "properties")
		}
		if h.size != 8 {
			return nil, h.errorf(ErrUnsupported, "%d-byte time", h.size)
		}
		return dtype.Datetime("s").WithOrder(orderOf(h.bits)), nil

	case ClassString:
		return dtype.Bytes(int(h.size)), nil

	case ClassBitfield:
		if err := readBitRange(r, h); err != nil {
			return nil, err
		}
		return dtype.Uint(int(h.size)).WithOrder(orderOf(h.bits)), nil

	case ClassOpaque:
		// ASCII tag, null padded to the length stored in the class bits
		if err := r.Skip(int(h.bits & 0xFF)); err != nil {
			return nil, h.errorf(err, "tag")
		}
		return dtype.Void(int(h.size)), nil

	case ClassCompound:
		return dec.decodeCompound(h, depth)

	case ClassReference:
		return dtype.Object(), nil

	case ClassEnum:
		return dec.decodeEnum(h, depth)

	case ClassVarLen:
		if _, err := dec.decode(depth + 1); err != nil {
			return nil, h.errorf(err, "base type")
		}
		return dtype.Object(), nil

	case ClassArray:
		return dec.decodeArray(h, depth)
	}

	dec.log.Debug("skipping datatype with unknown class",
		zap.Uint8("class", uint8(h.class)),
		zap.Int("offset", h.offset))
	return nil, h.errorf(ErrUnsupported, "unknown class")
}

// readBitRange reads the bit offset and precision of an integer or
// bitfield and checks they fit inside the element.
func readBitRange(r *binary.Reader, h header) error {
	offset, err := r.ReadUint16()
	if err != nil {
		return h.errorf(err, "bit offset")
	}
	precision, err := r.ReadUint16()
	if err != nil {
		return h.errorf(err, "bit precision")
	}
	if uint32(offset)+uint32(precision) > h.size*8 {
		return h.errorf(ErrMalformed, "%d bits at offset %d exceed %d bytes", precision, offset, h.size)
	}
	return nil
}

func orderOf(bits uint32) dtype.ByteOrder {
	if bits&bitBigEndian != 0 {
		return dtype.OrderBig
	}
	return dtype.OrderLittle
}

func (dec *decoder) decodeCompound(h header, depth int) (*dtype.Descriptor, error) {
	r := dec.r
	n := int(h.bits & 0xFFFF)
	fields := make([]dtype.Field, 0, n)

	for i := 0; i < n; i++ {
		start := r.Pos()
		name, err := r.ReadCString()
		if err != nil {
			return nil, h.errorf(err, "member %d name", i)
		}

		// Versions 1 and 2 pad names to 8-byte boundaries.
		if h.version < 3 {
			if err := r.Align(start, 8); err != nil {
				return nil, h.errorf(err, "member %q name padding", name)
			}
		}

		var offset uint64
		if h.version >= 3 {
			offset, err = r.ReadUintN(memberOffsetWidth(h.size))
		} else {
			offset, err = r.ReadUintN(4)
		}
		if err != nil {
			return nil, h.errorf(err, "member %q offset", name)
		}

		// Version 1 members carry up to four array dimensions inline.
		var dims []int
		if h.version == 1 {
			dims, err = readMemberDims(r)
			if err != nil {
				return nil, h.errorf(err, "member %q dimensions", name)
			}
		}

		typ, err := dec.decode(depth + 1)
		if err != nil {
			return nil, fmt.Errorf("compound member %q: %w", name, err)
		}
		if len(dims) > 0 {
			typ = dtype.Array(typ, dims...)
		}

		if offset+uint64(typ.ItemSize) > uint64(h.size) {
			return nil, h.errorf(ErrMalformed, "member %q at %d overruns size %d", name, offset, h.size)
		}
		fields = append(fields, dtype.Field{Name: name, Type: typ, Offset: int(offset)})
	}

	return dtype.Struct(int(h.size), fields...), nil
}

func readMemberDims(r *binary.Reader) ([]int, error) {
	ndims, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if ndims > 4 {
		return nil, fmt.Errorf("%d dimensions: %w", ndims, ErrMalformed)
	}
	// reserved (3) + permutation (4) + reserved (4)
	if err := r.Skip(11); err != nil {
		return nil, err
	}

	var dims []int
	for j := 0; j < 4; j++ {
		v, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		if j < int(ndims) {
			dims = append(dims, int(v))
		}
	}
	return dims, nil
}

func (dec *decoder) decodeEnum(h header, depth int) (*dtype.Descriptor, error) {
	r := dec.r
	n := int(h.bits & 0xFFFF)

	base, err := dec.decode(depth + 1)
	if err != nil {
		return nil, h.errorf(err, "base type")
	}

	names := make([]string, n)
	for i := range names {
		start := r.Pos()
		if names[i], err = r.ReadCString(); err != nil {
			return nil, h.errorf(err, "member %d name", i)
		}
		if h.version < 3 {
			if err := r.Align(start, 8); err != nil {
				return nil, h.errorf(err, "member %q name padding", names[i])
			}
		}
	}

	values := make([]uint64, n)
	for i := range values {
		if values[i], err = r.ReadUintN(base.ItemSize); err != nil {
			return nil, h.errorf(err, "member %q value", names[i])
		}
	}

	if isBoolEnum(base, names, values) {
		return dtype.Bool(), nil
	}
	return base, nil
}

// isBoolEnum recognises the FALSE/TRUE enum used to store booleans.
func isBoolEnum(base *dtype.Descriptor, names []string, values []uint64) bool {
	return base.ItemSize == 1 && base.Kind == dtype.KindInt &&
		len(names) == 2 &&
		names[0] == "FALSE" && values[0] == 0 &&
		names[1] == "TRUE" && values[1] == 1
}

func (dec *decoder) decodeArray(h header, depth int) (*dtype.Descriptor, error) {
	r := dec.r
	ndims, err := r.ReadUint8()
	if err != nil {
		return nil, h.errorf(err, "dimensionality")
	}
	if h.version < 3 {
		if err := r.Skip(3); err != nil {
			return nil, h.errorf(err, "reserved")
		}
	}

	dims := make([]int, ndims)
	for i := range dims {
		v, err := r.ReadUint32()
		if err != nil {
			return nil, h.errorf(err, "dimension %d", i)
		}
		if v == 0 {
			return nil, h.errorf(ErrMalformed, "dimension %d is zero", i)
		}
		dims[i] = int(v)
	}

	// Version 2 stores an unused permutation index per dimension.
	if h.version < 3 {
		if err := r.Skip(4 * int(ndims)); err != nil {
			return nil, h.errorf(err, "permutation")
		}
	}

	base, err := dec.decode(depth + 1)
	if err != nil {
		return nil, h.errorf(err, "base type")
	}

	d := dtype.Array(base, dims...)
	if d.ItemSize != int(h.size) {
		return nil, h.errorf(ErrMalformed, "array of %d bytes declared as %d", d.ItemSize, h.size)
	}
	return d, nil
}
