package h5type

import (
	"errors"
	"fmt"
	"strings"
)

// Class is the HDF5 datatype class stored in the low nibble of a datatype message.
type Class uint8

const (
	ClassFixedPoint Class = 0  // Integers
	ClassFloatPoint Class = 1  // Floating-point
	ClassTime       Class = 2  // Time
	ClassString     Class = 3  // Fixed-length strings
	ClassBitfield   Class = 4  // Bitfields
	ClassOpaque     Class = 5  // Opaque data
	ClassCompound   Class = 6  // Compound types (structs)
	ClassReference  Class = 7  // References to objects/regions
	ClassEnum       Class = 8  // Enumerated types
	ClassVarLen     Class = 9  // Variable-length data
	ClassArray      Class = 10 // Fixed-size arrays
)

var classNames = [...]string{
	ClassFixedPoint: "fixed-point",
	ClassFloatPoint: "floating-point",
	ClassTime:       "time",
	ClassString:     "string",
	ClassBitfield:   "bitfield",
	ClassOpaque:     "opaque",
	ClassCompound:   "compound",
	ClassReference:  "reference",
	ClassEnum:       "enum",
	ClassVarLen:     "variable-length",
	ClassArray:      "array",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// Class bit fields.
const (
	bitBigEndian = 0x01 // fixed-point, float, time, bitfield
	bitSigned    = 0x08 // fixed-point
	bitFloatVAX  = 0x40 // float: with bitBigEndian set, VAX order
	bitMantNorm  = 0x20 // float: implied MSB
	padNullPad   = 0x01 // string padding
)

// Common errors
var (
	ErrUnsupported = errors.New("unsupported datatype")
	ErrMalformed   = errors.New("malformed datatype message")
)

// DecodeError describes a datatype message that could not be decoded.
type DecodeError struct {
	Cause  error
	Reason string
	Offset int
	Class  Class
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("decode ")
	b.WriteString(e.Class.String())
	fmt.Fprintf(&b, " datatype at offset %d", e.Offset)

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// header is the fixed 8-byte prefix of a datatype message.
type header struct {
	class   Class
	version uint8
	bits    uint32
	size    uint32
	offset  int
}

func (h header) errorf(cause error, format string, args ...any) error {
	return &DecodeError{
		Class:  h.class,
		Offset: h.offset,
		Reason: fmt.Sprintf(format, args...),
		Cause:  cause,
	}
}

// memberOffsetWidth returns the width of a version 3 compound member
// offset: the number of bytes needed to encode the compound size.
func memberOffsetWidth(compoundSize uint32) int {
	switch {
	case compoundSize < 1<<8:
		return 1
	case compoundSize < 1<<16:
		return 2
	case compoundSize < 1<<24:
		return 3
	}
	return 4
}
