package dtype

// Kind identifies the shape class of a Descriptor.
type Kind uint8

const (
	KindInvalid   Kind = iota
	KindBool           // boolean, one byte
	KindInt            // signed integer
	KindUint           // unsigned integer
	KindFloat          // IEEE floating-point
	KindComplex        // pair of floats
	KindBytes          // fixed-length byte string, may be unsized
	KindUnicode        // fixed-length UCS4 string, may be unsized
	KindObject         // object reference
	KindVoid           // raw bytes, may be unsized
	KindDatetime       // datetime64 with a unit
	KindTimedelta      // timedelta64 with a unit
	KindStruct         // named fields at byte offsets
	KindSubarray       // fixed-shape repetition of a base descriptor
	KindUser           // registered user-defined scalar type
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindBool:      "bool",
	KindInt:       "int",
	KindUint:      "uint",
	KindFloat:     "float",
	KindComplex:   "complex",
	KindBytes:     "bytes",
	KindUnicode:   "unicode",
	KindObject:    "object",
	KindVoid:      "void",
	KindDatetime:  "datetime",
	KindTimedelta: "timedelta",
	KindStruct:    "struct",
	KindSubarray:  "subarray",
	KindUser:      "user",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// kindChars maps kinds to their single-character type-kind code.
var kindChars = [...]byte{
	KindBool:      'b',
	KindInt:       'i',
	KindUint:      'u',
	KindFloat:     'f',
	KindComplex:   'c',
	KindBytes:     'S',
	KindUnicode:   'U',
	KindObject:    'O',
	KindVoid:      'V',
	KindDatetime:  'M',
	KindTimedelta: 'm',
	KindStruct:    'V',
	KindSubarray:  'V',
	KindUser:      'V',
}

// Char returns the type-kind character, or 0 for kinds without one.
func (k Kind) Char() byte {
	if int(k) < len(kindChars) {
		return kindChars[k]
	}
	return 0
}

// IsFlexible reports whether descriptors of this kind may be unsized.
func (k Kind) IsFlexible() bool {
	return k == KindBytes || k == KindUnicode || k == KindVoid
}

// IsNumeric reports whether the kind is an integer, float or complex.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindInt, KindUint, KindFloat, KindComplex:
		return true
	}
	return false
}

// orderIrrelevant reports kinds whose byte order is never meaningful.
func (k Kind) orderIrrelevant() bool {
	switch k {
	case KindBool, KindObject, KindVoid, KindBytes, KindStruct, KindSubarray:
		return true
	}
	return false
}
