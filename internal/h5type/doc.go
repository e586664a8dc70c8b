// Package h5type converts between HDF5 datatype messages and descriptors.
//
// HDF5 object headers describe element layouts with datatype messages
// (message type 0x0003). This package decodes those messages into
// [dtype.Descriptor] values so they can be rendered, and encodes
// descriptors back into messages.
//
// # Class Mapping
//
//	HDF5 Class        | Descriptor
//	------------------|---------------------------------------------
//	Fixed-point       | signed or unsigned integer, explicit order
//	Floating-point    | float, explicit order (VAX order unsupported)
//	Time (8 bytes)    | datetime64[s]
//	String (fixed)    | fixed-length bytes
//	Bitfield          | unsigned integer
//	Opaque            | raw void
//	Compound          | structured record, offsets preserved
//	Reference         | object reference
//	Enum              | its base integer; FALSE/TRUE int8 enums as bool
//	Variable-length   | object reference
//	Array             | subarray of the base type
//
// Compound messages of versions 1 to 3 and array messages of versions 2
// and 3 are understood. [Encode] always writes compound and array
// messages as version 3.
package h5type
