// Package dtype renders data-type descriptors as text.
//
// A [Descriptor] describes the binary layout of one array element: its kind,
// size, byte order and, for structured and subarray kinds, the nested
// descriptors it is built from. This package turns a descriptor into two
// textual forms:
//
//   - [Display]: the short form used for inspection ("float64", "<U5",
//     "[('a', '<i4'), ('b', '<f8')]").
//   - [Repr]: the canonical constructor form ("dtype('float64')"), precise
//     enough to rebuild a descriptor with the same kind, size, byte order,
//     field offsets, titles and aligned flag.
//
// # Short and Long Spellings
//
// Native numeric kinds are spelled by name and bit width at the top level
// ("int32", "complex128") and by order, kind character and byte size inside
// structs and subarrays ("<i4", ">c16"). Non-native byte orders always use
// the short spelling so the order survives.
//
// # Structured Descriptors
//
// Fields are rendered as a list of (name, format) tuples when the layout is
// packed (see [IsPacked]), and as a dict of names, formats, offsets, titles
// and itemsize otherwise. A descriptor with the aligned flag set is always
// rendered as a dict carrying 'aligned':True so the flag cannot be lost.
//
// # Errors
//
// Rendering only fails on descriptors that break their own invariants: an
// unknown kind, an unregistered user type or nesting deeper than
// [MaxNestingDepth]. Such failures are reported as [*InternalError] or
// [ErrTooDeep] and logged through the zap logger returned by [Logger].
package dtype
