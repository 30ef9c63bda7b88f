// Package encoding implements the columnar encoding engine: run-length and
// dictionary encoding with per-type specializations and strict decode-time
// validation.
//
// # Schemes
//
// Run-Length Encoding collapses maximal runs of equal adjacent values into
// (value, length) pairs:
//
//	RLEEncode([]int32{1, 1, 1, 2, 2, 3, 3, 3, 3})
//	// values:  [1, 2, 3]
//	// lengths: [3, 2, 4]
//
// Dictionary Encoding replaces each value with an index into a table of
// unique values ordered by first occurrence:
//
//	DictEncode([]int64{1, 3, 2, 2, 3, 1})
//	// dict:    [1, 3, 2]
//	// indices: [0, 1, 2, 2, 1, 0]
//
// Both schemes round-trip exactly: decode(encode(x)) reproduces x element for
// element, preserving order and duplicates.
//
// # Supported Element Types
//
// The engine specializes over a closed allow-list of physical types:
//
//	int8, int16, int32, int64   fixed-width signed integers
//	float32, float64            IEEE-754 floats
//	string, []byte              variable-width
//
// The generic functions (RLEEncode, DictEncode, ...) bind the element type at
// compile time. The Any-suffixed entry points (RLEEncodeAny, DictDecodeAny,
// ...) accept a column as `any`, resolve the specialization once per call
// with a type switch, and fail with errs.ErrUnsupportedType for anything
// outside the allow-list. There is no reflective fallback.
//
// # Equality Semantics
//
// Run and dictionary equality is Go's ==, bit-for-bit for integers and
// IEEE-754 for floats. NaN != NaN, so consecutive NaNs never share a run and
// every NaN occupies its own dictionary slot. The encoded form reproduces the
// original float bit patterns; there is no epsilon comparison.
//
// # Validation
//
// Decoders fail fast before allocating output:
//
//   - RLEDecode rejects values/lengths slices of different lengths with
//     errs.ErrMismatchedLengths.
//   - DictDecode validates every index against the dictionary size and
//     rejects the first violation with errs.ErrIndexOutOfRange, citing the
//     index and the size. No partial output is ever returned.
//
// # Thread Safety
//
// All functions are pure: they read their inputs, allocate their outputs, and
// keep no state between calls. Any number of goroutines may encode and decode
// concurrently on independent data.
package encoding
