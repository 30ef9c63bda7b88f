// Package row implements the binary row codec: framing, payload encoding, and
// the datetime tagging convention for heterogeneous tuples.
//
// # Wire Format
//
// A record is a frame (see the frame package) whose payload is a MessagePack
// array holding the tuple's values in order:
//
//	┌──────────────────────────────┐
//	│ Header (14 bytes, fixed)     │
//	│  - kind tag, payload length  │
//	├──────────────────────────────┤
//	│ Payload (MessagePack array)  │
//	│  - one element per field     │
//	└──────────────────────────────┘
//
// Decode validates the header before touching the payload: inputs shorter
// than the header, a kind tag other than 0x1, or a declared length that does
// not equal the actual payload size all fail with errs.ErrMalformedFrame.
// Frames produced by older systems with the 6-byte compact header decode via
// the WithLegacyHeader option; Encode always writes the canonical header.
//
// # Values
//
// A Row is an ordered tuple of nil, bool, int64, uint64 (only for values above
// math.MaxInt64), float64, string, []byte, or time.Time. Decode normalizes the
// MessagePack integer and float widths to these types so callers see a stable
// set regardless of how compactly a producer encoded a number. Nested arrays
// and maps pass through as []any and map[string]any without normalization.
//
// # Datetime Tagging
//
// Points in time travel as a 2-element array ["__datetime__", epoch_seconds].
// Encode substitutes this pair for every time.Time field; Decode replaces any
// top-level pair of that shape with time.Unix(seconds, 0) in the local zone.
// Precision is one second in either direction.
//
// # Field Extraction
//
// ExtractFields projects named fields out of a decoded mapping, substituting
// nil for absent keys. It is the lenient counterpart to the strict positional
// access of project.Collect.
package row
