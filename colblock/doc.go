// Package colblock serializes encoded columns into self-describing binary
// blocks.
//
// A block carries one column: its values run through the encoding package
// (run-length or dictionary), the two resulting sections are serialized
// with the little-endian engine, individually compressed, and checksummed.
// A block decodes back to the exact typed slice it was encoded from with no
// external schema.
//
// # Block Layout
//
// Every block starts with a fixed 32-byte little-endian header:
//
//	byte  0-1 : magic 0xEC51 (uint16)
//	byte  2   : format version (currently 1)
//	byte  3   : physical type (format.PhysicalType)
//	byte  4   : encoding scheme (format.EncodingType, RLE or Dictionary)
//	byte  5   : compression (format.CompressionType, both sections)
//	byte  6-7 : reserved
//	byte  8-11: row count (uint32), the decoded logical length
//	byte 12-15: entry count (uint32), run values or dictionary entries
//	byte 16-19: section A compressed byte length (uint32)
//	byte 20-23: section B compressed byte length (uint32)
//	byte 24-31: xxHash64 of the two compressed sections (uint64)
//
// Section A holds the serialized run values (RLE) or dictionary entries
// (Dictionary). Fixed-width elements are stored back to back at their
// natural width; variable-width elements are uvarint length-prefixed.
// Section B holds the run lengths (RLE, one uint32 per entry) or the row
// indices (Dictionary, one uint32 per row).
//
// # Encoding
//
//	block, err := colblock.Encode(values,
//	    colblock.WithEncoding(format.EncodingDict),
//	    colblock.WithCompression(format.CompressionZstd),
//	)
//
// The input must be one of the eight supported column slices: []int8,
// []int16, []int32, []int64, []float32, []float64, []string, [][]byte.
// EncodeRLE and EncodeDict force their scheme and accept the same options
// otherwise.
//
// # Decoding
//
//	values, err := colblock.Decode(block) // any, concrete type per header
//	prices, err := colblock.DecodeFloat64(block)
//	names, err := colblock.DecodeString(block)
//
// Decode validates, in order: header size, magic number, version, enum
// fields, section bounds against the block length, the section checksum,
// per-section entry counts, and finally that the replayed column matches
// the header's row count. Every violation is a hard failure wrapping one of
// the errs sentinels; no partial column is ever returned.
//
// # Choosing a Scheme
//
// Run-length encoding wins when equal values cluster (sorted keys, status
// columns, slowly-changing gauges). Dictionary encoding wins when the value
// set is small but shuffled (hostnames, enum labels). Both store their
// numeric section as raw uint32s, so a column that is neither clustered nor
// low-cardinality gains little; pick the scheme per column, not globally.
//
// When the shape of the data is not known up front, SuggestEncoding scans a
// column once and prices both schemes with the exact section layout:
//
//	advice, err := colblock.SuggestEncoding(values)
//	block, err := colblock.Encode(values, colblock.WithEncoding(advice.Best.Encoding))
//
// SuggestEach does the same across a whole set of columns.
//
// # Thread Safety
//
// Encode and Decode are pure functions over caller-owned slices and are
// safe for concurrent use. Pooled scratch buffers are internal and never
// escape.
package colblock
