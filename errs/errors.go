// Package errs defines the sentinel errors shared by all weft packages.
//
// Errors fall into four families that callers can test with errors.Is:
//
//   - Malformed input: a byte span fails structural validation (frame header,
//     block magic, checksum, truncated section). Always fatal to the call.
//   - Bounds: an index or position is outside its valid range (dictionary
//     index, column position, bit index). Always fatal, detected before any
//     partial output is produced.
//   - Unsupported type: a value's type is outside the closed allow-list of a
//     dispatching entry point.
//   - Usage: a documented API contract was violated (closed resource, invalid
//     size, oversized payload).
//
// Call sites wrap sentinels with fmt.Errorf("%w: ...", err) to attach the
// offending values, so messages carry context while errors.Is still matches.
package errs

import "errors"

// Malformed input errors.
var (
	// ErrMalformedFrame indicates a row frame failed header validation:
	// the input is shorter than the header, the kind tag is wrong, or the
	// declared payload length does not match the actual payload.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrInvalidHeaderSize indicates a header byte slice has the wrong length.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates a block does not start with the expected magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrUnsupportedVersion indicates a block header declares a format version
	// this library does not understand.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrChecksumMismatch indicates a block's stored checksum does not match
	// the checksum of its payload.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrTruncatedBlock indicates a block's declared section sizes extend past
	// the end of the input.
	ErrTruncatedBlock = errors.New("truncated block")

	// ErrMalformedPayload indicates a structurally valid frame carried a
	// payload the structured decoder could not parse.
	ErrMalformedPayload = errors.New("malformed payload")
)

// Bounds errors.
var (
	// ErrIndexOutOfRange indicates an index or position is outside its valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrMismatchedLengths indicates two sequences that must have equal
	// lengths do not, e.g. RLE values and run lengths.
	ErrMismatchedLengths = errors.New("mismatched lengths")

	// ErrCountMismatch indicates a decoded element count does not match the
	// count declared in a header.
	ErrCountMismatch = errors.New("count mismatch")
)

// Unsupported type errors.
var (
	// ErrUnsupportedType indicates a value's physical type is outside the
	// closed allow-list of a dispatching entry point.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidEncodingType indicates an unknown columnar encoding scheme.
	ErrInvalidEncodingType = errors.New("invalid encoding type")

	// ErrInvalidCompressionType indicates an unknown compression scheme.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)

// Usage errors.
var (
	// ErrInvalidSize indicates a non-positive size was supplied where a
	// positive one is required.
	ErrInvalidSize = errors.New("invalid size")

	// ErrClosed indicates an operation on a resource after Close.
	ErrClosed = errors.New("already closed")

	// ErrNotAMapping indicates field extraction was attempted on a value that
	// is not key-value shaped.
	ErrNotAMapping = errors.New("record is not a mapping")

	// ErrPayloadTooLarge indicates an encoded payload exceeds the maximum
	// permitted frame payload size.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrInvalidFalsePositiveRate indicates a bloom filter false-positive
	// rate outside the open interval (0, 1).
	ErrInvalidFalsePositiveRate = errors.New("invalid false positive rate")
)
