package frame

import (
	"fmt"

	"github.com/weftdata/weft/endian"
	"github.com/weftdata/weft/errs"
)

// Header represents the fixed-size header at the start of a record frame.
//
// Canonical layout (14 bytes):
//
//	byte  0    : kind tag (high nibble, must be 0x1) | reserved (low nibble)
//	byte  1    : reserved
//	bytes 2-5  : payload length, uint32, big-endian
//	bytes 6-13 : reserved (written as zero, ignored on parse)
//
// Legacy layout (6 bytes, decode only): identical through byte 5, no trailing
// reserved bytes. Headers are always written in the canonical layout.
type Header struct {
	// Kind is the record-kind tag from the high nibble of byte 0.
	Kind uint8 // byte offset 0, bits 4-7
	// Length is the payload byte count, everything after the header.
	Length uint32 // byte offset 2-5, big-endian
}

// NewHeader creates a record header for a payload of the given byte length.
func NewHeader(payloadLen int) Header {
	return Header{
		Kind:   KindRecord,
		Length: uint32(payloadLen), //nolint:gosec
	}
}

// ParseHeader parses a canonical 14-byte header from the start of data.
//
// Parameters:
//   - data: Byte slice beginning with the header (may extend into the payload)
//
// Returns:
//   - Header: Parsed header struct
//   - error: errs.ErrMalformedFrame if data is shorter than the header or the
//     kind tag is not KindRecord
func ParseHeader(data []byte) (Header, error) {
	return parseHeader(data, HeaderSize)
}

// ParseLegacyHeader parses the deprecated 6-byte header from the start of data.
// Same validation as ParseHeader with the shorter fixed size.
func ParseLegacyHeader(data []byte) (Header, error) {
	return parseHeader(data, LegacyHeaderSize)
}

func parseHeader(data []byte, headerSize int) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrMalformedFrame, len(data), headerSize)
	}

	kind := data[0] >> 4
	if kind != KindRecord {
		return Header{}, fmt.Errorf("%w: kind tag 0x%X, want 0x%X", errs.ErrMalformedFrame, kind, KindRecord)
	}

	engine := endian.GetBigEndianEngine()

	return Header{
		Kind:   kind,
		Length: engine.Uint32(data[LengthOffset : LengthOffset+LengthSize]),
	}, nil
}

// Validate checks the length invariant: the declared payload length must equal
// the frame length minus the header size.
//
// Parameters:
//   - frameLen: Total length of the frame in bytes, header included
//   - headerSize: HeaderSize or LegacyHeaderSize, whichever was parsed
//
// Returns:
//   - error: errs.ErrMalformedFrame when the declared length does not match
func (h Header) Validate(frameLen int, headerSize int) error {
	actual := frameLen - headerSize
	if int(h.Length) != actual {
		return fmt.Errorf("%w: declared payload length %d, actual %d", errs.ErrMalformedFrame, h.Length, actual)
	}

	return nil
}

// AppendTo appends the canonical 14-byte serialization of the header to buf
// and returns the extended slice. Reserved bytes are written as zero.
func (h Header) AppendTo(buf []byte) []byte {
	engine := endian.GetBigEndianEngine()

	buf = append(buf, h.Kind<<4, 0)
	buf = engine.AppendUint32(buf, h.Length)
	buf = append(buf, 0, 0, 0, 0, 0, 0, 0, 0)

	return buf
}

// Bytes serializes the header into a new canonical 14-byte slice.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}
