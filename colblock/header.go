package colblock

import (
	"fmt"

	"github.com/weftdata/weft/endian"
	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/format"
)

// Header is the fixed-size header at the start of every column block.
//
// The magic number (bytes 0-1) and version (byte 2) are implicit: Bytes
// always writes the current MagicNumber and Version, and Parse rejects
// anything else. Bytes 6-7 are reserved and zero.
type Header struct {
	// Type is the physical element type of the column.
	Type format.PhysicalType // byte offset 3
	// Encoding is the columnar encoding scheme of the two sections.
	Encoding format.EncodingType // byte offset 4
	// Compression is the codec applied to both sections.
	Compression format.CompressionType // byte offset 5
	// RowCount is the logical length of the decoded column.
	RowCount uint32 // byte offset 8-11
	// EntryCount is the number of serialized values (RLE run values or
	// dictionary entries) in section A.
	EntryCount uint32 // byte offset 12-15
	// SectionALen is the compressed byte length of the values section.
	SectionALen uint32 // byte offset 16-19
	// SectionBLen is the compressed byte length of the lengths/indices
	// section.
	SectionBLen uint32 // byte offset 20-23
	// Checksum is the xxHash64 of the two compressed sections, in block
	// order.
	Checksum uint64 // byte offset 24-31
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: wrapped errs sentinel on size, magic, version, or enum violations
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	engine := endian.GetLittleEndianEngine()

	if magic := engine.Uint16(data[magicOffset : magicOffset+2]); magic != MagicNumber {
		return fmt.Errorf("%w: 0x%04X, want 0x%04X", errs.ErrInvalidMagicNumber, magic, MagicNumber)
	}
	if version := data[versionOffset]; version != Version {
		return fmt.Errorf("%w: %d, supported version %d", errs.ErrUnsupportedVersion, version, Version)
	}

	h.Type = format.PhysicalType(data[typeOffset])
	h.Encoding = format.EncodingType(data[encodingOffset])
	h.Compression = format.CompressionType(data[compressionOffset])
	h.RowCount = engine.Uint32(data[rowCountOffset : rowCountOffset+4])
	h.EntryCount = engine.Uint32(data[entryCountOffset : entryCountOffset+4])
	h.SectionALen = engine.Uint32(data[sectionAOffset : sectionAOffset+4])
	h.SectionBLen = engine.Uint32(data[sectionBOffset : sectionBOffset+4])
	h.Checksum = engine.Uint64(data[checksumOffset : checksumOffset+8])

	return h.validateEnums()
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := endian.GetLittleEndianEngine()

	engine.PutUint16(b[magicOffset:magicOffset+2], MagicNumber)
	b[versionOffset] = Version
	b[typeOffset] = uint8(h.Type)
	b[encodingOffset] = uint8(h.Encoding)
	b[compressionOffset] = uint8(h.Compression)
	engine.PutUint32(b[rowCountOffset:rowCountOffset+4], h.RowCount)
	engine.PutUint32(b[entryCountOffset:entryCountOffset+4], h.EntryCount)
	engine.PutUint32(b[sectionAOffset:sectionAOffset+4], h.SectionALen)
	engine.PutUint32(b[sectionBOffset:sectionBOffset+4], h.SectionBLen)
	engine.PutUint64(b[checksumOffset:checksumOffset+8], h.Checksum)

	return b
}

func (h *Header) validateEnums() error {
	if !h.Type.IsValid() {
		return fmt.Errorf("%w: physical type 0x%X", errs.ErrUnsupportedType, uint8(h.Type))
	}
	if !h.Encoding.IsValid() {
		return fmt.Errorf("%w: 0x%X", errs.ErrInvalidEncodingType, uint8(h.Encoding))
	}
	if !h.Compression.IsValid() {
		return fmt.Errorf("%w: 0x%X", errs.ErrInvalidCompressionType, uint8(h.Compression))
	}

	return nil
}

// ParseHeader parses a Header from the start of a block.
//
// Parameters:
//   - data: Byte slice starting with the header (must be at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: wrapped errs sentinel on size, magic, version, or enum violations
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
