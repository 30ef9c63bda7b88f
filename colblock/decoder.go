package colblock

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/weftdata/weft/compress"
	"github.com/weftdata/weft/encoding"
	"github.com/weftdata/weft/endian"
	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/format"
	"github.com/weftdata/weft/internal/hash"
)

// Decode decodes a column block back into its typed slice.
//
// The concrete type of the result matches the block's physical type:
// []int64 for TypeInt64, []string for TypeString, and so on. Use the typed
// helpers (DecodeInt64, DecodeString, ...) when the expected type is known.
//
// Validation order: header size, magic, version, enum values, section
// bounds, checksum, per-section entry counts, scheme replay, row count.
// Every violation is a hard failure wrapping the matching errs sentinel.
func Decode(block []byte) (any, error) {
	values, _, err := decodeBlock(block)

	return values, err
}

func decodeBlock(block []byte) (any, format.PhysicalType, error) {
	hdr, err := ParseHeader(block)
	if err != nil {
		return nil, format.TypeInvalid, err
	}

	sectionsLen := int(hdr.SectionALen) + int(hdr.SectionBLen)
	switch {
	case HeaderSize+sectionsLen > len(block):
		return nil, format.TypeInvalid, fmt.Errorf("%w: sections need %d bytes, block has %d after the header",
			errs.ErrTruncatedBlock, sectionsLen, len(block)-HeaderSize)
	case HeaderSize+sectionsLen < len(block):
		return nil, format.TypeInvalid, fmt.Errorf("%w: %d trailing bytes after the sections",
			errs.ErrMalformedPayload, len(block)-HeaderSize-sectionsLen)
	}

	sections := block[HeaderSize:]
	if sum := hash.Sum64(sections); sum != hdr.Checksum {
		return nil, format.TypeInvalid, fmt.Errorf("%w: stored 0x%016x, computed 0x%016x",
			errs.ErrChecksumMismatch, hdr.Checksum, sum)
	}

	codec, err := compress.CreateCodec(hdr.Compression)
	if err != nil {
		return nil, format.TypeInvalid, err
	}

	sectionA, err := codec.Decompress(sections[:hdr.SectionALen])
	if err != nil {
		return nil, format.TypeInvalid, fmt.Errorf("%w: values section: %v", errs.ErrMalformedPayload, err)
	}
	sectionB, err := codec.Decompress(sections[hdr.SectionALen:])
	if err != nil {
		return nil, format.TypeInvalid, fmt.Errorf("%w: lengths section: %v", errs.ErrMalformedPayload, err)
	}

	engine := endian.GetLittleEndianEngine()

	values, err := readValues(sectionA, hdr.Type, int(hdr.EntryCount), engine)
	if err != nil {
		return nil, format.TypeInvalid, err
	}

	// RLE pairs one length per entry; dictionary stores one index per row.
	numCount := int(hdr.EntryCount)
	if hdr.Encoding == format.EncodingDict {
		numCount = int(hdr.RowCount)
	}
	nums, err := readUint32Section(sectionB, numCount, engine)
	if err != nil {
		return nil, format.TypeInvalid, err
	}

	var decoded any
	switch hdr.Encoding {
	case format.EncodingRLE:
		decoded, err = encoding.RLEDecodeAny(values, nums)
	case format.EncodingDict:
		decoded, err = encoding.DictDecodeAny(values, nums)
	default:
		err = fmt.Errorf("%w: %s blocks are not decodable", errs.ErrInvalidEncodingType, hdr.Encoding)
	}
	if err != nil {
		return nil, format.TypeInvalid, err
	}

	if got := columnLen(decoded); got != int(hdr.RowCount) {
		return nil, format.TypeInvalid, fmt.Errorf("%w: decoded %d rows, header declares %d",
			errs.ErrCountMismatch, got, hdr.RowCount)
	}

	return decoded, hdr.Type, nil
}

func readValues(section []byte, typ format.PhysicalType, count int, engine endian.EndianEngine) (any, error) {
	if typ.IsVariableWidth() {
		return readVarWidthValues(section, typ, count)
	}

	size := typ.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: %s is not a column element type", errs.ErrUnsupportedType, typ)
	}

	need := count * size
	if len(section) < need {
		return nil, fmt.Errorf("%w: values section %d bytes, %d entries need %d",
			errs.ErrTruncatedBlock, len(section), count, need)
	}
	if len(section) > need {
		return nil, fmt.Errorf("%w: values section %d bytes, %d entries need %d",
			errs.ErrCountMismatch, len(section), count, need)
	}

	switch typ {
	case format.TypeInt8:
		return readFixed(section, count, 1, func(b []byte) int8 { return int8(b[0]) }), nil
	case format.TypeInt16:
		return readFixed(section, count, 2, func(b []byte) int16 { return int16(engine.Uint16(b)) }), nil
	case format.TypeInt32:
		return readFixed(section, count, 4, func(b []byte) int32 { return int32(engine.Uint32(b)) }), nil
	case format.TypeInt64:
		return readFixed(section, count, 8, func(b []byte) int64 { return int64(engine.Uint64(b)) }), nil
	case format.TypeFloat32:
		return readFixed(section, count, 4, func(b []byte) float32 { return math.Float32frombits(engine.Uint32(b)) }), nil
	case format.TypeFloat64:
		return readFixed(section, count, 8, func(b []byte) float64 { return math.Float64frombits(engine.Uint64(b)) }), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a column element type", errs.ErrUnsupportedType, typ)
	}
}

func readVarWidthValues(section []byte, typ format.PhysicalType, count int) (any, error) {
	// Each entry carries at least a one-byte length prefix, so the section
	// length bounds the entry count. The check must precede the output
	// allocation, which is sized from the unchecksummed header count.
	if count > len(section) {
		return nil, fmt.Errorf("%w: values section %d bytes cannot hold %d entries",
			errs.ErrTruncatedBlock, len(section), count)
	}

	rest := section

	if typ == format.TypeString {
		out := make([]string, count)
		for i := range out {
			v, tail, err := nextVarBytes(rest, i)
			if err != nil {
				return nil, err
			}
			out[i] = string(v)
			rest = tail
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("%w: %d bytes after %d entries", errs.ErrCountMismatch, len(rest), count)
		}

		return out, nil
	}

	out := make([][]byte, count)
	for i := range out {
		v, tail, err := nextVarBytes(rest, i)
		if err != nil {
			return nil, err
		}
		// Copy so decoded entries never alias the caller's block.
		out[i] = bytes.Clone(v)
		rest = tail
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d bytes after %d entries", errs.ErrCountMismatch, len(rest), count)
	}

	return out, nil
}

func nextVarBytes(rest []byte, index int) ([]byte, []byte, error) {
	length, n := binary.Uvarint(rest)
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: bad length prefix at entry %d", errs.ErrTruncatedBlock, index)
	}
	if length > uint64(len(rest)-n) {
		return nil, nil, fmt.Errorf("%w: entry %d declares %d bytes, %d remain",
			errs.ErrTruncatedBlock, index, length, len(rest)-n)
	}

	end := n + int(length)

	return rest[n:end], rest[end:], nil
}

func readUint32Section(section []byte, count int, engine endian.EndianEngine) ([]uint32, error) {
	need := count * 4
	if len(section) < need {
		return nil, fmt.Errorf("%w: numeric section %d bytes, %d entries need %d",
			errs.ErrTruncatedBlock, len(section), count, need)
	}
	if len(section) > need {
		return nil, fmt.Errorf("%w: numeric section %d bytes, %d entries need %d",
			errs.ErrCountMismatch, len(section), count, need)
	}

	return readFixed(section, count, 4, engine.Uint32), nil
}

// readFixed deserializes count fixed-width elements of size bytes each.
// The caller has already validated the section length.
func readFixed[T any](section []byte, count, size int, get func([]byte) T) []T {
	out := make([]T, count)
	for i := range out {
		start := i * size
		out[i] = get(section[start : start+size])
	}

	return out
}

func columnLen(values any) int {
	switch vals := values.(type) {
	case []int8:
		return len(vals)
	case []int16:
		return len(vals)
	case []int32:
		return len(vals)
	case []int64:
		return len(vals)
	case []float32:
		return len(vals)
	case []float64:
		return len(vals)
	case []string:
		return len(vals)
	case [][]byte:
		return len(vals)
	}

	return -1
}

func decodeTyped[T any](block []byte, want format.PhysicalType) ([]T, error) {
	values, typ, err := decodeBlock(block)
	if err != nil {
		return nil, err
	}
	if typ != want {
		return nil, fmt.Errorf("%w: block holds %s, want %s", errs.ErrUnsupportedType, typ, want)
	}

	return values.([]T), nil
}

// DecodeInt8 decodes a block whose physical type is Int8.
func DecodeInt8(block []byte) ([]int8, error) {
	return decodeTyped[int8](block, format.TypeInt8)
}

// DecodeInt16 decodes a block whose physical type is Int16.
func DecodeInt16(block []byte) ([]int16, error) {
	return decodeTyped[int16](block, format.TypeInt16)
}

// DecodeInt32 decodes a block whose physical type is Int32.
func DecodeInt32(block []byte) ([]int32, error) {
	return decodeTyped[int32](block, format.TypeInt32)
}

// DecodeInt64 decodes a block whose physical type is Int64.
func DecodeInt64(block []byte) ([]int64, error) {
	return decodeTyped[int64](block, format.TypeInt64)
}

// DecodeFloat32 decodes a block whose physical type is Float32.
func DecodeFloat32(block []byte) ([]float32, error) {
	return decodeTyped[float32](block, format.TypeFloat32)
}

// DecodeFloat64 decodes a block whose physical type is Float64.
func DecodeFloat64(block []byte) ([]float64, error) {
	return decodeTyped[float64](block, format.TypeFloat64)
}

// DecodeString decodes a block whose physical type is String.
func DecodeString(block []byte) ([]string, error) {
	return decodeTyped[string](block, format.TypeString)
}

// DecodeBinary decodes a block whose physical type is Binary.
func DecodeBinary(block []byte) ([][]byte, error) {
	return decodeTyped[[]byte](block, format.TypeBinary)
}
