package colblock

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/weftdata/weft/compress"
	"github.com/weftdata/weft/encoding"
	"github.com/weftdata/weft/endian"
	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/format"
	"github.com/weftdata/weft/internal/hash"
	"github.com/weftdata/weft/internal/options"
	"github.com/weftdata/weft/internal/pool"
)

// Encode encodes a typed column slice into a self-describing block.
//
// The element type must be one of the eight supported column types
// ([]int8, []int16, []int32, []int64, []float32, []float64, []string,
// [][]byte); anything else fails with errs.ErrUnsupportedType. The default
// configuration uses run-length encoding and no compression; override with
// WithEncoding and WithCompression.
//
// Parameters:
//   - data: typed column slice to encode
//   - opts: block options (encoding scheme, compression)
//
// Returns:
//   - []byte: complete block (header plus two compressed sections)
//   - error: option, dispatch, or size errors
func Encode(data any, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return encodeColumn(data, cfg)
}

// EncodeRLE encodes a column with run-length encoding, regardless of any
// WithEncoding option.
func EncodeRLE(data any, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	cfg.encoding = format.EncodingRLE

	return encodeColumn(data, cfg)
}

// EncodeDict encodes a column with dictionary encoding, regardless of any
// WithEncoding option.
func EncodeDict(data any, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	cfg.encoding = format.EncodingDict

	return encodeColumn(data, cfg)
}

func encodeColumn(data any, cfg BlockConfig) ([]byte, error) {
	typ, err := encoding.PhysicalTypeOf(data)
	if err != nil {
		return nil, err
	}

	var (
		values any
		nums   []uint32
	)

	switch cfg.encoding {
	case format.EncodingRLE:
		values, nums, err = encoding.RLEEncodeAny(data)
	case format.EncodingDict:
		values, nums, err = encoding.DictEncodeAny(data)
	default:
		err = fmt.Errorf("%w: %s", errs.ErrInvalidEncodingType, cfg.encoding)
	}
	if err != nil {
		return nil, err
	}

	rowCount, err := rowCountFor(cfg.encoding, nums)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()

	valueBuf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(valueBuf)
	entryCount := appendValues(valueBuf, engine, values)

	numBuf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(numBuf)
	appendFixed(numBuf, 4, nums, engine.PutUint32)

	codec, err := compress.CreateCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	compressedA, err := codec.Compress(valueBuf.Bytes())
	if err != nil {
		return nil, err
	}
	compressedB, err := codec.Compress(numBuf.Bytes())
	if err != nil {
		return nil, err
	}
	if uint64(len(compressedA)) > math.MaxUint32 || uint64(len(compressedB)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed section exceeds the uint32 length field", errs.ErrInvalidSize)
	}

	// Sections are laid out first so the checksum can cover them in place;
	// the header is filled in last.
	out := make([]byte, HeaderSize+len(compressedA)+len(compressedB))
	copy(out[HeaderSize:], compressedA)
	copy(out[HeaderSize+len(compressedA):], compressedB)

	hdr := Header{
		Type:        typ,
		Encoding:    cfg.encoding,
		Compression: cfg.compression,
		RowCount:    rowCount,
		EntryCount:  uint32(entryCount),
		SectionALen: uint32(len(compressedA)),
		SectionBLen: uint32(len(compressedB)),
		Checksum:    hash.Sum64(out[HeaderSize:]),
	}
	copy(out[:HeaderSize], hdr.Bytes())

	return out, nil
}

// rowCountFor derives the logical row count from the scheme's numeric
// section: the index count for dictionary encoding, the run-length sum for
// RLE.
func rowCountFor(scheme format.EncodingType, nums []uint32) (uint32, error) {
	if scheme == format.EncodingDict {
		if uint64(len(nums)) > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d rows exceed the uint32 row count field", errs.ErrInvalidSize, len(nums))
		}

		return uint32(len(nums)), nil
	}

	var total uint64
	for _, l := range nums {
		total += uint64(l)
	}
	if total > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d rows exceed the uint32 row count field", errs.ErrInvalidSize, total)
	}

	return uint32(total), nil
}

// appendValues serializes the values/dictionary section and returns the
// entry count. Fixed-width elements are written directly through the
// endian engine; variable-width elements get a uvarint length prefix.
func appendValues(buf *pool.ByteBuffer, engine endian.EndianEngine, values any) int {
	switch vals := values.(type) {
	case []int8:
		appendFixed(buf, 1, vals, func(b []byte, v int8) { b[0] = uint8(v) })
		return len(vals)
	case []int16:
		appendFixed(buf, 2, vals, func(b []byte, v int16) { engine.PutUint16(b, uint16(v)) })
		return len(vals)
	case []int32:
		appendFixed(buf, 4, vals, func(b []byte, v int32) { engine.PutUint32(b, uint32(v)) })
		return len(vals)
	case []int64:
		appendFixed(buf, 8, vals, func(b []byte, v int64) { engine.PutUint64(b, uint64(v)) })
		return len(vals)
	case []float32:
		appendFixed(buf, 4, vals, func(b []byte, v float32) { engine.PutUint32(b, math.Float32bits(v)) })
		return len(vals)
	case []float64:
		appendFixed(buf, 8, vals, func(b []byte, v float64) { engine.PutUint64(b, math.Float64bits(v)) })
		return len(vals)
	case []string:
		for _, s := range vals {
			appendVarBytes(buf, []byte(s))
		}
		return len(vals)
	case [][]byte:
		for _, v := range vals {
			appendVarBytes(buf, v)
		}
		return len(vals)
	}

	// Unreachable: PhysicalTypeOf vetted the element type.
	return 0
}

// appendFixed writes vals into buf at size bytes per element, extending the
// buffer once for the whole slice.
func appendFixed[T any](buf *pool.ByteBuffer, size int, vals []T, put func([]byte, T)) {
	start := buf.Len()
	buf.ExtendOrGrow(len(vals) * size)

	for i, v := range vals {
		offset := start + i*size
		put(buf.Slice(offset, offset+size), v)
	}
}

func appendVarBytes(buf *pool.ByteBuffer, v []byte) {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], uint64(len(v)))

	buf.Grow(n + len(v))
	buf.MustWrite(scratch[:n])
	buf.MustWrite(v)
}
