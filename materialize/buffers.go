package materialize

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/weftdata/weft/endian"
	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/format"
	"github.com/weftdata/weft/row"
)

// ColumnBuffers describes one column of Arrow-layout data as a raw buffer
// triple. The buffers are read-only inputs; nothing in this package writes
// to them or retains them past the call.
type ColumnBuffers struct {
	// Validity is the optional null bitmap, least-significant bit first.
	// Bit i set means row i is valid. An empty bitmap marks every row valid.
	Validity []byte

	// Offsets holds the int32 element boundaries for variable-width types,
	// in the host's byte order like every Arrow buffer. Element i spans
	// Data[Offsets[i]:Offsets[i+1]]. Fixed-width and bit-packed types leave
	// it empty.
	Offsets []byte

	// Data is the contiguous value buffer. Fixed-width elements sit at
	// i*size, bools are bit-packed, and variable-width bytes are addressed
	// through Offsets.
	Data []byte

	// Type declares how Data is laid out.
	Type format.PhysicalType

	// Len is the number of logical rows in the column.
	Len int
}

// Arrow keeps in-memory buffers in the host's byte order, so every buffer
// read goes through the engine matching it. Wire formats elsewhere in the
// module keep their fixed byte order.
var bufferEngine = hostEngine()

func hostEngine() endian.EndianEngine {
	le := endian.GetLittleEndianEngine()
	if endian.CompareNativeEndian(le) {
		return le
	}

	return endian.GetBigEndianEngine()
}

// Rows reconstructs row tuples from a set of column buffers and passes each
// one through ctor in row order.
//
// Per field the decode is best-effort: a cleared validity bit, a read past
// the end of a buffer, a corrupt offset pair, or an unknown physical type
// all yield a nil field rather than an error. Integers widen to int64 and
// floats to float64 so tuples carry the Row value set; TypeString replaces
// invalid UTF-8 with U+FFFD and TypeBinary copies its bytes so no field
// aliases the input buffers.
//
// Parameters:
//   - cols: One buffer triple per column, all with the same Len
//   - ctor: Row constructor invoked once per row, in row order
//
// Returns:
//   - []R: The constructed rows (empty, non-nil, when cols is empty)
//   - error: errs.ErrMismatchedLengths when the columns disagree on Len
func Rows[R any](cols []ColumnBuffers, ctor func(row.Row) R) ([]R, error) {
	if len(cols) == 0 {
		return []R{}, nil
	}

	numRows := cols[0].Len
	for j := 1; j < len(cols); j++ {
		if cols[j].Len != numRows {
			return nil, fmt.Errorf("%w: column 0 has %d rows, column %d has %d",
				errs.ErrMismatchedLengths, numRows, j, cols[j].Len)
		}
	}

	out := make([]R, 0, numRows)
	for i := 0; i < numRows; i++ {
		// The constructor may retain the tuple, so every row gets its own
		// backing slice.
		fields := make(row.Row, len(cols))
		for j := range cols {
			fields[j] = fieldValue(&cols[j], i)
		}
		out = append(out, ctor(fields))
	}

	return out, nil
}

// fieldValue decodes the value of one column at row index i, or nil when the
// validity bitmap marks the row null or the buffers cannot satisfy the read.
func fieldValue(col *ColumnBuffers, i int) any {
	if !validAt(col.Validity, i) {
		return nil
	}

	engine := bufferEngine

	switch col.Type {
	case format.TypeInt8:
		if b, ok := fixedSlot(col.Data, i, 1); ok {
			return int64(int8(b[0]))
		}
	case format.TypeInt16:
		if b, ok := fixedSlot(col.Data, i, 2); ok {
			return int64(int16(engine.Uint16(b)))
		}
	case format.TypeInt32:
		if b, ok := fixedSlot(col.Data, i, 4); ok {
			return int64(int32(engine.Uint32(b)))
		}
	case format.TypeInt64:
		if b, ok := fixedSlot(col.Data, i, 8); ok {
			return int64(engine.Uint64(b))
		}
	case format.TypeFloat32:
		if b, ok := fixedSlot(col.Data, i, 4); ok {
			return float64(math.Float32frombits(engine.Uint32(b)))
		}
	case format.TypeFloat64:
		if b, ok := fixedSlot(col.Data, i, 8); ok {
			return math.Float64frombits(engine.Uint64(b))
		}
	case format.TypeBool:
		if i>>3 < len(col.Data) {
			return col.Data[i>>3]&(1<<(i&7)) != 0
		}
	case format.TypeString:
		if b, ok := varSlot(col.Offsets, col.Data, i); ok {
			return decodeText(b)
		}
	case format.TypeBinary:
		if b, ok := varSlot(col.Offsets, col.Data, i); ok {
			return bytes.Clone(b)
		}
	}

	return nil
}

// validAt reports whether bit i of the null bitmap is set. An empty bitmap
// reads as all valid; a bitmap too short for the index reads as null.
func validAt(bitmap []byte, i int) bool {
	if len(bitmap) == 0 {
		return true
	}
	if i>>3 >= len(bitmap) {
		return false
	}

	return bitmap[i>>3]&(1<<(i&7)) != 0
}

// fixedSlot bounds the size-byte slot of element i against the value buffer.
func fixedSlot(data []byte, i, size int) ([]byte, bool) {
	start := i * size
	end := start + size
	if start < 0 || end > len(data) {
		return nil, false
	}

	return data[start:end], true
}

// varSlot bounds the variable-width element i using its int32 offset pair.
// Both offsets and the span they describe are validated before slicing.
func varSlot(offsets, data []byte, i int) ([]byte, bool) {
	lo := i * 4
	if lo < 0 || lo+8 > len(offsets) {
		return nil, false
	}

	start := int32(bufferEngine.Uint32(offsets[lo:]))
	end := int32(bufferEngine.Uint32(offsets[lo+4:]))
	if start < 0 || end < start || int(end) > len(data) {
		return nil, false
	}

	return data[start:end], true
}

// decodeText converts value bytes to a string, substituting U+FFFD for
// invalid UTF-8 sequences.
func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
