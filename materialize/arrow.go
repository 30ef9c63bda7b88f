package materialize

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/weftdata/weft/format"
	"github.com/weftdata/weft/row"
)

// FromRecord materializes every row of an Arrow record batch.
//
// Each column's validity, offset, and value buffers are taken straight from
// the array data, so the hot path reads raw bytes instead of calling
// per-value accessors. Sliced columns (nonzero data offset) are rebased
// first. The record is not retained, its buffers are never mutated, and no
// output field aliases them.
//
// Parameters:
//   - rec: The record batch to materialize
//   - ctor: Row constructor invoked once per row, in row order
//
// Returns:
//   - []R: The constructed rows
//   - error: errs.ErrMismatchedLengths when the record's columns disagree
//     on length
func FromRecord[R any](rec arrow.Record, ctor func(row.Row) R) ([]R, error) {
	cols := make([]ColumnBuffers, rec.NumCols())
	for j := range cols {
		cols[j] = columnBuffers(rec.Column(j))
	}

	return Rows(cols, ctor)
}

// FromTable materializes every row of an Arrow table.
//
// The table is read in batches of batchSize rows via array.NewTableReader;
// batchSize <= 0 reads the largest chunks the table allows. Each batch goes
// through FromRecord and the results are concatenated in table order.
//
// Parameters:
//   - tbl: The table to materialize
//   - ctor: Row constructor invoked once per row, in row order
//   - batchSize: Chunk size for the table reader
//
// Returns:
//   - []R: The constructed rows
//   - error: The first error from any batch
func FromTable[R any](tbl arrow.Table, ctor func(row.Row) R, batchSize int) ([]R, error) {
	reader := array.NewTableReader(tbl, int64(batchSize))
	defer reader.Release()

	out := make([]R, 0, tbl.NumRows())
	for reader.Next() {
		batch, err := FromRecord(reader.Record(), ctor)
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}

	return out, nil
}

// columnBuffers adapts one Arrow array into the raw buffer triple. Sliced
// arrays are rebased so the triple addresses element 0 at index 0; Arrow
// types outside the supported set map to format.TypeInvalid, which reads as
// all-nil.
func columnBuffers(arr arrow.Array) ColumnBuffers {
	data := arr.Data()
	off := data.Offset()
	n := arr.Len()

	col := ColumnBuffers{Len: n, Validity: validityBitmap(arr)}

	switch data.DataType().ID() {
	case arrow.INT8:
		col.Type = format.TypeInt8
		col.Data = fixedData(data, off, n, 1)
	case arrow.INT16:
		col.Type = format.TypeInt16
		col.Data = fixedData(data, off, n, 2)
	case arrow.INT32:
		col.Type = format.TypeInt32
		col.Data = fixedData(data, off, n, 4)
	case arrow.INT64:
		col.Type = format.TypeInt64
		col.Data = fixedData(data, off, n, 8)
	case arrow.FLOAT32:
		col.Type = format.TypeFloat32
		col.Data = fixedData(data, off, n, 4)
	case arrow.FLOAT64:
		col.Type = format.TypeFloat64
		col.Data = fixedData(data, off, n, 8)
	case arrow.BOOL:
		col.Type = format.TypeBool
		col.Data = boolData(arr)
	case arrow.STRING:
		col.Type = format.TypeString
		col.Offsets, col.Data = varData(data, off, n)
	case arrow.BINARY:
		col.Type = format.TypeBinary
		col.Offsets, col.Data = varData(data, off, n)
	}

	return col
}

// validityBitmap extracts the null bitmap rebased to bit 0. Arrays without
// nulls return nil so every row reads as valid; slices that start off a byte
// boundary are repacked bit by bit.
func validityBitmap(arr arrow.Array) []byte {
	if arr.NullN() == 0 {
		return nil
	}

	data := arr.Data()
	bufs := data.Buffers()
	if len(bufs) == 0 || bufs[0] == nil {
		return nil
	}

	off := data.Offset()
	n := arr.Len()
	if off&7 == 0 {
		b := bufs[0].Bytes()
		lo := off >> 3
		hi := lo + (n+7)>>3
		if lo > len(b) {
			lo = len(b)
		}
		if hi > len(b) {
			hi = len(b)
		}

		return b[lo:hi]
	}

	packed := make([]byte, (n+7)>>3)
	for i := 0; i < n; i++ {
		if arr.IsValid(i) {
			packed[i>>3] |= 1 << (i & 7)
		}
	}

	return packed
}

// fixedData slices the value buffer window of a fixed-width column.
func fixedData(data arrow.ArrayData, off, n, size int) []byte {
	bufs := data.Buffers()
	if len(bufs) < 2 || bufs[1] == nil {
		return nil
	}

	b := bufs[1].Bytes()
	lo := off * size
	hi := (off + n) * size
	if lo > hi || hi > len(b) {
		return nil
	}

	return b[lo:hi]
}

// varData slices the offsets window of a variable-width column. The value
// buffer is kept whole because the offsets address it absolutely.
func varData(data arrow.ArrayData, off, n int) (offsets, values []byte) {
	bufs := data.Buffers()
	if len(bufs) < 3 || bufs[1] == nil {
		return nil, nil
	}

	b := bufs[1].Bytes()
	lo := off * 4
	hi := (off + n + 1) * 4
	if lo > hi || hi > len(b) {
		return nil, nil
	}

	if bufs[2] != nil {
		values = bufs[2].Bytes()
	}

	return b[lo:hi], values
}

// boolData extracts the bit-packed bool values, repacking when the array is
// sliced off a byte boundary.
func boolData(arr arrow.Array) []byte {
	data := arr.Data()
	bufs := data.Buffers()
	if len(bufs) < 2 || bufs[1] == nil {
		return nil
	}

	off := data.Offset()
	n := arr.Len()
	if off&7 == 0 {
		b := bufs[1].Bytes()
		lo := off >> 3
		hi := lo + (n+7)>>3
		if hi > len(b) {
			return nil
		}

		return b[lo:hi]
	}

	bools, ok := arr.(*array.Boolean)
	if !ok {
		return nil
	}
	packed := make([]byte, (n+7)>>3)
	for i := 0; i < n; i++ {
		if bools.Value(i) {
			packed[i>>3] |= 1 << (i & 7)
		}
	}

	return packed
}
