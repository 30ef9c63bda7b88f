package weft

import (
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/weftdata/weft/colblock"
	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/format"
	"github.com/weftdata/weft/row"
)

// TestRowRoundTrip verifies EncodeRow and DecodeRow mirror each other
func TestRowRoundTrip(t *testing.T) {
	when := time.Unix(1724447999, 0)

	frame, err := EncodeRow([]any{int64(4711), "checkout", true, when})
	require.NoError(t, err)
	require.NotEmpty(t, frame)

	tuple, err := DecodeRow(frame)
	require.NoError(t, err)
	require.Equal(t, row.Row{int64(4711), "checkout", true, when}, tuple)
}

// TestDecodeRowRejectsGarbage verifies header validation happens at the facade
func TestDecodeRowRejectsGarbage(t *testing.T) {
	_, err := DecodeRow([]byte{0x00, 0x01})
	require.ErrorIs(t, err, errs.ErrMalformedFrame)
}

// TestExtractFields verifies mapping projection with absent keys
func TestExtractFields(t *testing.T) {
	record := map[string]any{"id": int64(7), "name": "vega"}

	tuple, err := ExtractFields(record, []string{"name", "id", "missing"})
	require.NoError(t, err)
	require.Equal(t, row.Row{"vega", int64(7), nil}, tuple)
}

// TestCollect verifies column-major collection through the facade
func TestCollect(t *testing.T) {
	rows := []row.Row{
		{int64(1), "a"},
		{int64(2), "b"},
		{int64(3), "c"},
	}

	cols, err := Collect(rows, []int{1, 0}, 2)
	require.NoError(t, err)
	require.Equal(t, [][]any{
		{"a", "b"},
		{int64(1), int64(2)},
	}, cols)
}

// TestDisplayWidth verifies the rendering width helper
func TestDisplayWidth(t *testing.T) {
	require.Equal(t, 7, DisplayWidth([]any{"short", 1234567, nil}))
	require.Equal(t, 4, DisplayWidth(nil))
}

// TestColumnRoundTrip verifies EncodeColumn and DecodeColumn with options
func TestColumnRoundTrip(t *testing.T) {
	statuses := []string{"ok", "ok", "error", "ok", "ok", "error"}

	block, err := EncodeColumn(statuses,
		colblock.WithEncoding(format.EncodingDict),
		colblock.WithCompression(format.CompressionS2),
	)
	require.NoError(t, err)

	decoded, err := DecodeColumn(block)
	require.NoError(t, err)
	require.Equal(t, statuses, decoded)
}

// TestSuggestEncoding verifies the advisor recommendation feeds back into
// EncodeColumn
func TestSuggestEncoding(t *testing.T) {
	statuses := []string{"ok", "ok", "ok", "ok", "error", "ok", "ok", "ok"}

	advice, err := SuggestEncoding(statuses)
	require.NoError(t, err)
	require.Equal(t, 8, advice.RowCount)
	require.Len(t, advice.Candidates, 2)

	block, err := EncodeColumn(statuses, colblock.WithEncoding(advice.Best.Encoding))
	require.NoError(t, err)

	decoded, err := DecodeColumn(block)
	require.NoError(t, err)
	require.Equal(t, statuses, decoded)
}

// TestMaterializeRecord verifies record materialization through the facade
func TestMaterializeRecord(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)
	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()

	b.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2}, nil)
	b.Field(1).(*array.StringBuilder).AppendValues([]string{"ada", ""}, []bool{true, false})

	rec := b.NewRecord()
	defer rec.Release()

	rows, err := MaterializeRecord(rec, func(r row.Row) row.Row { return r })
	require.NoError(t, err)
	require.Equal(t, []row.Row{
		{int64(1), "ada"},
		{int64(2), nil},
	}, rows)
}

// TestMaterializeTable verifies batched table materialization
func TestMaterializeTable(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
	}, nil)
	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()

	b.Field(0).(*array.Int64Builder).AppendValues([]int64{1, 2, 3, 4, 5}, nil)
	rec := b.NewRecord()
	defer rec.Release()

	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	ids, err := MaterializeTable(tbl, func(r row.Row) int64 { return r[0].(int64) }, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4, 5}, ids)
}

// TestNewBitVector verifies bit vector creation and the close contract
func TestNewBitVector(t *testing.T) {
	v, err := NewBitVector(128)
	require.NoError(t, err)

	require.NoError(t, v.Set(100))
	set, err := v.Get(100)
	require.NoError(t, err)
	require.True(t, set)

	require.NoError(t, v.Close())

	_, err = NewBitVector(0)
	require.ErrorIs(t, err, errs.ErrInvalidSize)
}

// TestNewBloom verifies bloom filter creation and membership
func TestNewBloom(t *testing.T) {
	bf, err := NewBloom(1000, 0.01)
	require.NoError(t, err)
	defer bf.Close()

	bf.AddString("altair")
	require.True(t, bf.ContainsString("altair"))
	require.False(t, bf.ContainsString("never-added"))

	_, err = NewBloom(1000, 1.5)
	require.ErrorIs(t, err, errs.ErrInvalidFalsePositiveRate)
}
