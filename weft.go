// Package weft provides the data interchange layer between row-oriented
// producers and columnar consumers.
//
// Weft moves tuples across three representations: self-describing binary row
// frames for transport, compact encoded column blocks for storage, and
// Arrow-layout buffers for interop with columnar engines. Each direction is a
// pure in-process transform; there is no I/O, no retained state, and no
// logging inside the library.
//
// # Core Features
//
//   - Framed row records: length-prefixed MessagePack tuples with a
//     validated binary header and a datetime tagging convention
//   - Columnar encoding: run-length and dictionary schemes over eight
//     physical types, with per-section compression (None, Zstd, S2, LZ4)
//     and xxHash64 integrity checks
//   - Row materialization straight from Arrow validity/offsets/data
//     buffers, including arrow.Record and arrow.Table adapters
//   - Column projection and display-width helpers for table rendering
//   - Pooled bit vectors and a bloom filter for cheap membership tracking
//
// # Row Frames
//
// Encoding and decoding a tuple:
//
//	import "github.com/weftdata/weft"
//
//	frame, err := weft.EncodeRow([]any{int64(4711), "checkout", true, time.Now()})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tuple, err := weft.DecodeRow(frame)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tuple[1]) // "checkout"
//
// # Column Blocks
//
// Encoding a column and reading it back:
//
//	block, err := weft.EncodeColumn([]string{"ok", "ok", "error", "ok"},
//	    colblock.WithEncoding(format.EncodingDict),
//	    colblock.WithCompression(format.CompressionS2),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := weft.DecodeColumn(block) // []string
//
// # Materializing Arrow Data
//
// Rebuilding rows from a record batch:
//
//	rows, err := weft.MaterializeRecord(rec, func(r row.Row) row.Row { return r })
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the focused
// subpackages, simplifying the most common use cases. For fine-grained
// control use the subpackages directly:
//
//   - row: frame codec, field extraction, the Row tuple type
//   - colblock: encoded column block format and options
//   - encoding: run-length and dictionary transforms per physical type
//   - project: column collection and display-width measurement
//   - materialize: Arrow-buffer row materialization
//   - bitvec, filter: bit vector and bloom filter
//   - format, errs: shared enums and error sentinels
package weft

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/weftdata/weft/bitvec"
	"github.com/weftdata/weft/colblock"
	"github.com/weftdata/weft/filter"
	"github.com/weftdata/weft/materialize"
	"github.com/weftdata/weft/project"
	"github.com/weftdata/weft/row"
)

// EncodeRow serializes a tuple of values into a framed record.
//
// time.Time values are tagged with the datetime convention before payload
// encoding so any consumer can restore them. The payload is limited to
// frame.MaxPayloadSize bytes.
//
// Example:
//
//	frame, err := weft.EncodeRow([]any{int64(1), "ada", 3.25})
func EncodeRow(values []any) ([]byte, error) {
	return row.Encode(values)
}

// DecodeRow parses a framed record back into a tuple.
//
// The header is validated before the payload is touched; tagged datetimes
// come back as time.Time and numeric widths are normalized to the Row value
// set. Pass row.WithLegacyHeader() to read frames written with the
// deprecated compact header.
//
// Example:
//
//	tuple, err := weft.DecodeRow(frame)
//	legacy, err := weft.DecodeRow(oldFrame, row.WithLegacyHeader())
func DecodeRow(data []byte, opts ...row.DecodeOption) (row.Row, error) {
	return row.Decode(data, opts...)
}

// ExtractFields projects named fields out of a decoded mapping into a tuple,
// one value per name with nil for absent keys.
//
// Example:
//
//	tuple, err := weft.ExtractFields(record, []string{"id", "name", "score"})
func ExtractFields(record any, names []string) (row.Row, error) {
	return row.ExtractFields(record, names)
}

// Collect gathers the values at the requested column positions across rows,
// column-major. A non-negative limit caps the number of rows read.
//
// Example:
//
//	cols, err := weft.Collect(rows, []int{0, 2}, 1000)
//	ids, names := cols[0], cols[1]
func Collect(rows []row.Row, positions []int, limit int) ([][]any, error) {
	return project.Collect(rows, positions, limit)
}

// DisplayWidth returns the display column width needed for the rendered
// values, with a floor of project.MinDisplayWidth. Nil values are skipped.
func DisplayWidth(values []any) int {
	return project.DisplayWidth(values)
}

// EncodeColumn serializes a typed column slice into a self-describing
// encoded block.
//
// The default configuration uses run-length encoding with no compression;
// see colblock.WithEncoding and colblock.WithCompression.
//
// Example:
//
//	block, err := weft.EncodeColumn(statuses,
//	    colblock.WithEncoding(format.EncodingDict),
//	)
func EncodeColumn(data any, opts ...colblock.Option) ([]byte, error) {
	return colblock.Encode(data, opts...)
}

// DecodeColumn validates an encoded block and replays it back to the typed
// slice it was encoded from. The concrete type follows the block header; use
// the colblock.DecodeInt64-style helpers when the type is known up front.
//
// Example:
//
//	values, err := weft.DecodeColumn(block)
//	statuses, ok := values.([]string)
func DecodeColumn(block []byte) (any, error) {
	return colblock.Decode(block)
}

// SuggestEncoding scans a column and recommends the encoding scheme that
// yields the smallest block, with size estimates for every candidate.
//
// Example:
//
//	advice, err := weft.SuggestEncoding(statuses)
//	block, err := weft.EncodeColumn(statuses, colblock.WithEncoding(advice.Best.Encoding))
func SuggestEncoding(data any) (*colblock.Advice, error) {
	return colblock.SuggestEncoding(data)
}

// MaterializeRecord rebuilds row tuples from an Arrow record batch, passing
// each tuple through ctor in row order.
//
// Example:
//
//	rows, err := weft.MaterializeRecord(rec, func(r row.Row) row.Row { return r })
func MaterializeRecord[R any](rec arrow.Record, ctor func(row.Row) R) ([]R, error) {
	return materialize.FromRecord(rec, ctor)
}

// MaterializeTable rebuilds row tuples from an Arrow table, reading it in
// batches of batchSize rows.
//
// Example:
//
//	rows, err := weft.MaterializeTable(tbl, ctor, 4096)
func MaterializeTable[R any](tbl arrow.Table, ctor func(row.Row) R, batchSize int) ([]R, error) {
	return materialize.FromTable(tbl, ctor, batchSize)
}

// NewBitVector creates a fixed-size bit vector with pooled storage. Pair it
// with a deferred Close.
//
// Example:
//
//	seen, err := weft.NewBitVector(4096)
//	defer seen.Close()
func NewBitVector(size int) (*bitvec.Vector, error) {
	return bitvec.New(size)
}

// NewBloom creates a bloom filter sized for the expected item count and
// target false positive rate. Pair it with a deferred Close.
//
// Example:
//
//	bf, err := weft.NewBloom(100000, 0.01)
//	defer bf.Close()
func NewBloom(expectedItems int, fpRate float64) (*filter.Bloom, error) {
	return filter.NewBloom(expectedItems, fpRate)
}
