// Package materialize rebuilds row tuples from Arrow-layout column buffers.
//
// The input is the raw buffer triple behind each column: an optional
// validity bitmap, an int32 offsets array for variable-width types, and the
// contiguous value buffer. Reading the triples directly skips the
// per-value accessor layer of a columnar table API, which matters when a
// query engine hands back millions of rows.
//
// # Buffer Triple
//
// Each column is described by a ColumnBuffers value:
//
//	Validity : optional bitmap, LSB first, bit=1 means the row is valid
//	Offsets  : int32 boundaries in host byte order (String and Binary only)
//	Data     : value bytes; fixed-width at i*size, bools bit-packed
//
// The layout matches the Arrow columnar format, which keeps in-memory
// buffers in the host's byte order, so the triples can come from an
// arrow.Record, an IPC payload, or any producer that follows the same
// convention. Buffers are read-only; this package never mutates or retains
// them.
//
// # Materializing
//
//	rows, err := materialize.Rows(cols, func(r row.Row) row.Row { return r })
//
// The constructor runs once per row, in row order, and its results become
// the output slice. Any constructor result type works:
//
//	type point struct{ x, y float64 }
//
//	points, err := materialize.Rows(cols, func(r row.Row) point {
//	    return point{x: r[0].(float64), y: r[1].(float64)}
//	})
//
// # Null Degradation
//
// Field decoding is best-effort. A cleared validity bit, a slot past the
// end of a buffer, a corrupt offset pair, or an unknown physical type each
// produce a nil field; the row and the batch always complete. Producers
// upstream of this package are not always strictly validated, so a single
// bad buffer must not poison the whole materialization. Hard errors are
// reserved for structurally impossible input, such as columns that
// disagree on row count.
//
// # Arrow Adapters
//
//	rows, err := materialize.FromRecord(rec, ctor)
//	rows, err := materialize.FromTable(tbl, ctor, 4096)
//
// FromRecord pulls each column's buffers out of the array data, rebasing
// sliced arrays so the triple always addresses element 0 at index 0.
// FromTable walks the table with array.NewTableReader using the given
// batch size and concatenates the per-batch results.
//
// # Thread Safety
//
// All functions are pure transforms over caller-owned buffers and are safe
// for concurrent use.
package materialize
