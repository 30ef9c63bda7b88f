package project

import (
	"fmt"

	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/row"
)

// Collect projects the columns at the given positions out of rows,
// returning one column-major slice per position: out[j][i] holds the value
// of rows[i] at positions[j].
//
// All rows must share the arity of the first row. Every position is
// validated against that arity before any output is built; an out-of-range
// position returns a wrapped errs.ErrIndexOutOfRange naming the position
// and the arity.
//
// A non-negative limit caps the number of rows collected at
// min(limit, len(rows)); a negative limit collects every row.
//
// Empty rows or empty positions yield len(positions) empty columns and no
// error.
//
// Parameters:
//   - rows: source rows, all of equal arity
//   - positions: column positions to extract, each in [0, arity)
//   - limit: maximum row count, negative for no limit
//
// Returns:
//   - [][]any: one column per requested position, in request order
//   - error: wrapped errs.ErrIndexOutOfRange on an invalid position
func Collect(rows []row.Row, positions []int, limit int) ([][]any, error) {
	if limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	out := make([][]any, len(positions))
	if len(rows) == 0 || len(positions) == 0 {
		return out, nil
	}

	arity := rows[0].Arity()
	for _, p := range positions {
		if p < 0 || p >= arity {
			return nil, fmt.Errorf("%w: column position %d, row arity %d", errs.ErrIndexOutOfRange, p, arity)
		}
	}

	// Single- and double-column projections dominate pushdown workloads,
	// so they get dedicated loops without the inner position iteration.
	switch len(positions) {
	case 1:
		out[0] = collectOne(rows, positions[0])
	case 2:
		out[0], out[1] = collectTwo(rows, positions[0], positions[1])
	default:
		for j, p := range positions {
			out[j] = collectOne(rows, p)
		}
	}

	return out, nil
}

func collectOne(rows []row.Row, p int) []any {
	col := make([]any, len(rows))
	for i, r := range rows {
		col[i] = r[p]
	}

	return col
}

func collectTwo(rows []row.Row, p0, p1 int) ([]any, []any) {
	col0 := make([]any, len(rows))
	col1 := make([]any, len(rows))
	for i, r := range rows {
		col0[i] = r[p0]
		col1[i] = r[p1]
	}

	return col0, col1
}
