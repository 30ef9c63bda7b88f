package encoding

import (
	"bytes"
	"fmt"
	"math"

	"github.com/weftdata/weft/errs"
)

// RLEEncode compresses data into run-length form: one entry per maximal run
// of equal adjacent values.
//
// The scan is a single pass. A run extends while the next element compares
// equal to the run's value and closes otherwise; the final run is always
// flushed. Equality is Go's ==, which for floats follows IEEE-754: NaN never
// equals NaN, so consecutive NaNs each open a fresh run. Runs longer than
// math.MaxUint32 split into multiple entries.
//
// Empty input yields empty outputs. The invariants on the result:
// len(values) == len(lengths), no zero-length run, and the lengths sum to
// len(data).
//
// Parameters:
//   - data: Values to encode, in row order
//
// Returns:
//   - []T: One value per run
//   - []uint32: Run length for each value, same order
func RLEEncode[T comparable](data []T) ([]T, []uint32) {
	if len(data) == 0 {
		return []T{}, []uint32{}
	}

	values := make([]T, 0, 8)
	lengths := make([]uint32, 0, 8)

	current := data[0]
	count := uint32(1)

	for _, v := range data[1:] {
		if v == current && count < math.MaxUint32 {
			count++
			continue
		}

		values = append(values, current)
		lengths = append(lengths, count)
		current = v
		count = 1
	}

	values = append(values, current)
	lengths = append(lengths, count)

	return values, lengths
}

// RLEEncodeBytes is RLEEncode for byte-slice elements, which cannot use ==.
// Adjacent elements compare with bytes.Equal; the returned values alias the
// input slices.
func RLEEncodeBytes(data [][]byte) ([][]byte, []uint32) {
	if len(data) == 0 {
		return [][]byte{}, []uint32{}
	}

	values := make([][]byte, 0, 8)
	lengths := make([]uint32, 0, 8)

	current := data[0]
	count := uint32(1)

	for _, v := range data[1:] {
		if bytes.Equal(v, current) && count < math.MaxUint32 {
			count++
			continue
		}

		values = append(values, current)
		lengths = append(lengths, count)
		current = v
		count = 1
	}

	values = append(values, current)
	lengths = append(lengths, count)

	return values, lengths
}

// RLEDecode expands run-length form back into the original sequence: run i
// becomes lengths[i] repetitions of values[i], in order.
//
// The total output length is computed up front and allocated once, so a
// malformed lengths slice can never trigger repeated growth or a partial
// result.
//
// Parameters:
//   - values: One value per run
//   - lengths: Run length for each value
//
// Returns:
//   - []T: The reconstructed sequence
//   - error: errs.ErrMismatchedLengths when len(values) != len(lengths)
func RLEDecode[T any](values []T, lengths []uint32) ([]T, error) {
	if len(values) != len(lengths) {
		return nil, fmt.Errorf("%w: %d values, %d lengths", errs.ErrMismatchedLengths, len(values), len(lengths))
	}

	total := 0
	for _, l := range lengths {
		total += int(l)
	}

	out := make([]T, total)
	pos := 0
	for i, v := range values {
		for range lengths[i] {
			out[pos] = v
			pos++
		}
	}

	return out, nil
}
