package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weftdata/weft/errs"
)

func TestRLEEncode_CanonicalRuns(t *testing.T) {
	values, lengths := RLEEncode([]int32{1, 1, 1, 2, 2, 3, 3, 3, 3})
	require.Equal(t, []int32{1, 2, 3}, values)
	require.Equal(t, []uint32{3, 2, 4}, lengths)
}

func TestRLEEncode_MonthLengths(t *testing.T) {
	// Days per month: July/August and December/January are the only adjacent
	// equal pairs, and only July/August fall inside a single year.
	months := []int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	values, lengths := RLEEncode(months)
	require.Equal(t, []int64{31, 28, 31, 30, 31, 30, 31, 30, 31, 30, 31}, values)
	require.Equal(t, []uint32{1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1}, lengths)

	decoded, err := RLEDecode(values, lengths)
	require.NoError(t, err)
	require.Equal(t, months, decoded)
}

func TestRLEEncode_Empty(t *testing.T) {
	values, lengths := RLEEncode([]float64{})
	require.Empty(t, values)
	require.Empty(t, lengths)

	decoded, err := RLEDecode(values, lengths)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestRLEEncode_SingleElement(t *testing.T) {
	values, lengths := RLEEncode([]int8{7})
	require.Equal(t, []int8{7}, values)
	require.Equal(t, []uint32{1}, lengths)
}

func TestRLEEncode_AllDistinct(t *testing.T) {
	// Adjacent distinct single elements never merge.
	values, lengths := RLEEncode([]int16{5, 4, 3, 2, 1})
	require.Equal(t, []int16{5, 4, 3, 2, 1}, values)
	require.Equal(t, []uint32{1, 1, 1, 1, 1}, lengths)
}

func TestRLEEncode_AllEqual(t *testing.T) {
	data := make([]int64, 1000)
	for i := range data {
		data[i] = 42
	}

	values, lengths := RLEEncode(data)
	require.Equal(t, []int64{42}, values)
	require.Equal(t, []uint32{1000}, lengths)
}

func TestRLEEncode_NoZeroLengthRuns(t *testing.T) {
	values, lengths := RLEEncode([]int32{9, 9, 8, 8, 8, 7})
	require.Len(t, lengths, len(values))
	for i, l := range lengths {
		require.Positive(t, l, "run %d", i)
	}
}

func TestRLEEncode_NaNBreaksRuns(t *testing.T) {
	nan := math.NaN()
	values, lengths := RLEEncode([]float64{nan, nan, nan})

	// NaN != NaN under IEEE-754 equality, so every NaN opens its own run.
	require.Len(t, values, 3)
	require.Equal(t, []uint32{1, 1, 1}, lengths)
	for _, v := range values {
		require.True(t, math.IsNaN(v))
	}
}

func TestRLEEncode_Strings(t *testing.T) {
	values, lengths := RLEEncode([]string{"a", "a", "b", "", "", ""})
	require.Equal(t, []string{"a", "b", ""}, values)
	require.Equal(t, []uint32{2, 1, 3}, lengths)
}

func TestRLEEncodeBytes(t *testing.T) {
	data := [][]byte{{1, 2}, {1, 2}, {3}, nil, nil}
	values, lengths := RLEEncodeBytes(data)
	require.Equal(t, [][]byte{{1, 2}, {3}, nil}, values)
	require.Equal(t, []uint32{2, 1, 2}, lengths)

	decoded, err := RLEDecode(values, lengths)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestRLEDecode_MismatchedLengths(t *testing.T) {
	_, err := RLEDecode([]int32{1, 2}, []uint32{3})
	require.ErrorIs(t, err, errs.ErrMismatchedLengths)
	require.ErrorContains(t, err, "2 values, 1 lengths")
}

func TestRLERoundTrip(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		data := []int32{1, 1, 2, 3, 3, 3, 2, 2, 1}
		values, lengths := RLEEncode(data)
		decoded, err := RLEDecode(values, lengths)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	})

	t.Run("float32", func(t *testing.T) {
		data := []float32{1.5, 1.5, -0.25, 0, 0, 0}
		values, lengths := RLEEncode(data)
		decoded, err := RLEDecode(values, lengths)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	})

	t.Run("strings preserve duplicates across runs", func(t *testing.T) {
		data := []string{"x", "y", "x", "x", "y"}
		values, lengths := RLEEncode(data)
		require.Equal(t, []string{"x", "y", "x", "y"}, values)

		decoded, err := RLEDecode(values, lengths)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	})
}

func TestRLERoundTrip_SumOfLengthsIsRowCount(t *testing.T) {
	data := []int64{5, 5, 5, 9, 9, 1, 5, 5}
	_, lengths := RLEEncode(data)

	total := uint32(0)
	for _, l := range lengths {
		total += l
	}
	require.Equal(t, uint32(len(data)), total)
}

func BenchmarkRLEEncode_Int64(b *testing.B) {
	data := make([]int64, 10000)
	for i := range data {
		data[i] = int64(i / 100) // 100-element runs
	}
	b.ResetTimer()
	for b.Loop() {
		RLEEncode(data)
	}
}

func BenchmarkRLEDecode_Int64(b *testing.B) {
	data := make([]int64, 10000)
	for i := range data {
		data[i] = int64(i / 100)
	}
	values, lengths := RLEEncode(data)
	b.ResetTimer()
	for b.Loop() {
		if _, err := RLEDecode(values, lengths); err != nil {
			b.Fatal(err)
		}
	}
}
