package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weftdata/weft/errs"
)

func TestNew_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"zero", 0},
		{"negative", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.size)
			require.ErrorIs(t, err, errs.ErrInvalidSize)
			require.Nil(t, v)
		})
	}
}

func TestNew_WordCount(t *testing.T) {
	tests := []struct {
		size  int
		words int
	}{
		{1, 1},
		{63, 1},
		{64, 1},
		{65, 2},
		{128, 2},
		{129, 3},
	}
	for _, tt := range tests {
		v, err := New(tt.size)
		require.NoError(t, err)
		require.Equal(t, tt.size, v.Size())
		require.Len(t, v.Words(), tt.words)
		require.NoError(t, v.Close())
	}
}

func TestVector_SetGetClear(t *testing.T) {
	v, err := New(100)
	require.NoError(t, err)
	defer v.Close()

	// All bits start cleared.
	for i := range 100 {
		bit, err := v.Get(i)
		require.NoError(t, err)
		require.False(t, bit)
	}

	require.NoError(t, v.Set(0))
	require.NoError(t, v.Set(63))
	require.NoError(t, v.Set(64))
	require.NoError(t, v.Set(99))

	for _, i := range []int{0, 63, 64, 99} {
		bit, err := v.Get(i)
		require.NoError(t, err)
		require.True(t, bit, "bit %d should be set", i)
	}

	bit, err := v.Get(1)
	require.NoError(t, err)
	require.False(t, bit)

	require.NoError(t, v.Clear(63))
	bit, err = v.Get(63)
	require.NoError(t, err)
	require.False(t, bit)

	// Clearing an already-clear bit is fine.
	require.NoError(t, v.Clear(63))
}

func TestVector_WordLayout(t *testing.T) {
	v, err := New(70)
	require.NoError(t, err)
	defer v.Close()

	require.NoError(t, v.Set(0))
	require.NoError(t, v.Set(64))

	words := v.Words()
	require.Equal(t, uint64(1), words[0]&1, "bit 0 is the least significant bit of word 0")
	require.Equal(t, uint64(1), words[1]&1, "bit 64 is the least significant bit of word 1")
}

func TestVector_Bounds(t *testing.T) {
	v, err := New(10)
	require.NoError(t, err)
	defer v.Close()

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"at size", 10},
		{"past size", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, v.Set(tt.index), errs.ErrIndexOutOfRange)
			require.ErrorIs(t, v.Clear(tt.index), errs.ErrIndexOutOfRange)
			_, err := v.Get(tt.index)
			require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
		})
	}

	// The error carries the offending index and the size.
	err = v.Set(10)
	require.ErrorContains(t, err, "10")
	require.ErrorContains(t, err, "size 10")
}

func TestVector_Count(t *testing.T) {
	v, err := New(70)
	require.NoError(t, err)
	defer v.Close()

	require.Equal(t, 0, v.Count())

	for _, i := range []int{0, 1, 64, 69} {
		require.NoError(t, v.Set(i))
	}
	require.Equal(t, 4, v.Count())

	// Setting an already-set bit does not change the count.
	require.NoError(t, v.Set(0))
	require.Equal(t, 4, v.Count())
}

func TestVector_SetAllClearAll(t *testing.T) {
	// 70 bits spans two words with a partial tail word; SetAll must not set
	// bits past Size or Count would overshoot.
	v, err := New(70)
	require.NoError(t, err)
	defer v.Close()

	v.SetAll()
	require.Equal(t, 70, v.Count())

	bit, err := v.Get(69)
	require.NoError(t, err)
	require.True(t, bit)

	v.ClearAll()
	require.Equal(t, 0, v.Count())
}

func TestVector_Close(t *testing.T) {
	v, err := New(8)
	require.NoError(t, err)

	require.NoError(t, v.Close())

	// Every operation reports closed.
	require.ErrorIs(t, v.Set(0), errs.ErrClosed)
	require.ErrorIs(t, v.Clear(0), errs.ErrClosed)
	_, err = v.Get(0)
	require.ErrorIs(t, err, errs.ErrClosed)

	// Double close does not release twice.
	require.ErrorIs(t, v.Close(), errs.ErrClosed)
}

func TestVector_MustGet(t *testing.T) {
	v, err := New(8)
	require.NoError(t, err)
	defer v.Close()

	require.NoError(t, v.Set(3))
	require.True(t, v.MustGet(3))
	require.False(t, v.MustGet(2))

	require.Panics(t, func() { v.MustGet(8) })
}

func BenchmarkVector_Set(b *testing.B) {
	v, err := New(4096)
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()

	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		_ = v.Set(i % 4096)
	}
}

func BenchmarkVector_Count(b *testing.B) {
	v, err := New(4096)
	if err != nil {
		b.Fatal(err)
	}
	defer v.Close()
	v.SetAll()

	b.ResetTimer()
	for b.Loop() {
		_ = v.Count()
	}
}
