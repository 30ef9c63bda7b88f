package pool

import "sync"

// Slice pools for efficient reuse of typed slices.
// These pools back bit vector word storage and transient tuple scratch space.
var (
	uint64SlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
	anySlicePool = sync.Pool{
		New: func() any { return &[]any{} },
	}
)

// GetUint64Slice retrieves and resizes a uint64 slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter,
// with every element zeroed. If the pooled slice has insufficient capacity, a new
// slice will be allocated. The caller must call the returned cleanup function to
// return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []uint64: A zeroed slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	words, cleanup := pool.GetUint64Slice(64)
//	defer cleanup()
//	// Use words slice...
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		for i := range slice {
			slice[i] = 0
		}
		*ptr = slice
	}

	return slice, func() { uint64SlicePool.Put(ptr) }
}

// GetAnySlice retrieves and resizes an []any slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// Elements may hold stale values from previous use; callers must overwrite every
// position before reading. The caller must call the returned cleanup function to
// return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []any: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	scratch, cleanup := pool.GetAnySlice(len(values))
//	defer cleanup()
//	// Use scratch slice...
func GetAnySlice(size int) ([]any, func()) {
	ptr, _ := anySlicePool.Get().(*[]any)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]any, size)
		*ptr = slice
	} else {
		slice = slice[:size]
	}

	return slice, func() {
		// Drop references so pooled tuples do not pin decoded values.
		clear(*ptr)
		anySlicePool.Put(ptr)
	}
}
