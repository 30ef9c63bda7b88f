// Package bitvec provides a fixed-size, bounds-checked bit vector backed by
// 64-bit words.
//
// A Vector is allocated at construction with a caller-specified bit count and
// never resizes. Storage comes from a shared pool and is returned by Close,
// so callers should pair New with a deferred Close:
//
//	v, err := bitvec.New(1024)
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//
// Every index operation validates 0 <= index < Size() and returns
// errs.ErrIndexOutOfRange on violation. Individual vectors are not safe for
// concurrent mutation; distinct vectors are independent.
package bitvec

import (
	"fmt"
	"math/bits"

	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/internal/pool"
)

const wordBits = 64

// Vector is a fixed-size bit vector. All bits start cleared.
type Vector struct {
	words   []uint64
	size    int
	cleanup func()
}

// New creates a Vector holding size bits, all cleared.
//
// The word storage is ceil(size/64) pooled uint64 words.
//
// Parameters:
//   - size: Number of bits, must be positive
//
// Returns:
//   - *Vector: The created vector
//   - error: errs.ErrInvalidSize if size is not positive
func New(size int) (*Vector, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: bit vector size %d, must be positive", errs.ErrInvalidSize, size)
	}

	wordCount := (size + wordBits - 1) / wordBits
	words, cleanup := pool.GetUint64Slice(wordCount)

	return &Vector{
		words:   words,
		size:    size,
		cleanup: cleanup,
	}, nil
}

// Size returns the number of bits in the vector.
func (v *Vector) Size() int {
	return v.size
}

// Set sets the bit at index i to 1.
func (v *Vector) Set(i int) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}

	v.words[i/wordBits] |= 1 << (uint(i) % wordBits)

	return nil
}

// Clear sets the bit at index i to 0.
func (v *Vector) Clear(i int) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}

	v.words[i/wordBits] &^= 1 << (uint(i) % wordBits)

	return nil
}

// Get returns the bit at index i.
func (v *Vector) Get(i int) (bool, error) {
	if err := v.checkIndex(i); err != nil {
		return false, err
	}

	return v.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0, nil
}

// MustGet returns the bit at index i, panicking on an invalid index or a
// closed vector. Intended for hot loops that have already validated their
// bounds; all other callers should use Get.
func (v *Vector) MustGet(i int) bool {
	ok, err := v.Get(i)
	if err != nil {
		panic(err)
	}

	return ok
}

// SetAll sets every bit in the vector to 1.
func (v *Vector) SetAll() {
	if v.words == nil {
		return
	}

	for i := range v.words {
		v.words[i] = ^uint64(0)
	}

	// Keep bits past Size() clear so Count stays exact.
	if tail := uint(v.size % wordBits); tail != 0 {
		v.words[len(v.words)-1] = (1 << tail) - 1
	}
}

// ClearAll sets every bit in the vector to 0.
func (v *Vector) ClearAll() {
	for i := range v.words {
		v.words[i] = 0
	}
}

// Count returns the number of set bits.
func (v *Vector) Count() int {
	total := 0
	for _, w := range v.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// Words returns the underlying word storage, least-significant bit first
// within each word. The returned slice is valid until Close and must not be
// modified.
func (v *Vector) Words() []uint64 {
	return v.words
}

// Close returns the word storage to the pool. The vector is unusable
// afterwards: all operations return errs.ErrClosed. Closing an already
// closed vector returns errs.ErrClosed without releasing anything twice.
func (v *Vector) Close() error {
	if v.words == nil {
		return errs.ErrClosed
	}

	v.words = nil
	v.cleanup()
	v.cleanup = nil

	return nil
}

func (v *Vector) checkIndex(i int) error {
	if v.words == nil {
		return errs.ErrClosed
	}
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: bit index %d, size %d", errs.ErrIndexOutOfRange, i, v.size)
	}

	return nil
}
