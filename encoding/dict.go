package encoding

import (
	"fmt"

	"github.com/weftdata/weft/errs"
)

// DictEncode compresses data into dictionary form: a table of unique values
// in first-occurrence order plus one dictionary index per input element.
//
// Lookup is a hash map, so encoding stays O(n) average regardless of
// cardinality. For floats the map follows IEEE-754 equality: a NaN key never
// matches, so every NaN occurrence gets its own dictionary slot, and decoding
// reproduces the original bit patterns.
//
// Empty input yields empty outputs.
//
// Parameters:
//   - data: Values to encode, in row order
//
// Returns:
//   - []T: Unique values, ordered by first occurrence
//   - []uint32: Dictionary index for every input element
func DictEncode[T comparable](data []T) ([]T, []uint32) {
	if len(data) == 0 {
		return []T{}, []uint32{}
	}

	dict := make([]T, 0, 8)
	indices := make([]uint32, len(data))
	seen := make(map[T]uint32, 8)

	for i, v := range data {
		idx, ok := seen[v]
		if !ok {
			idx = uint32(len(dict)) //nolint:gosec
			seen[v] = idx
			dict = append(dict, v)
		}
		indices[i] = idx
	}

	return dict, indices
}

// DictEncodeBytes is DictEncode for byte-slice elements, which cannot key a
// map directly. Lookup uses a string-keyed map; the Go compiler elides the
// []byte-to-string copy on map access, keeping encoding allocation-light. The
// returned dictionary aliases the input slices.
func DictEncodeBytes(data [][]byte) ([][]byte, []uint32) {
	if len(data) == 0 {
		return [][]byte{}, []uint32{}
	}

	dict := make([][]byte, 0, 8)
	indices := make([]uint32, len(data))
	seen := make(map[string]uint32, 8)

	for i, v := range data {
		idx, ok := seen[string(v)]
		if !ok {
			idx = uint32(len(dict)) //nolint:gosec
			seen[string(v)] = idx
			dict = append(dict, v)
		}
		indices[i] = idx
	}

	return dict, indices
}

// DictDecode expands dictionary form back into the original sequence:
// element i is dict[indices[i]].
//
// Every index is validated against the dictionary size before any output is
// allocated, so an out-of-range index can never yield a partial result.
//
// Parameters:
//   - dict: Unique values, ordered by first occurrence
//   - indices: Dictionary index for every output element
//
// Returns:
//   - []T: The reconstructed sequence
//   - error: errs.ErrIndexOutOfRange citing the first offending index and the
//     dictionary size
func DictDecode[T any](dict []T, indices []uint32) ([]T, error) {
	size := uint32(len(dict)) //nolint:gosec
	for i, idx := range indices {
		if idx >= size {
			return nil, fmt.Errorf("%w: dictionary index %d at position %d, dictionary size %d",
				errs.ErrIndexOutOfRange, idx, i, len(dict))
		}
	}

	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = dict[idx]
	}

	return out, nil
}
