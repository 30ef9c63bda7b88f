package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 of the given string.
func Sum64String(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum64Seed computes the xxHash64 of the given bytes with a non-default seed.
// Distinct seeds yield independent hash families, which the bloom filter uses
// for double hashing.
func Sum64Seed(data []byte, seed uint64) uint64 {
	var d xxhash.Digest
	d.ResetWithSeed(seed)
	_, _ = d.Write(data)

	return d.Sum64()
}

// Sum64StringSeed computes the xxHash64 of the given string with a
// non-default seed. Equal bytes and string inputs hash identically.
func Sum64StringSeed(data string, seed uint64) uint64 {
	var d xxhash.Digest
	d.ResetWithSeed(seed)
	_, _ = d.WriteString(data)

	return d.Sum64()
}
