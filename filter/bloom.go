// Package filter provides a bloom filter over pooled bit-vector storage.
//
// A Bloom answers "might this item be in the set?" with no false negatives
// and a configurable false positive rate. It stores no items and no hashes,
// only bits, so tracking millions of distinct values costs a few bits each.
//
//	bf, err := filter.NewBloom(100000, 0.01)
//	if err != nil {
//	    return err
//	}
//	defer bf.Close()
//
//	bf.AddString("customer-4711")
//	if bf.ContainsString("customer-4711") {
//	    // definitely added, or a false positive at the configured rate
//	}
//
// The bit array lives in a bitvec.Vector whose storage is pooled; Close
// releases it, and a closed filter panics on Add and Contains. Individual
// filters are not safe for concurrent mutation.
package filter

import (
	"fmt"
	"math"

	"github.com/weftdata/weft/bitvec"
	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/internal/hash"
)

// altSeed selects the second xxHash64 family for double hashing.
const altSeed = 0x9E3779B97F4A7C15

// maxBits caps a filter at 2^31 bits (256 MiB of set storage).
const maxBits = math.MaxInt32

// Bloom is a bloom filter with double-hashed probes.
//
// Each item is hashed twice; probe i sets or tests bit (h1 + i*h2) mod m.
// The zero value is not usable, construct with NewBloom.
type Bloom struct {
	bits      *bitvec.Vector
	numBits   uint64
	numHashes int
}

// NewBloom sizes a filter for an expected item count and target false
// positive rate.
//
// The bit count follows the standard sizing m = -n*ln(p)/ln(2)^2 rounded up,
// with a floor of one 64-bit word and a ceiling of 2^31 bits. The probe
// count k = m/n*ln(2) is rounded to nearest with a floor of 2.
//
// Parameters:
//   - expectedItems: Anticipated number of distinct items, must be positive
//   - fpRate: Target false positive rate, strictly between 0 and 1
//
// Returns:
//   - *Bloom: The filter with all bits clear
//   - error: errs.ErrInvalidSize if expectedItems is not positive or the
//     sizing exceeds the bit cap, errs.ErrInvalidFalsePositiveRate if fpRate
//     is out of range
func NewBloom(expectedItems int, fpRate float64) (*Bloom, error) {
	if expectedItems <= 0 {
		return nil, fmt.Errorf("%w: expected items %d, must be positive", errs.ErrInvalidSize, expectedItems)
	}
	if !(fpRate > 0 && fpRate < 1) {
		return nil, fmt.Errorf("%w: rate %v, must be strictly between 0 and 1", errs.ErrInvalidFalsePositiveRate, fpRate)
	}

	sized := math.Ceil(-float64(expectedItems) * math.Log(fpRate) / (math.Ln2 * math.Ln2))
	if sized > maxBits {
		return nil, fmt.Errorf("%w: filter needs %.0f bits, cap is %d", errs.ErrInvalidSize, sized, maxBits)
	}
	numBits := int(sized)
	if numBits < 64 {
		numBits = 64
	}

	numHashes := int(math.Round(float64(numBits) / float64(expectedItems) * math.Ln2))
	if numHashes < 2 {
		numHashes = 2
	}

	bits, err := bitvec.New(numBits)
	if err != nil {
		return nil, err
	}

	return &Bloom{
		bits:      bits,
		numBits:   uint64(numBits),
		numHashes: numHashes,
	}, nil
}

// NumBits returns the size of the bit array.
func (b *Bloom) NumBits() int {
	return int(b.numBits)
}

// NumHashes returns the number of probes per item.
func (b *Bloom) NumHashes() int {
	return b.numHashes
}

// Add records the presence of data. Adding to a closed filter panics.
func (b *Bloom) Add(data []byte) {
	b.setBits(hash.Sum64(data), hash.Sum64Seed(data, altSeed))
}

// AddString records the presence of s. Equal string and byte inputs land on
// the same bits, so Add and AddString are interchangeable per item.
func (b *Bloom) AddString(s string) {
	b.setBits(hash.Sum64String(s), hash.Sum64StringSeed(s, altSeed))
}

// Contains reports whether data may have been added. False positives occur
// at roughly the configured rate; false negatives never. Testing a closed
// filter panics.
func (b *Bloom) Contains(data []byte) bool {
	return b.testBits(hash.Sum64(data), hash.Sum64Seed(data, altSeed))
}

// ContainsString reports whether s may have been added.
func (b *Bloom) ContainsString(s string) bool {
	return b.testBits(hash.Sum64String(s), hash.Sum64StringSeed(s, altSeed))
}

// Close releases the bit-vector storage. The filter is unusable afterwards;
// a second Close returns errs.ErrClosed without releasing anything twice.
func (b *Bloom) Close() error {
	return b.bits.Close()
}

func (b *Bloom) setBits(h1, h2 uint64) {
	// Force the step odd so a zero second hash cannot pin every probe to
	// the same bit.
	h2 |= 1
	for i := 0; i < b.numHashes; i++ {
		if err := b.bits.Set(int((h1 + uint64(i)*h2) % b.numBits)); err != nil {
			panic(err)
		}
	}
}

func (b *Bloom) testBits(h1, h2 uint64) bool {
	h2 |= 1
	for i := 0; i < b.numHashes; i++ {
		if !b.bits.MustGet(int((h1 + uint64(i)*h2) % b.numBits)) {
			return false
		}
	}

	return true
}
