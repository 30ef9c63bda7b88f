package colblock

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/weftdata/weft/errs"
	"github.com/weftdata/weft/format"
)

// Estimate predicts the encoded size of one encoding scheme for a column.
//
// SectionBytes counts both sections (values plus numeric) before compression,
// so it is exact for CompressionNone and an upper bound otherwise. Entries is
// the values-section entry count the scheme would produce: runs for RLE,
// distinct values for dictionary encoding.
type Estimate struct {
	// Encoding is the scheme this estimate describes.
	Encoding format.EncodingType
	// SectionBytes is the predicted uncompressed byte count of both sections.
	SectionBytes int
	// Entries is the predicted values-section entry count.
	Entries int
	// Ratio is SectionBytes divided by the raw column byte size.
	// Zero for empty columns, below 1.0 when the scheme saves space.
	Ratio float64
}

// String returns a one-line summary of the estimate.
func (e Estimate) String() string {
	return fmt.Sprintf("Estimate{Encoding: %s, SectionBytes: %d, Entries: %d, Ratio: %.3f}",
		e.Encoding, e.SectionBytes, e.Entries, e.Ratio)
}

// Advice is the outcome of SuggestEncoding: the cheapest scheme for a column
// plus every candidate for comparison.
type Advice struct {
	// Best is the estimate with the smallest SectionBytes.
	// Ties go to run-length encoding, the cheaper scheme to decode.
	Best Estimate
	// Candidates holds every scheme's estimate, smallest first.
	Candidates []Estimate
	// RowCount is the number of column values examined.
	RowCount int
}

// String returns a one-line summary of the advice.
func (a *Advice) String() string {
	return fmt.Sprintf("Advice{Best: %s, Candidates: %d, RowCount: %d}",
		a.Best.Encoding, len(a.Candidates), a.RowCount)
}

// SuggestEncoding scans a column and predicts which encoding scheme yields
// the smallest block.
//
// The scan is a single pass that counts maximal runs of equal adjacent
// values and distinct values, then prices each scheme with the exact section
// layout Encode uses: run-length encoding stores one values entry plus a
// uint32 length per run, dictionary encoding stores one values entry per
// distinct value plus a uint32 index per row. Compression is not modeled, so
// sizes are exact for CompressionNone and upper bounds for the compressing
// codecs.
//
// Sorted columns with long runs favor RLE; high-repetition unsorted columns
// favor dictionary encoding. Feed the winner to Encode via WithEncoding.
//
// Parameters:
//   - data: typed column slice, same element types Encode accepts
//
// Returns:
//   - *Advice: best scheme and all candidate estimates
//   - error: errs.ErrUnsupportedType for element types outside the allow-list
//
// Example:
//
//	advice, err := colblock.SuggestEncoding(statuses)
//	if err != nil {
//	    return err
//	}
//	block, err := colblock.Encode(statuses, colblock.WithEncoding(advice.Best.Encoding))
func SuggestEncoding(data any) (*Advice, error) {
	st, err := scanColumn(data)
	if err != nil {
		return nil, err
	}

	candidates := []Estimate{
		newEstimate(format.EncodingRLE, st.runBytes+st.runs*4, st.runs, st.rawBytes),
		newEstimate(format.EncodingDict, st.distinctBytes+st.rows*4, st.distinct, st.rawBytes),
	}
	slices.SortStableFunc(candidates, func(a, b Estimate) int {
		return cmp.Compare(a.SectionBytes, b.SectionBytes)
	})

	return &Advice{
		Best:       candidates[0],
		Candidates: candidates,
		RowCount:   st.rows,
	}, nil
}

// SuggestEach runs SuggestEncoding over a set of columns, one advice per
// column. Useful when encoding a whole frame of columns and each should get
// its own scheme.
func SuggestEach(columns []any) ([]*Advice, error) {
	advices := make([]*Advice, len(columns))
	for i, col := range columns {
		advice, err := SuggestEncoding(col)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		advices[i] = advice
	}

	return advices, nil
}

func newEstimate(scheme format.EncodingType, sectionBytes, entries, rawBytes int) Estimate {
	est := Estimate{
		Encoding:     scheme,
		SectionBytes: sectionBytes,
		Entries:      entries,
	}
	if rawBytes > 0 {
		est.Ratio = float64(sectionBytes) / float64(rawBytes)
	}

	return est
}

// columnStats captures the single-pass measurements that drive the estimates.
type columnStats struct {
	rows          int
	runs          int
	distinct      int
	rawBytes      int // values section holding every row verbatim
	runBytes      int // values section holding one entry per run
	distinctBytes int // values section holding one entry per distinct value
}

func scanColumn(data any) (columnStats, error) {
	switch d := data.(type) {
	case []int8:
		return scanFixed(d, 1), nil
	case []int16:
		return scanFixed(d, 2), nil
	case []int32:
		return scanFixed(d, 4), nil
	case []int64:
		return scanFixed(d, 8), nil
	case []float32:
		return scanFixed(d, 4), nil
	case []float64:
		return scanFixed(d, 8), nil
	case []string:
		return scanStrings(d), nil
	case [][]byte:
		return scanBytes(d), nil
	default:
		return columnStats{}, fmt.Errorf("%w: suggest encoding: %T is not a supported column element type", errs.ErrUnsupportedType, data)
	}
}

func scanFixed[T comparable](data []T, elemSize int) columnStats {
	st := columnStats{rows: len(data)}
	if len(data) == 0 {
		return st
	}

	seen := make(map[T]struct{}, 16)
	st.runs = 1
	current := data[0]
	seen[current] = struct{}{}

	for _, v := range data[1:] {
		if v != current {
			st.runs++
			current = v
		}
		seen[v] = struct{}{}
	}

	st.distinct = len(seen)
	st.rawBytes = len(data) * elemSize
	st.runBytes = st.runs * elemSize
	st.distinctBytes = st.distinct * elemSize

	return st
}

func scanStrings(data []string) columnStats {
	st := columnStats{rows: len(data)}
	if len(data) == 0 {
		return st
	}

	seen := make(map[string]struct{}, 16)
	st.runs = 1
	current := data[0]
	st.runBytes = varEntryBytes(len(current))

	for i, v := range data {
		st.rawBytes += varEntryBytes(len(v))
		if i > 0 && v != current {
			st.runs++
			current = v
			st.runBytes += varEntryBytes(len(v))
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			st.distinctBytes += varEntryBytes(len(v))
		}
	}

	st.distinct = len(seen)

	return st
}

func scanBytes(data [][]byte) columnStats {
	st := columnStats{rows: len(data)}
	if len(data) == 0 {
		return st
	}

	seen := make(map[string]struct{}, 16)
	st.runs = 1
	current := data[0]
	st.runBytes = varEntryBytes(len(current))

	for i, v := range data {
		st.rawBytes += varEntryBytes(len(v))
		if i > 0 && !bytes.Equal(v, current) {
			st.runs++
			current = v
			st.runBytes += varEntryBytes(len(v))
		}
		if _, ok := seen[string(v)]; !ok {
			seen[string(v)] = struct{}{}
			st.distinctBytes += varEntryBytes(len(v))
		}
	}

	st.distinct = len(seen)

	return st
}

// varEntryBytes is the serialized size of one variable-width values entry:
// the uvarint length prefix plus the payload.
func varEntryBytes(payloadLen int) int {
	var scratch [binary.MaxVarintLen64]byte

	return binary.PutUvarint(scratch[:], uint64(payloadLen)) + payloadLen
}
