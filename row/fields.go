package row

import (
	"fmt"

	"github.com/weftdata/weft/errs"
)

// ExtractFields projects named fields out of a key-value record into a tuple.
//
// The result always has exactly len(names) fields, in name order; absent keys
// yield nil rather than an error, so a caller can project a fixed schema over
// records with missing fields. The record must be a mapping: map[string]any
// (the usual shape from structured decoders) or map[any]any (produced by
// generic decoders when keys are heterogeneous).
//
// Parameters:
//   - record: The mapping to project from
//   - names: Field names, in output order
//
// Returns:
//   - Row: One value per name, nil for absent keys
//   - error: errs.ErrNotAMapping when record is not key-value shaped
func ExtractFields(record any, names []string) (Row, error) {
	switch rec := record.(type) {
	case map[string]any:
		out := make(Row, len(names))
		for i, name := range names {
			out[i] = rec[name]
		}

		return out, nil
	case map[any]any:
		out := make(Row, len(names))
		for i, name := range names {
			if v, ok := rec[name]; ok {
				out[i] = v
			}
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: got %T", errs.ErrNotAMapping, record)
	}
}
