package row

// DatetimeMarker is the first element of the 2-element payload array that
// denotes a point-in-time value. The second element is POSIX epoch seconds.
const DatetimeMarker = "__datetime__"

// Row is an ordered, fixed-arity tuple of decoded field values.
//
// Fields hold nil, bool, int64, uint64, float64, string, []byte, or
// time.Time. Rows are immutable by convention once decoded; callers that need
// to mutate should copy first.
type Row []any

// Arity returns the number of fields in the row.
func (r Row) Arity() int {
	return len(r)
}
