package project

import (
	"fmt"
	"unicode/utf8"
)

// MinDisplayWidth is the narrowest column width reported by DisplayWidth,
// matching the minimum used by downstream table formatting.
const MinDisplayWidth = 4

// DisplayWidth returns the maximum rendered width in runes among the
// non-nil values, with a floor of MinDisplayWidth. Nil values are skipped,
// not rendered.
func DisplayWidth(values []any) int {
	width := MinDisplayWidth
	for _, v := range values {
		if v == nil {
			continue
		}

		if n := utf8.RuneCountInString(fmt.Sprint(v)); n > width {
			width = n
		}
	}

	return width
}
