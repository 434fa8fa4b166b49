package match

import (
	"slices"
)

// Range is a half-open [Start, End) byte span inside a Match's Text.
type Range struct {
	Start int
	End   int
}

// MergeRanges returns the minimal sorted cover of ranges. Overlapping and
// touching ranges are combined, so (0,3) and (3,5) become (0,5). The input
// slice is left untouched.
func MergeRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	sorted := slices.Clone(ranges)
	slices.SortStableFunc(sorted, func(a, b Range) int {
		return a.Start - b.Start
	})

	result := []Range{sorted[0]}
	for _, current := range sorted[1:] {
		last := &result[len(result)-1]

		if current.Start <= last.End {
			if current.End > last.End {
				last.End = current.End
			}
			continue
		}
		result = append(result, current)
	}

	return result
}
