// Package match finds lines that satisfy every pattern of a search and
// records where on each line the patterns hit.
package match

import (
	"slices"
	"unicode/utf8"
)

// Match is one search hit. Match values are treated as immutable: methods
// that change ranges return a new Match and never write to the receiver's
// backing array, so result lists can share Matches safely.
type Match struct {
	Path   string  // path as discovered during traversal
	Line   int     // 0-based index of the line the hit begins on
	Text   string  // the owning line, or lines in multi-line mode
	Ranges []Range // sorted, merged highlight spans into Text
}

// LineNumber returns the 1-based line number used for display and editors.
func (m Match) LineNumber() int {
	return m.Line + 1
}

// Column returns the 1-based rune column of the first highlighted range.
func (m Match) Column() int {
	if len(m.Ranges) == 0 {
		return 1
	}
	start := min(m.Ranges[0].Start, len(m.Text))
	return utf8.RuneCountInString(m.Text[:start]) + 1
}

// WithRanges returns a copy of m whose ranges also cover extra.
func (m Match) WithRanges(extra ...Range) Match {
	if len(extra) == 0 {
		return m
	}
	all := make([]Range, 0, len(m.Ranges)+len(extra))
	all = append(all, m.Ranges...)
	all = append(all, extra...)
	m.Ranges = MergeRanges(all)
	return m
}

// Equal reports whether m and other are the same hit with the same ranges.
func (m Match) Equal(other Match) bool {
	return m.Path == other.Path &&
		m.Line == other.Line &&
		m.Text == other.Text &&
		slices.Equal(m.Ranges, other.Ranges)
}

// EqualLists reports whether a and b hold equal Matches in the same order.
func EqualLists(a, b []Match) bool {
	return slices.EqualFunc(a, b, Match.Equal)
}
