package match

import (
	"iter"
	"regexp"
	"strings"
)

// LineHit is a single occurrence of a pattern, expressed relative to the line
// (or lines, for a multi-line occurrence) that owns it.
type LineHit struct {
	Line   int
	Text   string
	Ranges []Range
}

// Lines yields one LineHit per non-empty occurrence of re in text, in order.
// Occurrences on the same line are yielded separately; callers merge them.
//
// Line numbers are counted incrementally between hits, so newlines after the
// last occurrence are never scanned.
func Lines(text string, re *regexp.Regexp) iter.Seq[LineHit] {
	return func(yield func(LineHit) bool) {
		line := 0
		counted := 0 // offset up to which newlines have been counted

		for _, loc := range re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if start == end {
				continue
			}

			lineStart := lineStartAt(text, start)
			lineEnd := lineEndAt(text, end)

			line += strings.Count(text[counted:lineStart], "\n")
			counted = lineStart

			hit := LineHit{
				Line:   line,
				Text:   text[lineStart:lineEnd],
				Ranges: []Range{{Start: start - lineStart, End: end - lineStart}},
			}
			if !yield(hit) {
				return
			}
		}
	}
}

// lineStartAt returns the offset just past the last newline before offset.
func lineStartAt(text string, offset int) int {
	idx := strings.LastIndexByte(text[:offset], '\n')
	if idx < 0 {
		return 0
	}
	return idx + 1
}

// lineEndAt returns the offset of the first newline at or after offset, or
// len(text) when the text does not end in one.
func lineEndAt(text string, offset int) int {
	idx := strings.IndexByte(text[offset:], '\n')
	if idx < 0 {
		return len(text)
	}
	return offset + idx
}
