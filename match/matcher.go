package match

import (
	"regexp"
)

// Matcher finds lines on which every one of its patterns matches.
//
// The first pattern runs over the whole text and decides which lines are
// candidates. Every other pattern must then match somewhere on the candidate
// line itself, in any order, for the line to be kept.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher returns a Matcher over already compiled patterns.
func NewMatcher(patterns ...*regexp.Regexp) *Matcher {
	return &Matcher{patterns: patterns}
}

// Compile compiles every pattern with opts. The first pattern that fails to
// compile is reported as a *PatternError.
func Compile(patterns []string, opts Options) (*Matcher, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := CompilePattern(p, opts)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return NewMatcher(compiled...), nil
}

// Match returns the hits for the file at path with the given content.
func (m *Matcher) Match(path, text string) []Match {
	if len(m.patterns) == 0 {
		return nil
	}

	var out []Match
	var current *Match

	flush := func() {
		if current == nil {
			return
		}
		if hit, ok := m.refine(*current); ok {
			out = append(out, hit)
		}
		current = nil
	}

	for hit := range Lines(text, m.patterns[0]) {
		if current != nil && current.Line == hit.Line {
			// a multi-line occurrence may own a longer span than an
			// earlier occurrence that starts on the same line
			if len(hit.Text) > len(current.Text) {
				current.Text = hit.Text
			}
			current.Ranges = append(current.Ranges, hit.Ranges...)
			continue
		}
		flush()
		current = &Match{
			Path:   path,
			Line:   hit.Line,
			Text:   hit.Text,
			Ranges: hit.Ranges,
		}
	}
	flush()

	return out
}

// refine applies the remaining patterns to a candidate and merges ranges.
func (m *Matcher) refine(candidate Match) (Match, bool) {
	ranges := candidate.Ranges
	for _, re := range m.patterns[1:] {
		locs := re.FindAllStringIndex(candidate.Text, -1)
		if locs == nil {
			return Match{}, false
		}
		for _, loc := range locs {
			if loc[0] == loc[1] {
				continue
			}
			ranges = append(ranges, Range{Start: loc[0], End: loc[1]})
		}
	}
	candidate.Ranges = MergeRanges(ranges)
	return candidate, true
}
