package session

import (
	"regexp"

	"github.com/hayeah/nirw/match"
)

// Field selects what a filter or completion looks at.
type Field int

const (
	FieldText Field = iota // the matched line
	FieldPath              // the file path
)

func (f Field) String() string {
	if f == FieldPath {
		return "path"
	}
	return "text"
}

// Mode selects how filter or completion text is interpreted.
type Mode int

const (
	ModeLiteral Mode = iota // plain substring
	ModeRegex               // regular expression
)

func (m Mode) String() string {
	if m == ModeRegex {
		return "regex"
	}
	return "literal"
}

// FilterSpec is a refinement predicate over the live results.
type FilterSpec struct {
	Field  Field
	Mode   Mode
	Negate bool
}

// Filter narrows the live results with spec and text. Positive text filters
// also highlight what they matched. When nothing would change, ErrUnchanged
// is returned and no undo entry is recorded.
func (s *Session) Filter(spec FilterSpec, text string) ([]match.Match, error) {
	opts := s.opts
	opts.Literal = spec.Mode == ModeLiteral

	re, err := s.compile(text, opts)
	if err != nil {
		return s.results, err
	}

	filtered := ApplyFilter(s.results, re, spec)
	if match.EqualLists(filtered, s.results) {
		return s.results, ErrUnchanged
	}

	s.install(filtered)
	s.Logger.Debug("filter",
		"field", spec.Field,
		"mode", spec.Mode,
		"negate", spec.Negate,
		"text", text,
		"results", len(filtered),
		"depth", len(s.history))
	return filtered, nil
}

// ApplyFilter returns the matches of list that satisfy spec under re, in
// their original order. list is not modified.
func ApplyFilter(list []match.Match, re *regexp.Regexp, spec FilterSpec) []match.Match {
	out := make([]match.Match, 0, len(list))

	for _, m := range list {
		subject := m.Text
		if spec.Field == FieldPath {
			subject = m.Path
		}

		if spec.Negate || spec.Field == FieldPath {
			if re.MatchString(subject) != spec.Negate {
				out = append(out, m)
			}
			continue
		}

		locs := re.FindAllStringIndex(subject, -1)
		if locs == nil {
			continue
		}
		extra := make([]match.Range, 0, len(locs))
		for _, loc := range locs {
			if loc[0] < loc[1] {
				extra = append(extra, match.Range{Start: loc[0], End: loc[1]})
			}
		}
		out = append(out, m.WithRanges(extra...))
	}

	return out
}
