package session

import (
	"maps"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/hayeah/nirw/match"
)

// delimiters end a completion token, along with any whitespace.
const delimiters = "~!@#$%^&*()[]{}<>,.\\/|+-=;:?\"'`"

// Complete returns the sorted, distinct continuations of partial found in
// the selected field of the live results. A regex partial that does not
// compile yields no completions.
func (s *Session) Complete(partial string, field Field, mode Mode) []string {
	if partial == "" {
		return nil
	}

	opts := s.opts
	opts.Literal = mode == ModeLiteral
	opts.Multiline = false

	re, err := s.cache.Compile(partial, opts)
	if err != nil {
		return nil
	}
	return Completions(s.results, re, partial, field)
}

// Completions scans list for occurrences of re in field and returns partial
// extended by the text following each occurrence, up to the next delimiter.
func Completions(list []match.Match, re *regexp.Regexp, partial string, field Field) []string {
	set := make(map[string]struct{})

	for _, m := range list {
		subject := m.Text
		if field == FieldPath {
			subject = m.Path
		}

		for _, loc := range re.FindAllStringIndex(subject, -1) {
			rest := subject[loc[1]:]
			if end := strings.IndexFunc(rest, isDelimiter); end >= 0 {
				rest = rest[:end]
			}
			if rest != "" {
				set[partial+rest] = struct{}{}
			}
		}
	}

	return slices.Sorted(maps.Keys(set))
}

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(delimiters, r)
}
