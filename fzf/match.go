// Package fzf selects paths with fzf-style search terms.
//
// A query is a whitespace-separated list of terms, all of which must hold:
//
//	foo     path contains "foo"
//	^foo    path starts with "foo"
//	foo$    path ends with "foo"
//	'foo    "foo" starts a word
//	'foo'   "foo" is a whole word
//	!foo    path does not satisfy the rest of the term
//
// Matching ignores case and uses forward slashes on every platform.
package fzf

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// Matcher deterministically matches paths against multi-term rules.
type Matcher struct {
	terms []term
}

type term struct {
	raw        string
	text       string // lower-cased core text
	negate     bool   // !foo
	anchorHead bool   // ^foo
	anchorTail bool   // foo$
	wordPrefix bool   // 'foo
	wordExact  bool   // 'foo'
}

// NewMatcher parses query. An empty query matches every path.
func NewMatcher(query string) (Matcher, error) {
	parts := strings.Fields(query)
	terms := make([]term, 0, len(parts))

	for _, p := range parts {
		t, err := parseTerm(p)
		if err != nil {
			return Matcher{}, err
		}
		terms = append(terms, t)
	}
	return Matcher{terms: terms}, nil
}

func parseTerm(p string) (term, error) {
	t := term{raw: p}

	if strings.HasPrefix(p, "!") {
		t.negate = true
		p = p[1:]
		if p == "" {
			return term{}, fmt.Errorf("empty term after negation in %q", t.raw)
		}
	}

	if strings.HasPrefix(p, "'") {
		p = p[1:]
		if p == "" {
			return term{}, fmt.Errorf("empty term after leading quote in %q", t.raw)
		}
		if strings.HasSuffix(p, "'") {
			t.wordExact = true
			p = p[:len(p)-1]
		} else {
			t.wordPrefix = true
		}
	}

	if strings.HasPrefix(p, "^") {
		t.anchorHead = true
		p = p[1:]
	}
	if strings.HasSuffix(p, "$") {
		t.anchorTail = true
		p = p[:len(p)-1]
	}
	if p == "" {
		return term{}, fmt.Errorf("empty term after stripping modifiers in %q", t.raw)
	}

	t.text = normalize(p)
	return t, nil
}

// MatchPath reports whether path satisfies every term.
func (m Matcher) MatchPath(path string) bool {
	normal := normalize(path)
	for _, t := range m.terms {
		if t.matches(normal) == t.negate {
			return false
		}
	}
	return true
}

func normalize(s string) string {
	return strings.ToLower(filepath.ToSlash(s))
}

func (t term) matches(path string) bool {
	if t.anchorHead && t.anchorTail && !(t.wordExact || t.wordPrefix) {
		return path == t.text
	}

	sub := path
	if t.anchorHead {
		if !strings.HasPrefix(path, t.text) {
			return false
		}
		sub = path[:len(t.text)]
	}
	if t.anchorTail {
		if !strings.HasSuffix(path, t.text) {
			return false
		}
		sub = path[len(path)-len(t.text):]
	}

	switch {
	case t.wordExact:
		return containsWord(sub, t.text, true)
	case t.wordPrefix:
		return containsWord(sub, t.text, false)
	default:
		return strings.Contains(sub, t.text)
	}
}

// containsWord reports whether needle occurs in s with a word boundary on its
// left, and also on its right when both is set.
func containsWord(s, needle string, both bool) bool {
	for start := 0; start <= len(s)-len(needle); {
		rel := strings.Index(s[start:], needle)
		if rel < 0 {
			break
		}
		idx := start + rel

		leftOK := idx == 0 || !isWordChar(rune(s[idx-1]))
		rightOK := !both || idx+len(needle) == len(s) || !isWordChar(rune(s[idx+len(needle)]))
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
	return false
}

// crude word-char definition: Unicode letter or digit or underscore.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
