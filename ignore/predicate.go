package ignore

import (
	"fmt"
	pathpkg "path"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathMatcher decides whether a path takes part in a search. Paths are
// slash-separated and relative to the search root.
type PathMatcher interface {
	MatchPath(path string) bool
}

// PathMatcherFunc adapts a function to PathMatcher.
type PathMatcherFunc func(path string) bool

func (f PathMatcherFunc) MatchPath(path string) bool {
	return f(path)
}

// RegexpMatcher matches paths containing a regular expression match.
type RegexpMatcher struct {
	Pattern string
	regex   *regexp.Regexp
}

// NewRegexpMatcher compiles pattern into a RegexpMatcher.
func NewRegexpMatcher(pattern string) (*RegexpMatcher, error) {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid path pattern %q: %w", pattern, err)
	}
	return &RegexpMatcher{Pattern: pattern, regex: regex}, nil
}

func (m *RegexpMatcher) MatchPath(path string) bool {
	return m.regex.MatchString(path)
}

// GlobMatcher matches paths against a doublestar glob such as "**/*.go".
// Globs without a slash also match the base name, so "*.go" selects Go
// files at any depth.
type GlobMatcher struct {
	Pattern string
	base    bool
}

// NewGlobMatcher validates pattern and returns a GlobMatcher.
func NewGlobMatcher(pattern string) (GlobMatcher, error) {
	if !doublestar.ValidatePattern(pattern) {
		return GlobMatcher{}, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	return GlobMatcher{Pattern: pattern, base: !strings.Contains(pattern, "/")}, nil
}

func (m GlobMatcher) MatchPath(path string) bool {
	if doublestar.MatchUnvalidated(m.Pattern, path) {
		return true
	}
	if m.base {
		return doublestar.MatchUnvalidated(m.Pattern, pathpkg.Base(path))
	}
	return false
}

// Any matches a path if at least one of its matchers does. An empty Any
// matches nothing.
type Any []PathMatcher

func (a Any) MatchPath(path string) bool {
	for _, m := range a {
		if m.MatchPath(path) {
			return true
		}
	}
	return false
}

// All matches a path if every one of its matchers does.
type All []PathMatcher

func (a All) MatchPath(path string) bool {
	for _, m := range a {
		if !m.MatchPath(path) {
			return false
		}
	}
	return true
}
