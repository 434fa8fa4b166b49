package match

import (
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	assert := assert.New(t)

	text := "alpha\nbeta foo\ngamma\nfoo foo\n"
	hits := slices.Collect(Lines(text, regexp.MustCompile("foo")))

	assert.Equal([]LineHit{
		{Line: 1, Text: "beta foo", Ranges: []Range{{5, 8}}},
		{Line: 3, Text: "foo foo", Ranges: []Range{{0, 3}}},
		{Line: 3, Text: "foo foo", Ranges: []Range{{4, 7}}},
	}, hits)
}

func TestLinesEdges(t *testing.T) {
	assert := assert.New(t)

	// no newline before the first match, none after the last
	hits := slices.Collect(Lines("foo", regexp.MustCompile("o+")))
	assert.Equal([]LineHit{{Line: 0, Text: "foo", Ranges: []Range{{1, 3}}}}, hits)

	// zero-width occurrences are skipped
	hits = slices.Collect(Lines("abc\n", regexp.MustCompile("x*")))
	assert.Empty(hits)

	// stops early when the consumer does
	count := 0
	for range Lines("a\na\na\n", regexp.MustCompile("a")) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestLinesMultiline(t *testing.T) {
	assert := assert.New(t)

	re, err := CompilePattern(`begin.*?end`, Options{Multiline: true})
	assert.NoError(err)

	text := "x\nsay begin\nmiddle\nend here\ny"
	hits := slices.Collect(Lines(text, re))
	if assert.Len(hits, 1) {
		assert.Equal(1, hits[0].Line)
		assert.Equal("say begin\nmiddle\nend here", hits[0].Text)
		assert.Equal([]Range{{4, 20}}, hits[0].Ranges)
	}
}

func TestMatcherConjunctive(t *testing.T) {
	assert := assert.New(t)

	m, err := Compile([]string{"foo", "bar"}, Options{})
	assert.NoError(err)

	text := "bar and foo\nonly foo\nnothing\n"
	hits := m.Match("a.txt", text)

	assert.Equal([]Match{{
		Path:   "a.txt",
		Line:   0,
		Text:   "bar and foo",
		Ranges: []Range{{0, 3}, {8, 11}},
	}}, hits)
}

func TestMatcherCoalescesSameLine(t *testing.T) {
	assert := assert.New(t)

	m, err := Compile([]string{"a"}, Options{})
	assert.NoError(err)

	hits := m.Match("x", "aab a\nb\n")
	assert.Equal([]Match{{
		Path:   "x",
		Line:   0,
		Text:   "aab a",
		Ranges: []Range{{0, 2}, {4, 5}},
	}}, hits)
}

func TestMatcherOverlappingTerms(t *testing.T) {
	assert := assert.New(t)

	m, err := Compile([]string{"foob", "obar"}, Options{})
	assert.NoError(err)

	hits := m.Match("x", "a foobar z")
	if assert.Len(hits, 1) {
		assert.Equal([]Range{{2, 8}}, hits[0].Ranges)
	}
}

func TestMatcherZeroWidthSecondaryPattern(t *testing.T) {
	assert := assert.New(t)

	m, err := Compile([]string{"foo", `\bfoo\b`, "^"}, Options{})
	assert.NoError(err)

	hits := m.Match("x", "the foo line")
	if assert.Len(hits, 1) {
		assert.Equal([]Range{{4, 7}}, hits[0].Ranges)
	}
}

func TestCompileOptions(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		name    string
		pattern string
		opts    Options
		text    string
		want    bool
	}{
		{"sensitive", "Foo", Options{}, "foo", false},
		{"insensitive", "Foo", Options{Case: CaseInsensitive}, "foo", true},
		{"smart lower", "foo", Options{Case: CaseSmart}, "FOO", true},
		{"smart upper", "Foo", Options{Case: CaseSmart}, "foo", false},
		{"literal", "a.c", Options{Literal: true}, "abc", false},
		{"regex", "a.c", Options{}, "abc", true},
		{"dot stops at newline", "a.c", Options{}, "a\nc", false},
		{"multiline dot", "a.c", Options{Multiline: true}, "a\nc", true},
		{"multiline anchor", "^c", Options{Multiline: true}, "a\nc", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			re, err := CompilePattern(tc.pattern, tc.opts)
			if assert.NoError(err) {
				assert.Equal(tc.want, re.MatchString(tc.text))
			}
		})
	}

	_, err := Compile([]string{"ok", "bad("}, Options{})
	var perr *PatternError
	if assert.ErrorAs(err, &perr) {
		assert.Equal("bad(", perr.Pattern)
	}
}

func TestMatchAccessors(t *testing.T) {
	assert := assert.New(t)

	m := Match{Path: "p", Line: 4, Text: "héllo wörld", Ranges: []Range{{7, 13}}}
	assert.Equal(5, m.LineNumber())
	assert.Equal(7, m.Column())

	extended := m.WithRanges(Range{0, 2}, Range{13, 14})
	assert.Equal([]Range{{0, 2}, {7, 14}}, extended.Ranges)
	assert.Equal([]Range{{7, 13}}, m.Ranges)
	assert.False(m.Equal(extended))
	assert.True(m.Equal(m.WithRanges()))
}
