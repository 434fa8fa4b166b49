package match

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// CaseMode controls how pattern text is matched against letter case.
type CaseMode int

const (
	CaseSensitive   CaseMode = iota
	CaseInsensitive          // always ignore case
	CaseSmart                // ignore case unless the pattern has an upper-case letter
)

// Options are the flags a pattern is compiled with.
type Options struct {
	Case CaseMode
	// Multiline makes "." match newlines and "^"/"$" match at line
	// boundaries, so a single occurrence may span several lines.
	Multiline bool
	// Literal quotes the pattern text before compiling it.
	Literal bool
}

// PatternError reports pattern text that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// CompilePattern compiles a single pattern with opts.
func CompilePattern(pattern string, opts Options) (*regexp.Regexp, error) {
	expr := pattern
	if opts.Literal {
		expr = regexp.QuoteMeta(pattern)
	}

	var flags string
	if ignoreCase(pattern, opts.Case) {
		flags += "i"
	}
	if opts.Multiline {
		flags += "ms"
	}
	if flags != "" {
		expr = "(?" + flags + ")" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

func ignoreCase(pattern string, mode CaseMode) bool {
	switch mode {
	case CaseInsensitive:
		return true
	case CaseSmart:
		return !strings.ContainsFunc(pattern, unicode.IsUpper)
	default:
		return false
	}
}

// Key returns a string identifying pattern compiled with opts, suitable as a
// cache key.
func (opts Options) Key(pattern string) string {
	return fmt.Sprintf("%d:%t:%t:%s", opts.Case, opts.Multiline, opts.Literal, pattern)
}
