package assert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hayeah/nirw/match"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// EqualTexts checks the Text of each match, in order.
func (a *Assert) EqualTexts(want []string, got []match.Match) bool {
	a.T.Helper()
	texts := make([]string, 0, len(got))
	for _, m := range got {
		texts = append(texts, m.Text)
	}
	return a.Equal(want, texts)
}

// EqualHits checks each match rendered as "path:line:text[ranges]" with a
// 1-based line, which keeps table expectations short and readable.
func (a *Assert) EqualHits(want []string, got []match.Match) bool {
	a.T.Helper()
	return a.Equal(want, a.Hits(got))
}

// Hits renders every match with FormatHit.
func (a *Assert) Hits(list []match.Match) []string {
	hits := make([]string, 0, len(list))
	for _, m := range list {
		hits = append(hits, FormatHit(m))
	}
	return hits
}

// FormatHit renders m as "path:line:text" followed by its ranges.
func FormatHit(m match.Match) string {
	return fmt.Sprintf("%s:%d:%s%v", m.Path, m.LineNumber(), m.Text, m.Ranges)
}
