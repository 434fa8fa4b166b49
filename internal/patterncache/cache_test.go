package patterncache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hayeah/nirw/match"
)

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	c, err := New(2)
	assert.NoError(err)

	a1, err := c.Compile("a.c", match.Options{})
	assert.NoError(err)
	a2, err := c.Compile("a.c", match.Options{})
	assert.NoError(err)
	assert.Same(a1, a2)

	lit, err := c.Compile("a.c", match.Options{Literal: true})
	assert.NoError(err)
	assert.NotSame(a1, lit)
	assert.False(lit.MatchString("abc"))
	assert.Equal(2, c.Len())

	_, err = c.Compile("(", match.Options{})
	var perr *match.PatternError
	assert.ErrorAs(err, &perr)
	assert.Equal(2, c.Len())

	// evicts the least recently used entry
	_, err = c.Compile("z", match.Options{})
	assert.NoError(err)
	assert.Equal(2, c.Len())
}

func TestNewRejectsBadSize(t *testing.T) {
	_, err := New(0)
	assert.Error(t, err)
}
