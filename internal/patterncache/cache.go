// Package patterncache memoizes compiled patterns. Filters and completion
// requests recompile the same few pattern texts over and over while the user
// types, so recently used regexps are kept around.
package patterncache

import (
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hayeah/nirw/match"
)

// DefaultSize is the number of compiled patterns kept by New.
const DefaultSize = 256

// Cache is an LRU of compiled patterns keyed by pattern text and options.
type Cache struct {
	cache *lru.Cache[string, *regexp.Regexp]
}

// New creates a cache holding up to size compiled patterns.
func New(size int) (*Cache, error) {
	c, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		return nil, err
	}
	return &Cache{cache: c}, nil
}

// Compile returns the compiled form of pattern under opts, compiling and
// remembering it on a miss. Compile errors are returned as *match.PatternError
// and are not cached.
func (c *Cache) Compile(pattern string, opts match.Options) (*regexp.Regexp, error) {
	key := opts.Key(pattern)
	if re, ok := c.cache.Get(key); ok {
		return re, nil
	}

	re, err := match.CompilePattern(pattern, opts)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, re)
	return re, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.cache.Len()
}
