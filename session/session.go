// Package session holds the result list of an interactive search and the
// history needed to undo every change made to it.
package session

import (
	"errors"
	"log/slog"
	"regexp"

	"github.com/hayeah/nirw/internal/patterncache"
	"github.com/hayeah/nirw/match"
)

// Session owns the live result list and the undo stack. It is not safe for
// concurrent use; the front-end's control loop is its only owner.
type Session struct {
	Logger *slog.Logger

	cache   *patterncache.Cache
	results []match.Match
	history [][]match.Match
	// pattern flags of the installed search; filters and completion reuse them
	opts match.Options
}

// New creates an empty session.
func New(logger *slog.Logger, cache *patterncache.Cache) *Session {
	return &Session{
		Logger: logger,
		cache:  cache,
	}
}

// Results returns the live result list. Callers must not modify it.
func (s *Session) Results() []match.Match {
	return s.results
}

// Len returns the number of live results.
func (s *Session) Len() int {
	return len(s.results)
}

// At returns the i-th live result (0-based).
func (s *Session) At(i int) (match.Match, bool) {
	if i < 0 || i >= len(s.results) {
		return match.Match{}, false
	}
	return s.results[i], true
}

// Depth returns the number of result lists that Undo can restore.
func (s *Session) Depth() int {
	return len(s.history)
}

// Options returns the pattern flags of the installed search.
func (s *Session) Options() match.Options {
	return s.opts
}

// install pushes the live list onto the undo stack and replaces it.
func (s *Session) install(results []match.Match) {
	s.history = append(s.history, s.results)
	s.results = results
}

// Undo restores the result list that was live before the last change.
func (s *Session) Undo() ([]match.Match, error) {
	if len(s.history) == 0 {
		return s.results, ErrNothingToUndo
	}

	last := len(s.history) - 1
	s.results = s.history[last]
	s.history[last] = nil
	s.history = s.history[:last]

	s.Logger.Debug("undo", "results", len(s.results), "depth", len(s.history))
	return s.results, nil
}

// Clear empties the live result list. The cleared list can be restored with
// Undo.
func (s *Session) Clear() {
	if len(s.results) == 0 {
		return
	}
	s.install(nil)
}

// compile compiles pattern text through the cache, reporting failures as
// *InvalidPatternError.
func (s *Session) compile(pattern string, opts match.Options) (*regexp.Regexp, error) {
	re, err := s.cache.Compile(pattern, opts)
	if err != nil {
		return nil, invalidPattern(err)
	}
	return re, nil
}

func invalidPattern(err error) error {
	var perr *match.PatternError
	if errors.As(err, &perr) {
		return &InvalidPatternError{Pattern: perr.Pattern, Err: perr.Err}
	}
	return err
}
