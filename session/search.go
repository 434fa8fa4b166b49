package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hayeah/nirw/ignore"
	"github.com/hayeah/nirw/internal/textfile"
	"github.com/hayeah/nirw/match"
)

// SearchOptions describe a new search.
type SearchOptions struct {
	Root    string
	Pattern match.Options

	Include   ignore.PathMatcher
	Exclude   ignore.PathMatcher
	Hidden    bool
	GitIgnore bool

	// OnFile is called before each file is read. It runs on the scanning
	// goroutine.
	OnFile func(path string)
}

// Outcome is the result of scanning a tree.
type Outcome struct {
	Matches    []match.Match
	FileErrors []*FileReadError
	Files      int  // number of files read
	Canceled   bool // the scan stopped early; Matches is partial
	Options    match.Options
}

// StartSearch scans the tree described by opts and installs the hits as the
// live result list, saving the previous list for Undo. The new list is
// installed even when it is empty.
//
// With no patterns nothing is scanned or installed. If ctx is canceled the
// partial Outcome is returned along with ctx's error, and the session is
// left exactly as it was.
func (s *Session) StartSearch(ctx context.Context, patterns []string, opts SearchOptions) (Outcome, error) {
	out, err := s.Scan(ctx, patterns, opts)
	if err != nil || len(patterns) == 0 {
		return out, err
	}
	s.Install(out)
	return out, nil
}

// Install makes a completed scan's matches the live result list.
func (s *Session) Install(out Outcome) {
	s.install(out.Matches)
	s.opts = out.Options
	s.Logger.Debug("install", "results", len(out.Matches), "depth", len(s.history))
}

// Scan runs a search without touching the session, so it may run off the
// control loop. Pattern errors are *InvalidPatternError, a bad root is a
// *PathError. Unreadable files are collected in Outcome.FileErrors.
func (s *Session) Scan(ctx context.Context, patterns []string, opts SearchOptions) (Outcome, error) {
	out := Outcome{Options: opts.Pattern}

	matcher, err := match.Compile(patterns, opts.Pattern)
	if err != nil {
		return out, invalidPattern(err)
	}

	if err := checkRoot(opts.Root); err != nil {
		return out, err
	}

	if len(patterns) == 0 {
		return out, nil
	}

	walker := &ignore.Walker{
		Include:   opts.Include,
		Exclude:   opts.Exclude,
		Hidden:    opts.Hidden,
		GitIgnore: opts.GitIgnore,
		OnError: func(path string, err error) {
			out.FileErrors = append(out.FileErrors, &FileReadError{Path: path, Err: err})
		},
	}

	err = walker.WalkDir(ctx, opts.Root, func(path string) error {
		if opts.OnFile != nil {
			opts.OnFile(path)
		}

		text, err := textfile.Read(path)
		if err != nil {
			s.Logger.Debug("skip file", "path", path, "err", err)
			out.FileErrors = append(out.FileErrors, &FileReadError{Path: path, Err: err})
			return nil
		}

		out.Files++
		out.Matches = append(out.Matches, matcher.Match(path, text)...)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			out.Canceled = true
			s.Logger.Info("search canceled", "files", out.Files, "results", len(out.Matches))
			return out, err
		}
		return out, fmt.Errorf("failed to walk %s: %w", opts.Root, err)
	}

	s.Logger.Info("search done",
		"patterns", len(patterns),
		"files", out.Files,
		"results", len(out.Matches),
		"errors", len(out.FileErrors))
	return out, nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return &PathError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return &PathError{Path: root, Err: ErrNotDir}
	}
	return nil
}
