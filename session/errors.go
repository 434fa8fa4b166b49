package session

import (
	"errors"
	"fmt"
)

var (
	// ErrUnchanged is returned by Filter when the filter keeps every result
	// as it was. The session is not modified.
	ErrUnchanged = errors.New("filter changed nothing")
	// ErrNothingToUndo is returned by Undo when there is no saved result list.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNotDir is wrapped by PathError when the search root is a file.
	ErrNotDir = errors.New("not a directory")
)

// InvalidPatternError reports search or filter text that does not compile.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// PathError reports a search root that is missing or not a directory.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("cannot search %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// FileReadError reports a file skipped during a scan. Scans collect these
// and keep going.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
