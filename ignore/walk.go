package ignore

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Walker visits the files of a search tree in lexical order.
type Walker struct {
	// Include, when set, must match a file for it to be visited.
	Include PathMatcher
	// Exclude skips matching files and prunes matching directories.
	Exclude PathMatcher
	// Hidden visits dotfiles and dot-directories.
	Hidden bool
	// GitIgnore honors .gitignore files below the root.
	GitIgnore bool
	// OnError receives entries that could not be listed. The walk continues.
	OnError func(path string, err error)
}

// WalkDir calls fn for every regular file below root that passes the
// walker's predicates. Subdirectories are visited in sorted order. The walk
// stops at the first error returned by fn, or when ctx is done.
func (w *Walker) WalkDir(ctx context.Context, root string, fn func(path string) error) error {
	var ig *Ignore
	if w.GitIgnore {
		var err error
		ig, err = NewIgnore(root)
		if err != nil {
			return err
		}
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			w.reportError(path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		isDir := d.IsDir()
		skip := func() error {
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if !w.Hidden && strings.HasPrefix(d.Name(), ".") {
			return skip()
		}

		if ig != nil {
			ignored, err := ig.IsIgnored(path, isDir)
			if err != nil {
				return err
			}
			if ignored {
				return skip()
			}
		} else if isDir && d.Name() == ".git" {
			return filepath.SkipDir
		}

		rel := relSlash(root, path)
		if w.Exclude != nil && w.Exclude.MatchPath(rel) {
			return skip()
		}
		if isDir {
			return nil
		}

		if !isRegularFile(path, d) {
			return nil
		}
		if w.Include != nil && !w.Include.MatchPath(rel) {
			return nil
		}

		return fn(path)
	})
}

func (w *Walker) reportError(path string, err error) {
	if w.OnError != nil {
		w.OnError(path, err)
	}
}

// isRegularFile reports whether d is a regular file, following symlinks.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
