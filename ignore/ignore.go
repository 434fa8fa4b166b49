package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Ignore encapsulates gitignore pattern matching for one search root.
type Ignore struct {
	matcher  gitignore.Matcher
	rootPath string
}

// NewIgnore reads the .gitignore files below rootPath (and .git/info/exclude).
func NewIgnore(rootPath string) (*Ignore, error) {
	fs := osfs.New(rootPath)
	patterns, err := gitignore.ReadPatterns(fs, []string{})
	if err != nil {
		return nil, fmt.Errorf("failed to read gitignore patterns: %w", err)
	}

	return &Ignore{
		matcher:  gitignore.NewMatcher(patterns),
		rootPath: rootPath,
	}, nil
}

// IsIgnored checks if path should be skipped according to gitignore rules.
// The .git directory itself is always ignored.
func (ig *Ignore) IsIgnored(path string, isDir bool) (bool, error) {
	if isDir && filepath.Base(path) == ".git" {
		return true, nil
	}

	relPath, err := filepath.Rel(ig.rootPath, path)
	if err != nil {
		return false, err
	}
	if relPath == "." {
		return false, nil
	}

	parts := strings.Split(filepath.ToSlash(relPath), "/")
	return ig.matcher.Match(parts, isDir), nil
}
