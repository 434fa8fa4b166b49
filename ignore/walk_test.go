package ignore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func createTestDirectory(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for relPath, content := range files {
		path := filepath.Join(tempDir, relPath)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return tempDir
}

func collect(t *testing.T, w *Walker, root string) []string {
	t.Helper()
	var paths []string
	err := w.WalkDir(context.Background(), root, func(path string) error {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	assert.NoError(t, err)
	return paths
}

var sampleTree = map[string]string{
	"b.txt":            "b",
	"a.go":             "a",
	"sub/c.go":         "c",
	"sub/deep/d.txt":   "d",
	".hidden/e.txt":    "e",
	".dotfile":         "f",
	"vendor/lib.go":    "lib",
	"build/out.bin":    "out",
	".gitignore":       "build/\n*.log\n",
	"debug.log":        "log",
	".git/config":      "cfg",
	"sub/deep/.env.go": "env",
}

func TestWalkerOrderAndDefaults(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := createTestDirectory(t, sampleTree)
	w := &Walker{GitIgnore: true}

	assert.Equal(t, []string{
		"a.go",
		"b.txt",
		"sub/c.go",
		"sub/deep/d.txt",
		"vendor/lib.go",
	}, collect(t, w, root))
}

func TestWalkerHiddenAndNoIgnore(t *testing.T) {
	root := createTestDirectory(t, sampleTree)
	w := &Walker{Hidden: true}

	assert.Equal(t, []string{
		".dotfile",
		".gitignore",
		".hidden/e.txt",
		"a.go",
		"b.txt",
		"build/out.bin",
		"debug.log",
		"sub/c.go",
		"sub/deep/.env.go",
		"sub/deep/d.txt",
		"vendor/lib.go",
	}, collect(t, w, root))
}

func TestWalkerIncludeExclude(t *testing.T) {
	assert := assert.New(t)
	root := createTestDirectory(t, sampleTree)

	goFiles, err := NewGlobMatcher("*.go")
	assert.NoError(err)
	vendor, err := NewRegexpMatcher(`^vendor$`)
	assert.NoError(err)

	w := &Walker{GitIgnore: true, Include: goFiles, Exclude: vendor}
	assert.Equal([]string{"a.go", "sub/c.go"}, collect(t, w, root))

	deep, err := NewGlobMatcher("sub/**/*.txt")
	assert.NoError(err)
	w = &Walker{GitIgnore: true, Include: Any{goFiles, deep}}
	assert.Equal([]string{"a.go", "sub/c.go", "sub/deep/d.txt", "vendor/lib.go"}, collect(t, w, root))

	inSub := PathMatcherFunc(func(path string) bool {
		return strings.HasPrefix(path, "sub/")
	})
	w = &Walker{GitIgnore: true, Include: All{goFiles, inSub}}
	assert.Equal([]string{"sub/c.go"}, collect(t, w, root))
}

func TestWalkerStopsOnCancel(t *testing.T) {
	root := createTestDirectory(t, sampleTree)
	ctx, cancel := context.WithCancel(context.Background())

	var visited []string
	w := &Walker{GitIgnore: true}
	err := w.WalkDir(ctx, root, func(path string) error {
		visited = append(visited, path)
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, visited, 1)
}

func TestWalkerPropagatesCallbackError(t *testing.T) {
	root := createTestDirectory(t, sampleTree)
	boom := errors.New("boom")

	w := &Walker{}
	err := w.WalkDir(context.Background(), root, func(string) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestWalkerMissingRoot(t *testing.T) {
	w := &Walker{}
	err := w.WalkDir(context.Background(), filepath.Join(t.TempDir(), "nope"), func(string) error { return nil })
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGlobMatcher(t *testing.T) {
	assert := assert.New(t)

	_, err := NewGlobMatcher("[")
	assert.Error(err)

	m, err := NewGlobMatcher("cmd/**/main.go")
	assert.NoError(err)
	assert.True(m.MatchPath("cmd/nirw/main.go"))
	assert.False(m.MatchPath("main.go"))

	base, err := NewGlobMatcher("*_test.go")
	assert.NoError(err)
	assert.True(base.MatchPath("session/session_test.go"))
	assert.False(base.MatchPath("session/session.go"))
}
