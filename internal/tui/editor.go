package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	shlex "github.com/flynn/go-shlex"

	"github.com/hayeah/nirw/match"
)

// DefaultEditor returns the editor template built from $VISUAL or $EDITOR,
// falling back to vi.
func DefaultEditor() string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if editor := strings.TrimSpace(os.Getenv(name)); editor != "" {
			return editor + " +{line} {file}"
		}
	}
	return "vi +{line} {file}"
}

// EditorArgs expands an editor template for m. Each shell word may contain
// {file}, {line} and {column}. A template without {file} gets the file as
// its last argument.
func EditorArgs(template string, m match.Match) ([]string, error) {
	words, err := shlex.Split(template)
	if err != nil {
		return nil, fmt.Errorf("invalid editor command %q: %w", template, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty editor command")
	}

	replacer := strings.NewReplacer(
		"{file}", m.Path,
		"{line}", strconv.Itoa(m.LineNumber()),
		"{column}", strconv.Itoa(m.Column()),
	)

	hasFile := false
	args := make([]string, len(words))
	for i, w := range words {
		if strings.Contains(w, "{file}") {
			hasFile = true
		}
		args[i] = replacer.Replace(w)
	}
	if !hasFile {
		args = append(args, m.Path)
	}
	return args, nil
}

// EditorCommand returns the command that opens m in the editor.
func EditorCommand(template string, m match.Match) (*exec.Cmd, error) {
	if template == "" {
		template = DefaultEditor()
	}
	args, err := EditorArgs(template, m)
	if err != nil {
		return nil, err
	}
	return exec.Command(args[0], args[1:]...), nil
}
