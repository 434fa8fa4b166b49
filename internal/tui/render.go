package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kr/text"

	"github.com/hayeah/nirw/match"
	"github.com/hayeah/nirw/session"
)

var (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorFailure = lipgloss.Color("#EF4444")

	StyleIndex = lipgloss.NewStyle().Foreground(ColorMuted)
	StylePath  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	StyleError = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleMatch = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FCD34D")).
			Background(lipgloss.Color("#78350F"))

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(ColorPrimary).
			Padding(0, 1)
)

// Marker decorates one piece of text. A nil Marker leaves text unchanged.
type Marker func(string) string

func (mark Marker) apply(s string) string {
	if mark == nil {
		return s
	}
	// styles pad multi-line blocks, so mark each line separately
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = mark(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Highlight returns m's text with every range decorated by mark.
func Highlight(m match.Match, mark Marker) string {
	if mark == nil {
		return m.Text
	}

	var b strings.Builder
	last := 0
	for _, r := range m.Ranges {
		start := min(max(r.Start, last), len(m.Text))
		end := min(r.End, len(m.Text))
		if start >= end {
			continue
		}
		b.WriteString(m.Text[last:start])
		b.WriteString(mark.apply(m.Text[start:end]))
		last = end
	}
	b.WriteString(m.Text[last:])
	return b.String()
}

// Styles decorate the parts of a formatted result.
type Styles struct {
	Index Marker
	Path  Marker
	Match Marker
}

// PlainStyles leaves results undecorated.
var PlainStyles = Styles{}

// TerminalStyles renders results with lipgloss.
var TerminalStyles = Styles{
	Index: styled(StyleIndex),
	Path:  styled(StylePath),
	Match: styled(StyleMatch),
}

func styled(style lipgloss.Style) Marker {
	return func(s string) string { return style.Render(s) }
}

// FormatMatch formats the n-th (1-based) result as "n path:line: text".
// Continuation lines of a multi-line hit are indented.
func FormatMatch(n int, m match.Match, styles Styles) string {
	index := styles.Index.apply(fmt.Sprintf("%4d", n))
	loc := styles.Path.apply(fmt.Sprintf("%s:%d:", m.Path, m.LineNumber()))
	body := Highlight(m, styles.Match)
	body = strings.ReplaceAll(body, "\n", "\n     ")
	return fmt.Sprintf("%s %s %s", index, loc, body)
}

// FormatList formats every result, one per line.
func FormatList(list []match.Match, styles Styles) string {
	var b strings.Builder
	for i, m := range list {
		b.WriteString(FormatMatch(i+1, m, styles))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteList writes FormatList(list, styles) to w.
func WriteList(w io.Writer, list []match.Match, styles Styles) error {
	_, err := io.WriteString(w, FormatList(list, styles))
	return err
}

// FormatFileErrors reports the files a scan could not read.
func FormatFileErrors(errs []*session.FileReadError) string {
	if len(errs) == 0 {
		return ""
	}

	var lines strings.Builder
	for _, err := range errs {
		lines.WriteString(err.Error())
		lines.WriteByte('\n')
	}

	noun := "files"
	if len(errs) == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%d %s could not be read:\n%s", len(errs), noun, text.Indent(lines.String(), "  "))
}
