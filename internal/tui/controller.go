// Package tui is the interactive front-end: a controller holding the search
// session state machine, and the bubbletea program that drives it.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hayeah/nirw/match"
	"github.com/hayeah/nirw/session"
)

// State is the front-end state.
type State int

const (
	AwaitingSearch State = iota // no results; free text starts a search
	Refining                    // results present; free text filters them
)

func (s State) String() string {
	if s == Refining {
		return "refining"
	}
	return "awaiting search"
}

// ActionKind tells the caller what to do after the controller handled input.
type ActionKind int

const (
	ActionNone   ActionKind = iota // show Message and the live results
	ActionSearch                   // run a scan for Terms, then call Finish
	ActionOpen                     // open Match in the editor, then call Opened
	ActionQuit
)

// Action is the controller's answer to one input.
type Action struct {
	Kind    ActionKind
	Message string
	Err     error
	Terms   []string
	Match   match.Match
}

// Controller implements the prompt commands on top of a session. It has no
// terminal dependencies; the bubbletea model and print mode both use it.
type Controller struct {
	Session    *session.Session
	Search     session.SearchOptions
	Persistent bool
	Logger     *slog.Logger

	state       State
	interrupted bool
}

// NewController creates a controller in the AwaitingSearch state.
func NewController(s *session.Session, opts session.SearchOptions, persistent bool, logger *slog.Logger) *Controller {
	return &Controller{
		Session:    s,
		Search:     opts,
		Persistent: persistent,
		Logger:     logger,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Handle runs one prompt line.
func (c *Controller) Handle(line string) Action {
	cmd, err := ParseCommand(line)
	if err != nil {
		return errorAction(err)
	}
	if cmd.Kind != CommandNone {
		c.interrupted = false
	}
	c.Logger.Debug("command", "kind", cmd.Kind, "state", c.state)

	switch cmd.Kind {
	case CommandNone:
		return Action{}
	case CommandQuit:
		return Action{Kind: ActionQuit}
	case CommandUndo:
		return c.undo()
	case CommandSearch:
		return Action{Kind: ActionSearch, Terms: cmd.Terms}
	case CommandFilter:
		return c.filter(cmd.Spec, cmd.Text)
	}

	if c.state == AwaitingSearch {
		return Action{Kind: ActionSearch, Terms: cmd.Terms}
	}
	if cmd.Kind == CommandNumber {
		return c.open(cmd.Index)
	}
	return c.filter(c.textFilter(), cmd.Text)
}

// textFilter is the filter used for free text: a positive text filter that
// treats the text the way the last search treated its patterns.
func (c *Controller) textFilter() session.FilterSpec {
	spec := session.FilterSpec{Field: session.FieldText, Mode: session.ModeRegex}
	if c.Session.Options().Literal {
		spec.Mode = session.ModeLiteral
	}
	return spec
}

func (c *Controller) open(n int) Action {
	m, ok := c.Session.At(n - 1)
	if !ok {
		return errorAction(fmt.Errorf("no result %d (1-%d)", n, c.Session.Len()))
	}
	return Action{Kind: ActionOpen, Match: m}
}

func (c *Controller) undo() Action {
	results, err := c.Session.Undo()
	if err != nil {
		return errorAction(err)
	}
	c.state = stateFor(results)
	return Action{Message: fmt.Sprintf("undo: %s", countMatches(len(results)))}
}

func (c *Controller) filter(spec session.FilterSpec, text string) Action {
	before := c.Session.Len()
	results, err := c.Session.Filter(spec, text)
	if errors.Is(err, session.ErrUnchanged) {
		return Action{Message: "filter changed nothing"}
	}
	if err != nil {
		return errorAction(err)
	}
	return Action{Message: fmt.Sprintf("%s %q: %d of %d kept", describeFilter(spec), text, len(results), before)}
}

// Scan runs a search for terms without touching the session. It is safe to
// call from a tea.Cmd while the update loop waits for its result.
func (c *Controller) Scan(ctx context.Context, terms []string, onFile func(path string)) (session.Outcome, error) {
	opts := c.Search
	opts.OnFile = onFile
	return c.Session.Scan(ctx, terms, opts)
}

// Finish installs a completed scan. A canceled or failed scan leaves the
// session untouched.
func (c *Controller) Finish(terms []string, out session.Outcome, err error) Action {
	if out.Canceled {
		return Action{Message: fmt.Sprintf("search canceled: showing %s from %d files, not kept",
			countMatches(len(out.Matches)), out.Files)}
	}
	if err != nil {
		return errorAction(err)
	}
	if len(terms) == 0 {
		c.Persistent = true
		return Action{Message: "no search terms: entering persistent mode"}
	}

	c.Session.Install(out)
	c.state = stateFor(out.Matches)

	msg := fmt.Sprintf("%s in %d files", countMatches(len(out.Matches)), out.Files)
	if n := len(out.FileErrors); n > 0 {
		msg += fmt.Sprintf(", %d unreadable", n)
	}
	return Action{Message: msg}
}

// Run handles a line and, when it starts a search, scans and installs it
// synchronously.
func (c *Controller) Run(ctx context.Context, line string) (Action, session.Outcome) {
	act := c.Handle(line)
	if act.Kind != ActionSearch {
		return act, session.Outcome{}
	}
	out, err := c.Scan(ctx, act.Terms, nil)
	return c.Finish(act.Terms, out, err), out
}

// Opened is called after the editor exits.
func (c *Controller) Opened(err error) Action {
	if err != nil {
		return errorAction(fmt.Errorf("editor: %w", err))
	}
	if !c.Persistent {
		return Action{Kind: ActionQuit}
	}
	return Action{}
}

// Interrupt handles ctrl+c outside of a scan. In persistent mode the first
// interrupt clears the results and the second consecutive one quits.
func (c *Controller) Interrupt() Action {
	if !c.Persistent || c.interrupted {
		return Action{Kind: ActionQuit}
	}
	c.interrupted = true
	c.Session.Clear()
	c.state = AwaitingSearch
	return Action{Message: "results cleared; ctrl+c again to quit"}
}

// Complete extends the last token of line using the live results. It returns
// the new line and, when the token is ambiguous, the candidates.
func (c *Controller) Complete(line string) (string, []string) {
	prefix, token, field, mode, ok := c.completionTarget(line)
	if !ok {
		return line, nil
	}

	candidates := c.Session.Complete(token, field, mode)
	switch len(candidates) {
	case 0:
		return line, nil
	case 1:
		return prefix + candidates[0], nil
	}
	return prefix + commonPrefix(candidates), candidates
}

// completionTarget splits line into the text before the last token and the
// token itself, and picks the field and mode the token is matched with.
func (c *Controller) completionTarget(line string) (prefix, token string, field session.Field, mode session.Mode, ok bool) {
	cut := strings.LastIndexFunc(line, isSpace) + 1
	prefix, token = line[:cut], line[cut:]
	if token == "" {
		return "", "", 0, 0, false
	}

	spec := c.textFilter()
	if rest, isColon := strings.CutPrefix(line, ":"); isColon {
		head, _, hasText := strings.Cut(rest, " ")
		if !hasText {
			return "", "", 0, 0, false
		}
		if head == "s" {
			spec = session.FilterSpec{Field: session.FieldText, Mode: session.ModeLiteral}
		} else if spec, ok = parseFilterFlags(head); !ok {
			return "", "", 0, 0, false
		}
	}
	return prefix, token, spec.Field, spec.Mode, true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// commonPrefix returns the longest common byte prefix of words.
func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		n := min(len(prefix), len(w))
		i := 0
		for i < n && prefix[i] == w[i] {
			i++
		}
		prefix = prefix[:i]
	}
	return strings.ToValidUTF8(prefix, "")
}

func stateFor(results []match.Match) State {
	if len(results) == 0 {
		return AwaitingSearch
	}
	return Refining
}

func describeFilter(spec session.FilterSpec) string {
	var b strings.Builder
	if spec.Negate {
		b.WriteString("not ")
	}
	b.WriteString(spec.Field.String())
	b.WriteString(" ")
	b.WriteString(spec.Mode.String())
	return b.String()
}

func countMatches(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}

func errorAction(err error) Action {
	return Action{Message: err.Error(), Err: err}
}
