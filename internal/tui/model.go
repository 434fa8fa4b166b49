package tui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hayeah/nirw/match"
	"github.com/hayeah/nirw/session"
)

type scanDoneMsg struct {
	terms []string
	out   session.Outcome
	err   error
}

type editorDoneMsg struct {
	err error
}

// Model is the bubbletea model of the interactive search.
type Model struct {
	ctrl   *Controller
	editor string
	keys   KeyMap

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	// displayed results; a canceled scan shows its partial matches here
	// without installing them
	results    []match.Match
	partial    bool
	fileErrors string
	status     string
	statusErr  bool

	scanning bool
	cancel   context.CancelFunc
	files    *atomic.Int64

	initial []string
	width   int
	height  int
	ready   bool
}

// NewModel creates the model. If terms is non-empty the search starts as
// soon as the program runs.
func NewModel(ctrl *Controller, editor string, terms []string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "search terms"
	ti.CharLimit = 0
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		ctrl:    ctrl,
		editor:  editor,
		keys:    Keys,
		input:   ti,
		spinner: sp,
		files:   &atomic.Int64{},
		initial: terms,
	}
}

// WithStatus returns m showing msg in the status line.
func (m Model) WithStatus(msg string) Model {
	m.status = msg
	return m
}

type startMsg struct{}

func (m Model) Init() tea.Cmd {
	if len(m.initial) == 0 {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, func() tea.Msg { return startMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := max(msg.Height-4, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		m.input.Width = max(msg.Width-4, 10)
		m.refresh()
		return m, nil

	case startMsg:
		return m.apply(Action{Kind: ActionSearch, Terms: m.initial})

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scanDoneMsg:
		m.scanning = false
		m.cancel = nil
		act := m.ctrl.Finish(msg.terms, msg.out, msg.err)
		m.fileErrors = FormatFileErrors(msg.out.FileErrors)
		m.setStatus(act)
		m.partial = msg.out.Canceled
		if m.partial {
			m.results = msg.out.Matches
		} else {
			m.results = m.ctrl.Session.Results()
		}
		m.refresh()
		return m, nil

	case editorDoneMsg:
		return m.apply(m.ctrl.Opened(msg.err))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var inputCmd, viewCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, viewCmd)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		if m.scanning {
			m.cancel()
			m.status = "canceling search..."
			return m, nil
		}
		return m.apply(m.ctrl.Interrupt())
	}
	if m.scanning {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Enter):
		line := m.input.Value()
		m.input.Reset()
		return m.apply(m.ctrl.Handle(line))

	case key.Matches(msg, m.keys.Complete):
		line, candidates := m.ctrl.Complete(m.input.Value())
		m.input.SetValue(line)
		m.input.CursorEnd()
		m.statusErr = false
		m.status = strings.Join(candidates, "  ")
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply carries out a controller action.
func (m Model) apply(act Action) (tea.Model, tea.Cmd) {
	switch act.Kind {
	case ActionQuit:
		return m, tea.Quit

	case ActionSearch:
		ctx, cancel := context.WithCancel(context.Background())
		m.scanning = true
		m.cancel = cancel
		m.files.Store(0)
		m.status = ""
		m.statusErr = false

		ctrl, files, terms := m.ctrl, m.files, act.Terms
		scan := func() tea.Msg {
			defer cancel()
			out, err := ctrl.Scan(ctx, terms, func(string) { files.Add(1) })
			return scanDoneMsg{terms: terms, out: out, err: err}
		}
		return m, tea.Batch(scan, m.spinner.Tick)

	case ActionOpen:
		cmd, err := EditorCommand(m.editor, act.Match)
		if err != nil {
			m.setStatus(errorAction(err))
			return m, nil
		}
		m.ctrl.Logger.Debug("open", "path", act.Match.Path, "line", act.Match.LineNumber(), "cmd", cmd.Args)
		return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
			return editorDoneMsg{err: err}
		})
	}

	m.setStatus(act)
	m.results = m.ctrl.Session.Results()
	m.partial = false
	m.refresh()
	return m, nil
}

func (m *Model) setStatus(act Action) {
	m.status = act.Message
	m.statusErr = act.Err != nil
}

// refresh re-renders the result list into the viewport.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	var b strings.Builder
	b.WriteString(FormatList(m.results, TerminalStyles))
	if m.fileErrors != "" {
		b.WriteString("\n")
		b.WriteString(StyleError.Render(m.fileErrors))
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func (m Model) header() string {
	state := m.ctrl.State().String()
	if m.ctrl.Persistent {
		state += ", persistent"
	}
	title := fmt.Sprintf("nirw  %s  %d results  undo %d  [%s]",
		m.ctrl.Search.Root, m.ctrl.Session.Len(), m.ctrl.Session.Depth(), state)
	if m.partial {
		title += "  (partial)"
	}
	return StyleHeader.Width(m.width).Render(title)
}

func (m Model) statusLine() string {
	if m.scanning {
		return fmt.Sprintf("%s searching... %d files", m.spinner.View(), m.files.Load())
	}
	if m.status == "" {
		return StyleMuted.Render(m.keys.hints())
	}
	if m.statusErr {
		return StyleError.Render(m.status)
	}
	return m.status
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		m.viewport.View(),
		m.statusLine(),
		m.input.View(),
	)
}
