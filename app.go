package nirw

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/wire"

	"github.com/hayeah/nirw/fzf"
	"github.com/hayeah/nirw/ignore"
	"github.com/hayeah/nirw/internal/config"
	"github.com/hayeah/nirw/internal/logging"
	"github.com/hayeah/nirw/internal/patterncache"
	"github.com/hayeah/nirw/internal/tui"
	"github.com/hayeah/nirw/match"
	"github.com/hayeah/nirw/session"
)

// Args are the command-line arguments.
type Args struct {
	Patterns []string `arg:"positional" help:"patterns that must all match on the same line"`

	IgnoreCase   bool `arg:"-i,--ignore-case" help:"match case-insensitively"`
	SmartCase    bool `arg:"-s,--smart-case" help:"ignore case unless a pattern has an upper-case letter"`
	Multiline    bool `arg:"-m,--multiline" help:"let . match newlines and ^/$ match at line boundaries"`
	FixedStrings bool `arg:"-F,--fixed-strings" help:"treat patterns as literal text"`

	Dir     string   `arg:"-d,--dir" default:"." help:"directory to search"`
	Include []string `arg:"--include,separate" help:"only search paths matching this regexp"`
	Exclude []string `arg:"--exclude,separate" help:"skip paths matching this regexp"`
	Glob    []string `arg:"-g,--glob,separate" help:"only search paths matching this glob"`
	Select  string   `arg:"--select" help:"only search paths matching these fzf-style terms"`

	Hidden     bool `arg:"--hidden" help:"search hidden files and directories"`
	NoIgnore   bool `arg:"--no-ignore" help:"do not honor .gitignore"`
	Persistent bool `arg:"-p,--persistent" help:"keep running after opening a match"`
	Print      bool `arg:"--print" help:"print the matches and exit"`

	Editor   string `arg:"-e,--editor" help:"editor command; {file}, {line} and {column} are substituted"`
	Config   string `arg:"--config" help:"config file (default: $XDG_CONFIG_HOME/nirw/config.toml)"`
	LogFile  string `arg:"--log-file" help:"write logs to this file"`
	LogLevel string `arg:"--log-level" help:"debug, info, warn or error"`
}

func (Args) Description() string {
	return "nirw searches a directory tree for lines matching every pattern, then narrows the results interactively.\n"
}

// ParseArgs parses argv (without the program name).
func ParseArgs(argv []string) (*Args, error) {
	args, _, err := parseArgs(argv)
	return args, err
}

func parseArgs(argv []string) (*Args, *arg.Parser, error) {
	args := &Args{}
	parser, err := arg.NewParser(arg.Config{Program: "nirw"}, args)
	if err != nil {
		return nil, nil, err
	}
	if err := parser.Parse(argv); err != nil {
		return nil, parser, err
	}
	return args, parser, nil
}

// ProvideArgs parses cli args
func ProvideArgs() (*Args, error) {
	args, parser, err := parseArgs(os.Args[1:])
	switch {
	case err == nil:
		return args, nil
	case parser == nil:
		return nil, err
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	parser.Fail(err.Error())
	return nil, err
}

// ProvideConfig loads the config file named by --config, or the default one.
func ProvideConfig(args *Args) (*config.Config, error) {
	path := args.Config
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// ProvideLogger builds the logger. Print mode logs to stderr; the TUI logs
// only to a file.
func ProvideLogger(args *Args, cfg *config.Config) (*slog.Logger, func(), error) {
	lc := logging.DefaultConfig()
	lc.FilePath = firstNonEmpty(args.LogFile, cfg.LogFile)
	lc.Level = firstNonEmpty(args.LogLevel, cfg.LogLevel, lc.Level)
	lc.Stderr = args.Print

	logger, closeLog, err := logging.New(lc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log: %w", err)
	}
	cleanup := func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", err)
		}
	}
	return logger, cleanup, nil
}

// ProvidePatternCache creates the compiled-pattern cache.
func ProvidePatternCache() (*patterncache.Cache, error) {
	return patterncache.New(patterncache.DefaultSize)
}

// ProvideSearchOptions merges flags and config into the options of every
// search in this run.
func ProvideSearchOptions(args *Args, cfg *config.Config) (session.SearchOptions, error) {
	opts := session.SearchOptions{
		Root: args.Dir,
		Pattern: match.Options{
			Case:      caseMode(args, cfg),
			Multiline: args.Multiline,
			Literal:   args.FixedStrings,
		},
		Hidden:    args.Hidden || cfg.Hidden,
		GitIgnore: !(args.NoIgnore || cfg.NoIgnore),
	}

	include, err := includeMatcher(args)
	if err != nil {
		return opts, err
	}
	opts.Include = include

	var exclude ignore.Any
	for _, pattern := range slices.Concat(args.Exclude, cfg.Exclude) {
		m, err := ignore.NewRegexpMatcher(pattern)
		if err != nil {
			return opts, fmt.Errorf("invalid --exclude: %w", err)
		}
		exclude = append(exclude, m)
	}
	if len(exclude) > 0 {
		opts.Exclude = exclude
	}
	return opts, nil
}

// includeMatcher accepts a path matching any --include regexp or --glob,
// and all of the --select terms.
func includeMatcher(args *Args) (ignore.PathMatcher, error) {
	var anyOf ignore.Any
	for _, pattern := range args.Include {
		m, err := ignore.NewRegexpMatcher(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid --include: %w", err)
		}
		anyOf = append(anyOf, m)
	}
	for _, pattern := range args.Glob {
		m, err := ignore.NewGlobMatcher(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid --glob: %w", err)
		}
		anyOf = append(anyOf, m)
	}

	var all ignore.All
	if len(anyOf) > 0 {
		all = append(all, anyOf)
	}
	if args.Select != "" {
		m, err := fzf.NewMatcher(args.Select)
		if err != nil {
			return nil, fmt.Errorf("invalid --select: %w", err)
		}
		all = append(all, m)
	}

	switch len(all) {
	case 0:
		return nil, nil
	case 1:
		return all[0], nil
	}
	return all, nil
}

func caseMode(args *Args, cfg *config.Config) match.CaseMode {
	switch {
	case args.IgnoreCase:
		return match.CaseInsensitive
	case args.SmartCase, cfg.SmartCase:
		return match.CaseSmart
	}
	return match.CaseSensitive
}

// ProvideController creates the front-end controller.
func ProvideController(s *session.Session, opts session.SearchOptions, args *Args, cfg *config.Config, logger *slog.Logger) *tui.Controller {
	return tui.NewController(s, opts, args.Persistent || cfg.Persistent, logger)
}

// collect all the necessary providers
var Wires = wire.NewSet(
	ProvideArgs,
	ProvideConfig,
	ProvideLogger,
	ProvidePatternCache,
	ProvideSearchOptions,
	ProvideController,
	session.New,

	wire.Struct(new(App), "Args", "Config", "Logger", "Controller"),
)

// App runs one invocation of nirw.
type App struct {
	Args       *Args
	Config     *config.Config
	Logger     *slog.Logger
	Controller *tui.Controller
}

// Run starts the interactive search, or prints the matches in print mode.
// A bad search root is reported before anything else happens.
func (a *App) Run(ctx context.Context) error {
	c := a.Controller
	out, err := c.Scan(ctx, nil, nil)
	if err != nil {
		return err
	}

	if a.Args.Print {
		return a.Print(ctx, os.Stdout, os.Stderr)
	}

	model := tui.NewModel(c, a.editor(), a.Args.Patterns)
	if len(a.Args.Patterns) == 0 {
		model = model.WithStatus(c.Finish(nil, out, nil).Message)
	}

	a.Logger.Info("start", "root", c.Search.Root, "patterns", len(a.Args.Patterns), "persistent", c.Persistent)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// Print searches once and writes the enumerated matches to w and unreadable
// files to errw.
func (a *App) Print(ctx context.Context, w, errw io.Writer) error {
	if len(a.Args.Patterns) == 0 {
		return errors.New("--print needs at least one pattern")
	}

	c := a.Controller
	out, err := c.Scan(ctx, a.Args.Patterns, nil)
	act := c.Finish(a.Args.Patterns, out, err)
	if act.Err != nil {
		return act.Err
	}

	list := c.Session.Results()
	if out.Canceled {
		list = out.Matches
	}
	if err := tui.WriteList(w, list, tui.PlainStyles); err != nil {
		return err
	}
	if report := tui.FormatFileErrors(out.FileErrors); report != "" {
		fmt.Fprint(errw, report)
	}
	if out.Canceled {
		return ctx.Err()
	}
	return nil
}

func (a *App) editor() string {
	return firstNonEmpty(a.Args.Editor, a.Config.Editor)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
