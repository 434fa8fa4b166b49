package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hayeah/nirw/session"
)

// CommandKind classifies a line typed at the prompt.
type CommandKind int

const (
	CommandNone   CommandKind = iota // blank input
	CommandText                      // free text, a search or a filter depending on state
	CommandNumber                    // a result number
	CommandUndo
	CommandQuit
	CommandSearch
	CommandFilter
)

// Command is a parsed prompt line.
type Command struct {
	Kind  CommandKind
	Text  string             // CommandText, CommandFilter
	Terms []string           // CommandText, CommandSearch
	Index int                // CommandNumber, 1-based
	Spec  session.FilterSpec // CommandFilter
}

// ParseCommand parses one prompt line.
//
//	:u, :undo        undo the last change
//	:q, :quit        quit
//	:s TERMS         start a new search
//	:[pr!] TEXT      filter: p matches the path, r treats TEXT as a regexp,
//	                 ! keeps the results that do not match
//	N                open result N
//	TEXT             search terms, or a text filter once there are results
func ParseCommand(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Command{Kind: CommandNone}, nil
	}

	if rest, ok := strings.CutPrefix(line, ":"); ok {
		return parseColon(rest)
	}

	if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n > 0 {
		return Command{Kind: CommandNumber, Index: n, Text: line, Terms: strings.Fields(line)}, nil
	}

	return Command{Kind: CommandText, Text: line, Terms: strings.Fields(line)}, nil
}

func parseColon(rest string) (Command, error) {
	head, text, _ := strings.Cut(rest, " ")

	switch head {
	case "u", "undo":
		return Command{Kind: CommandUndo}, nil
	case "q", "quit":
		return Command{Kind: CommandQuit}, nil
	case "s":
		terms := strings.Fields(text)
		if len(terms) == 0 {
			return Command{}, fmt.Errorf(":s needs search terms")
		}
		return Command{Kind: CommandSearch, Terms: terms, Text: text}, nil
	}

	spec, ok := parseFilterFlags(head)
	if !ok {
		return Command{}, fmt.Errorf("unknown command :%s", head)
	}
	if text == "" {
		return Command{}, fmt.Errorf("filter :%s needs text", head)
	}
	return Command{Kind: CommandFilter, Text: text, Spec: spec}, nil
}

// parseFilterFlags maps the letters of a filter command to a FilterSpec.
func parseFilterFlags(flags string) (session.FilterSpec, bool) {
	spec := session.FilterSpec{Field: session.FieldText, Mode: session.ModeLiteral}
	for _, r := range flags {
		switch r {
		case 'p':
			spec.Field = session.FieldPath
		case 'r':
			spec.Mode = session.ModeRegex
		case '!':
			spec.Negate = true
		default:
			return spec, false
		}
	}
	return spec, true
}
