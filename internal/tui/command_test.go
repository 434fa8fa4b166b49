package tui

import (
	"testing"

	"github.com/hayeah/nirw/internal/assert"
	"github.com/hayeah/nirw/session"
)

func TestParseCommand(t *testing.T) {
	literal := session.FilterSpec{Field: session.FieldText, Mode: session.ModeLiteral}

	cases := []struct {
		line string
		want Command
	}{
		{"", Command{Kind: CommandNone}},
		{"   ", Command{Kind: CommandNone}},
		{":u", Command{Kind: CommandUndo}},
		{":undo", Command{Kind: CommandUndo}},
		{":q", Command{Kind: CommandQuit}},
		{":quit", Command{Kind: CommandQuit}},
		{":s foo  bar", Command{Kind: CommandSearch, Text: "foo  bar", Terms: []string{"foo", "bar"}}},
		{": TODO", Command{Kind: CommandFilter, Text: "TODO", Spec: literal}},
		{":! TODO", Command{Kind: CommandFilter, Text: "TODO", Spec: session.FilterSpec{
			Field: session.FieldText, Mode: session.ModeLiteral, Negate: true,
		}}},
		{`:p!r _test\.go$`, Command{Kind: CommandFilter, Text: `_test\.go$`, Spec: session.FilterSpec{
			Field: session.FieldPath, Mode: session.ModeRegex, Negate: true,
		}}},
		{":r a b", Command{Kind: CommandFilter, Text: "a b", Spec: session.FilterSpec{
			Field: session.FieldText, Mode: session.ModeRegex,
		}}},
		{"12", Command{Kind: CommandNumber, Index: 12, Text: "12", Terms: []string{"12"}}},
		{"0", Command{Kind: CommandText, Text: "0", Terms: []string{"0"}}},
		{"foo bar\n", Command{Kind: CommandText, Text: "foo bar", Terms: []string{"foo", "bar"}}},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			assert := assert.New(t)
			got, err := ParseCommand(tc.line)
			assert.NoError(err)
			assert.Equal(tc.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	assert := assert.New(t)

	for _, line := range []string{":x foo", ":s", ":s   ", ":p", ":pr!"} {
		_, err := ParseCommand(line)
		assert.Error(err, line)
	}
}
