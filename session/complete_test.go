package session

import (
	"testing"

	"github.com/hayeah/nirw/internal/assert"
	"github.com/hayeah/nirw/match"
)

func TestComplete(t *testing.T) {
	s := withResults(t,
		hit("pkg/foo_bar.go", 0, "import foo_bar", match.Range{Start: 7, End: 10}),
		hit("pkg/foo.go", 2, "x := foo.Baz(foobar) + foo", match.Range{Start: 5, End: 8}),
		hit("pkg/foo.go", 5, "import foo_bar again", match.Range{Start: 7, End: 10}),
	)

	cases := []struct {
		name    string
		partial string
		field   Field
		mode    Mode
		want    []string
	}{
		{"literal text", "foo", FieldText, ModeLiteral, []string{"foo_bar", "foobar"}},
		{"stops at delimiter", "import ", FieldText, ModeLiteral, []string{"import foo_bar"}},
		{"nothing after token", "again", FieldText, ModeLiteral, nil},
		{"path field", "pkg/f", FieldPath, ModeLiteral, []string{"pkg/foo", "pkg/foo_bar"}},
		{"regex partial", "fo+b", FieldText, ModeRegex, []string{"fo+bar"}},
		{"literal does not interpret", "fo+b", FieldText, ModeLiteral, nil},
		{"bad regex", "fo(", FieldText, ModeRegex, nil},
		{"empty partial", "", FieldText, ModeLiteral, nil},
		{"no occurrence", "zzz", FieldText, ModeLiteral, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			got := s.Complete(tc.partial, tc.field, tc.mode)
			if tc.want == nil {
				assert.Empty(got)
				return
			}
			assert.Equal(tc.want, got)
		})
	}
}

func TestCompleteSingleImport(t *testing.T) {
	assert := assert.New(t)
	s := withResults(t, hit("a.py", 0, "import foo_bar", match.Range{Start: 0, End: 6}))

	assert.Equal([]string{"foo_bar"}, s.Complete("foo", FieldText, ModeLiteral))
}
