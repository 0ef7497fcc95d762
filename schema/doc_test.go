package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaSpruca/argster/schema"
)

func TestParseArgLine(t *testing.T) {
	for _, tt := range []struct {
		Line string
		Want schema.Arg
	}{
		{"input The name to greet", schema.Arg{Long: "input", Desc: "The name to greet"}},
		{"input", schema.Arg{Long: "input"}},
		{"--number -n The number of times", schema.Arg{Long: "number", Short: "n", Desc: "The number of times"}},
		{"--number The number of times", schema.Arg{Long: "number", Desc: "The number of times"}},
		{"--number", schema.Arg{Long: "number"}},
		{"--number -n", schema.Arg{Long: "number", Short: "n"}},
		{"--dry-run -d Do not  write, just -print", schema.Arg{Long: "dry-run", Short: "d", Desc: "Do not  write, just -print"}},
		{"  --pad -p   Spaces around  ", schema.Arg{Long: "pad", Short: "p", Desc: "Spaces around"}},
		{"--eta -é Accented short", schema.Arg{Long: "eta", Short: "é", Desc: "Accented short"}},
	} {
		t.Run(tt.Line, func(t *testing.T) {
			got, err := schema.ParseArgLine(tt.Line)
			require.NoError(t, err)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestParseArgLineErrors(t *testing.T) {
	for _, tt := range []struct {
		Line   string
		Reason string
	}{
		{"--number -nm Multi character short", "short name -nm of number must be one character"},
		{"--number --num Two long names", "number can only have one long name; the second name must be -<short>"},
		{"--number ---n Too many dashes", "number can only have one long name; the second name must be -<short>"},
		{"number -n Missing dashes", `expected "input <description>" or "--<long> [-<short>] <description>"`},
		{"-n Short only", `expected "input <description>" or "--<long> [-<short>] <description>"`},
		{"inputs are not input", `expected "input <description>" or "--<long> [-<short>] <description>"`},
		{"--", `expected "input <description>" or "--<long> [-<short>] <description>"`},
	} {
		t.Run(tt.Line, func(t *testing.T) {
			_, err := schema.ParseArgLine(tt.Line)
			var de schema.DefinitionError
			require.True(t, errors.As(err, &de), "error %T: %v", err, err)
			assert.Equal(t, tt.Reason, de.Reason)
			assert.Contains(t, err.Error(), tt.Line)
		})
	}
}

func TestParseDoc(t *testing.T) {
	doc, err := schema.ParseDoc(`
		A hello command
		that spans lines
		# Args
		input The name to greet

		--number -n The number of times to greet them
	`)
	require.NoError(t, err)
	assert.Equal(t, "A hello command\nthat spans lines", doc.Help)
	assert.Equal(t, []schema.Arg{
		{Long: "input", Desc: "The name to greet"},
		{Long: "number", Short: "n", Desc: "The number of times to greet them"},
	}, doc.Args)

	arg, ok := doc.Lookup("number")
	assert.True(t, ok)
	assert.Equal(t, "n", arg.Short)
	_, ok = doc.Lookup("times")
	assert.False(t, ok)
}

func TestParseDocHelpOnly(t *testing.T) {
	doc, err := schema.ParseDoc("Does the opposite of hello")
	require.NoError(t, err)
	assert.Equal(t, "Does the opposite of hello", doc.Help)
	assert.Empty(t, doc.Args)
}

func TestParseDocErrors(t *testing.T) {
	for _, tt := range []struct {
		Name string
		Doc  string
		Line int
	}{
		{"bad line", "help\n# Args\ninput x\n--ok fine\nnot an arg", 5},
		{"long short", "help\n# Args\n--name -nm desc", 3},
		{"repeated marker", "help\n# Args\n--a\n# Args", 4},
		{"documented twice", "# Args\n--a one\n--a two", 3},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := schema.ParseDoc(tt.Doc)
			var de schema.DefinitionError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.Line, de.Line)
			assert.Equal(t, 70, de.ExitCode())
		})
	}
}
