// Package schema builds command metadata from documentation blocks.
//
// A documentation block is free help text, a marker line "# Args", and then
// one line per argument:
//
//	Greets someone.
//	# Args
//	input The name to greet
//	--times -t The number of times to greet them
//
// The line starting with the word input describes the positional slot.
// Other lines name a long argument, optionally followed by a one character
// short alias, and then its description.
package schema

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Marker separates help text from argument lines.
const Marker = "# Args"

// Input is the long name of the positional slot.
const Input = "input"

// Arg documents one argument.
type Arg struct {
	Long  string
	Short string // empty, or exactly one character
	Desc  string
}

// Doc is a parsed documentation block.
type Doc struct {
	Help string
	Args []Arg
}

// Lookup returns the documentation for the argument named long.
func (d Doc) Lookup(long string) (Arg, bool) {
	for _, a := range d.Args {
		if a.Long == long {
			return a, true
		}
	}
	return Arg{}, false
}

// ParseDoc splits doc into help text and argument lines.
// Blank argument lines are skipped.
func ParseDoc(doc string) (Doc, error) {
	var d Doc
	var help []string
	inArgs := false
	for n, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == Marker && inArgs:
			return Doc{}, DefinitionError{Line: n + 1, Text: line, Reason: "repeated " + Marker + " marker"}
		case line == Marker:
			inArgs = true
		case !inArgs:
			help = append(help, line)
		case line == "":
		default:
			arg, err := ParseArgLine(line)
			if err != nil {
				e := err.(DefinitionError)
				e.Line = n + 1
				return Doc{}, e
			}
			if prev, dup := d.Lookup(arg.Long); dup {
				return Doc{}, DefinitionError{Line: n + 1, Text: line, Reason: "argument " + prev.Long + " documented twice"}
			}
			d.Args = append(d.Args, arg)
		}
	}
	d.Help = strings.TrimSpace(strings.Join(help, "\n"))
	return d, nil
}

// ParseArgLine parses a single argument line.
func ParseArgLine(line string) (Arg, error) {
	line = strings.TrimSpace(line)
	parsed, err := argLineParser().ParseString("", line)
	if err != nil {
		return Arg{}, DefinitionError{
			Text:   line,
			Reason: "expected \"input <description>\" or \"--<long> [-<short>] <description>\"",
			Err:    err,
		}
	}

	switch {
	case parsed.Input != nil:
		return Arg{Long: Input, Desc: parsed.Input.Desc.text(line)}, nil
	case parsed.Named.Short == nil:
		return Arg{Long: parsed.Named.Long, Desc: parsed.Named.Desc.text(line)}, nil
	}

	short := parsed.Named.Short
	switch {
	case short.Dashes != "-":
		return Arg{}, DefinitionError{Text: line, Reason: parsed.Named.Long + " can only have one long name; the second name must be -<short>"}
	case utf8.RuneCountInString(short.Name) != 1:
		return Arg{}, DefinitionError{Text: line, Reason: "short name -" + short.Name + " of " + parsed.Named.Long + " must be one character"}
	}
	return Arg{Long: parsed.Named.Long, Short: short.Name, Desc: parsed.Named.Desc.text(line)}, nil
}

var (
	argLineParserOnce sync.Once
	argLineParserDef  *participle.Parser[argLine]
)

func argLineParser() *participle.Parser[argLine] {
	argLineParserOnce.Do(func() {
		argLineParserDef = participle.MustBuild[argLine](
			participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
				{Name: "Dashes", Pattern: `-+`},
				{Name: "Word", Pattern: `[^\s-]\S*`},
				{Name: "whitespace", Pattern: `\s+`},
			})),
			participle.Elide("whitespace"),
		)
	})
	return argLineParserDef
}

type argLine struct {
	Input *inputLine `parser:"  @@"`
	Named *namedLine `parser:"| @@"`
}

type inputLine struct {
	Keyword string   `parser:"@'input'"`
	Desc    *docText `parser:"@@?"`
}

type namedLine struct {
	Long  string     `parser:"'--' @Word"`
	Short *shortName `parser:"( @@ )?"`
	Desc  *docText   `parser:"@@?"`
}

type shortName struct {
	Dashes string `parser:"@Dashes"`
	Name   string `parser:"@Word"`
}

// docText records where the description starts so it can be taken verbatim.
type docText struct {
	Pos   lexer.Position
	Words []string `parser:"@(Word | Dashes)+"`
}

func (t *docText) text(line string) string {
	if t == nil {
		return ""
	}
	return strings.TrimSpace(line[t.Pos.Offset:])
}
