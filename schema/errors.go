package schema

import (
	"strconv"
	"strings"
)

// DefinitionError reports a malformed documentation block or command
// declaration. It is raised while a program is assembled, never while
// arguments are parsed.
type DefinitionError struct {
	Command string
	Line    int    // 1-based line within the documentation block, or 0
	Text    string // offending line, if any
	Reason  string
	Err     error
}

func (e DefinitionError) Error() string {
	var parts []string
	if e.Command != "" {
		parts = append(parts, e.Command)
	}
	if e.Line > 0 {
		parts = append(parts, "line "+strconv.Itoa(e.Line))
	}
	if e.Text != "" {
		parts = append(parts, strconv.Quote(e.Text))
	}
	return strings.Join(append(parts, e.Reason), ": ")
}

func (e DefinitionError) Unwrap() error { return e.Err }

// ExitCode marks definition errors as internal failures of the program.
func (e DefinitionError) ExitCode() int { return 70 }
