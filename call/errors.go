package call

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// NoCommandError reports a command line without a command.
type NoCommandError struct{}

func (NoCommandError) Error() string { return "please enter a command" }
func (NoCommandError) ExitCode() int { return 2 }

// UnknownCommandError reports a command name that matches no command.
type UnknownCommandError struct {
	Name        string
	Suggestions []string // closest command names, best first
}

func (e UnknownCommandError) Error() string {
	msg := "unknown command " + strconv.Quote(e.Name)
	if len(e.Suggestions) == 0 {
		return msg
	}
	q := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		q[i] = strconv.Quote(s)
	}
	return msg + "; did you mean " + strings.Join(q, " or ") + "?"
}

func (UnknownCommandError) ExitCode() int { return 2 }

// BindError reports the first argument of a command that could not be bound.
type BindError struct {
	Command string
	Err     error
}

func (e BindError) Error() string { return e.Command + ": " + e.Err.Error() }
func (e BindError) Unwrap() error { return e.Err }
func (BindError) ExitCode() int   { return 2 }

const maxSuggestions = 3

func (p *Program) unknown(name string) UnknownCommandError {
	names := make([]string, len(p.commands))
	for i, cmd := range p.commands {
		names[i] = cmd.Name
	}
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		// a typo rarely leaves the name a subsequence of the command; try
		// the other direction so "helloo" still finds "hello"
		for _, n := range names {
			if fuzzy.MatchFold(n, name) {
				ranks = append(ranks, fuzzy.Rank{Source: n, Target: n, Distance: fuzzy.LevenshteinDistance(n, name)})
			}
		}
	}
	sort.Stable(ranks)
	err := UnknownCommandError{Name: name}
	for _, r := range ranks {
		if len(err.Suggestions) == maxSuggestions {
			break
		}
		err.Suggestions = append(err.Suggestions, r.Target)
	}
	return err
}

func isUsage(err error) bool {
	var nc NoCommandError
	var uc UnknownCommandError
	var be BindError
	return errors.As(err, &nc) || errors.As(err, &uc) || errors.As(err, &be)
}
