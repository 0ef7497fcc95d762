// Package call dispatches a command line to typed handler functions whose
// arguments are described by documentation blocks.
package call

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/LaSpruca/argster/argv"
	"github.com/LaSpruca/argster/coerce"
	"github.com/LaSpruca/argster/schema"
)

// Environ is what a handler may use besides its arguments.
type Environ struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewProgram starts a program with no commands.
func NewProgram(name, version, description string) *Program {
	return &Program{
		Name:        name,
		Version:     version,
		Description: description,
		Environ: Environ{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}
}

// Program dispatches its first argument to one of its commands.
type Program struct {
	Environ
	Name        string
	Version     string
	Description string
	NoColor     bool // disable styled help output

	commands []*Command
	errs     []error
}

// Command describes a command's help and the parameters its handler takes.
type Command struct {
	Name   string
	Help   string
	Params []Param

	handler Handler
}

// Param is a handler parameter merged with its documentation line.
type Param struct {
	schema.Arg
	Type coerce.Meta

	undocumented bool
}

// Positional reports whether p receives the positional values.
func (p Param) Positional() bool { return p.Long == schema.Input }

// Invocation is a parsed command line, ready for RunCommand.
type Invocation struct {
	Command string // empty for program help
	Help    bool

	runs func(context.Context, Environ) error
}

// Command adds a command whose parameters are documented by doc.
// Definition errors are returned and also recorded, so Parse refuses to run
// a program that was assembled incorrectly.
func (p *Program) Command(name, doc string, h Handler) (*Command, error) {
	cmd, err := newCommand(name, doc, h)
	if err == nil && p.lookup(name) != nil {
		err = schema.DefinitionError{Command: name, Reason: "command defined twice"}
	}
	if err != nil {
		p.errs = append(p.errs, err)
		return nil, err
	}
	p.commands = append(p.commands, cmd)
	return cmd, nil
}

// Commands returns the commands in the order they were added.
func (p *Program) Commands() []*Command { return slices.Clip(p.commands) }

// Err reports every definition error seen while adding commands.
func (p *Program) Err() error { return errors.Join(p.errs...) }

func newCommand(name, text string, h Handler) (*Command, error) {
	switch {
	case name == "" || strings.HasPrefix(name, "-"):
		return nil, schema.DefinitionError{Command: name, Reason: "command names must not be empty or start with -"}
	case name == "help":
		return nil, schema.DefinitionError{Command: name, Reason: "help is reserved"}
	case h.invoke == nil:
		return nil, schema.DefinitionError{Command: name, Reason: "missing handler"}
	}

	doc, err := schema.ParseDoc(text)
	if err != nil {
		var de schema.DefinitionError
		if errors.As(err, &de) {
			de.Command = name
			return nil, de
		}
		return nil, err
	}

	cmd := &Command{Name: name, Help: doc.Help, handler: h}
	fail := func(reason string) (*Command, error) {
		return nil, schema.DefinitionError{Command: name, Reason: reason}
	}
	longs, shorts := map[string]bool{}, map[string]bool{}
	for _, a := range h.args {
		long := a.name()
		arg, ok := doc.Lookup(long)
		if !ok {
			arg = schema.Arg{Long: long}
		}
		switch {
		case long == "" || strings.HasPrefix(long, "-"):
			return fail("parameter names must not be empty or start with -")
		case long == "help":
			return fail("parameter name help is reserved")
		case arg.Short == "h":
			return fail("short name -h of " + long + " is reserved")
		case arg.Short != "" && utf8.RuneCountInString(arg.Short) != 1:
			return fail("short name -" + arg.Short + " of " + long + " must be one character")
		case longs[long]:
			return fail("parameter " + long + " declared twice")
		case arg.Short != "" && shorts[arg.Short]:
			return fail("short name -" + arg.Short + " used twice")
		}
		longs[long] = true
		if arg.Short != "" {
			shorts[arg.Short] = true
		}
		cmd.Params = append(cmd.Params, Param{Arg: arg, Type: a.meta(), undocumented: !ok})
	}
	for _, arg := range doc.Args {
		if !longs[arg.Long] {
			return fail("documented argument " + arg.Long + " is not a parameter")
		}
	}
	return cmd, nil
}

// Parse selects a command by args[1] and binds the remaining arguments to its
// parameters. args[0] is the program's own name.
//
// --help or -h anywhere, or a command of help, returns an Invocation that
// prints help instead of running a handler.
func (p *Program) Parse(args []string) (*Invocation, error) {
	if err := p.Err(); err != nil {
		return nil, err
	}
	p.debug("parse", "args", args)
	if len(args) < 2 {
		return nil, NoCommandError{}
	}

	name, set := args[1], argv.Tokenize(args[2:])
	p.debug("tokenized", "command", name, "keys", set.Keys())

	switch name {
	case "help", "--help", "-h":
		topic, err := coerce.OptionalOf(coerce.String()).Coerce(set.Lookup(argv.Positional, ""))
		if err != nil {
			return nil, BindError{Command: "help", Err: coerce.Named(err, schema.Input)}
		}
		if topic == nil {
			return p.helpFor(""), nil
		}
		name = *topic
		if p.lookup(name) == nil {
			return nil, p.unknown(name)
		}
		return p.helpFor(name), nil
	}

	cmd := p.lookup(name)
	if cmd == nil {
		if strings.HasPrefix(name, "-") && argv.Tokenize(args[1:]).Has("help", "h") {
			return p.helpFor(""), nil
		}
		return nil, p.unknown(name)
	}
	if set.Has("help", "h") {
		return p.helpFor(name), nil
	}

	values, err := p.bind(cmd, set)
	if err != nil {
		return nil, err
	}
	return &Invocation{
		Command: cmd.Name,
		runs: func(ctx context.Context, e Environ) error {
			return cmd.handler.invoke(ctx, e, values)
		},
	}, nil
}

// bind coerces every parameter of cmd, stopping at the first failure.
func (p *Program) bind(cmd *Command, set argv.Set) ([]any, error) {
	values := make([]any, len(cmd.Params))
	used := make(map[string]bool, len(set))
	for i, param := range cmd.Params {
		var item *argv.Item
		if param.Positional() {
			item = set.Lookup(argv.Positional, "")
			used[argv.Positional] = true
		} else {
			item = set.Lookup(param.Long, param.Short)
			used[param.Long] = true
			if param.Short != "" {
				used[param.Short] = true
			}
		}
		v, err := cmd.handler.args[i].coerce(item)
		if err != nil {
			p.debug("bind failed", "command", cmd.Name, "param", param.Long, "err", err)
			return nil, BindError{Command: cmd.Name, Err: coerce.Named(err, param.Long)}
		}
		p.debug("bound", "command", cmd.Name, "param", param.Long, "given", item != nil, "undocumented", param.undocumented)
		values[i] = v
	}
	for _, k := range set.Keys() {
		if !used[k] {
			p.debug("ignored argument", "command", cmd.Name, "key", k)
		}
	}
	return values, nil
}

func (p *Program) helpFor(name string) *Invocation {
	return &Invocation{
		Command: name,
		Help:    true,
		runs: func(ctx context.Context, e Environ) error {
			return p.PrintHelp(e.Stderr, name, nil)
		},
	}
}

func (p *Program) lookup(name string) *Command {
	for _, cmd := range p.commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

// RunCommand invokes the handler, or the help, that inv was parsed for.
func (p *Program) RunCommand(ctx context.Context, inv *Invocation) error {
	if inv == nil || inv.runs == nil {
		return NoCommandError{}
	}
	p.debug("run", "command", inv.Command, "help", inv.Help)
	return inv.runs(ctx, p.Environ)
}

// ReportError prints err to Stderr. Usage errors are shown with the help
// for the command they concern.
func (p *Program) ReportError(err error) {
	var de schema.DefinitionError
	var be BindError
	switch {
	case errors.As(err, &de):
		fmt.Fprintln(p.Stderr, p.Name+":", "error:", err)
	case errors.As(err, &be) && p.lookup(be.Command) != nil:
		_ = p.PrintHelp(p.Stderr, be.Command, err)
	case isUsage(err):
		_ = p.PrintHelp(p.Stderr, "", err)
	default:
		fmt.Fprintln(p.Stderr, p.Name+":", "error:", err)
	}
}

// Main parses args and runs the selected command, reporting any error.
func (p *Program) Main(ctx context.Context, args []string) error {
	inv, err := p.Parse(args)
	if err != nil {
		p.ReportError(err)
		return err
	}
	if err := p.RunCommand(ctx, inv); err != nil {
		p.ReportError(err)
		return err
	}
	return nil
}

func (p *Program) debug(msg string, args ...any) {
	if p.Logger != nil {
		p.Logger.Debug(msg, args...)
	}
}
