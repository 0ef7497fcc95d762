// Command argster-example shows commands declared with call and coerce.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/LaSpruca/argster/call"
	"github.com/LaSpruca/argster/coerce"
	"github.com/LaSpruca/argster/run"
)

const version = "0.1.0"

func main() {
	os.Exit(run.Main(program()))
}

// program declares the commands. A mistake in a declaration is a bug in this
// file, so it panics rather than waiting for Parse to report it.
func program() *call.Program {
	p := call.NewProgram("argster-example", version, "An example of commands declared by their documentation")
	command := func(name, doc string, h call.Handler) {
		if _, err := p.Command(name, doc, h); err != nil {
			panic(err)
		}
	}

	command("hello", `A hello command
		# Args
		input The name to greet
		--times -t The number of times to greet them
		--shout -s Greet loudly
		--level -v Number each greeting; repeat for more detail`,
		call.Handler4(hello,
			call.Input(coerce.String()),
			call.Named("times", coerce.OptionalOf(coerce.Uint[uint32]())),
			call.Named("shout", coerce.Bool()),
			call.Named("level", coerce.OptionalOf(coerce.Int[int]())),
		))

	command("goodbye", `Does the opposite of hello
		# Args
		input The name to dismiss`,
		call.Handler1(goodbye, call.Input(coerce.String())))

	command("eval", `Evaluates an expression
		# Args
		input The expression, such as "x * 2"
		--var -V Variables as name=value; numbers and booleans are typed
		--format -f Print results as text or json
		--timeout Give up after this long`,
		call.Handler4(eval,
			call.Input(coerce.String()),
			call.Named("var", coerce.OptionalOf(coerce.ListOf(coerce.String()))),
			call.Named("format", coerce.OptionalOf(coerce.OneOf("text", "json"))),
			call.Named("timeout", coerce.OptionalOf(coerce.Duration())),
		))

	command("size", `Prints the size of files
		# Args
		input The files to measure
		--min -m Skip files smaller than this, such as 10kB`,
		call.Handler2(size,
			call.Input(coerce.ListOf(coerce.Path())),
			call.Named("min", coerce.OptionalOf(coerce.Size())),
		))

	return p
}

func hello(ctx context.Context, e call.Environ, name string, times *uint32, shout bool, level *int) error {
	n := uint32(1)
	if times != nil {
		n = *times
	}
	e.Logger.Debug("hello", "name", name, "times", n, "shout", shout)

	greeting := "Hello " + name
	if shout {
		greeting = strings.ToUpper(greeting) + "!"
	}
	for i := uint32(1); i <= n; i++ {
		switch {
		case level == nil:
			fmt.Fprintln(e.Stdout, greeting)
		case *level == 1:
			fmt.Fprintf(e.Stdout, "[%d] %s\n", i, greeting)
		default:
			fmt.Fprintf(e.Stdout, "[%d/%d] %s\n", i, n, greeting)
		}
	}
	return nil
}

func goodbye(ctx context.Context, e call.Environ, name string) error {
	_, err := fmt.Fprintln(e.Stdout, "Goodbye", name)
	return err
}

func eval(ctx context.Context, e call.Environ, expression string, vars *[]string, format *string, timeout *time.Duration) error {
	env := map[string]any{}
	if vars != nil {
		for _, v := range *vars {
			name, value, ok := strings.Cut(v, "=")
			if !ok || name == "" {
				return fmt.Errorf("var %q: expected name=value", v)
			}
			env[name] = typed(value)
		}
	}

	prog, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return err
	}
	if timeout != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}
	out, err := runExpr(ctx, prog, env)
	if err != nil {
		return err
	}

	if format != nil && *format == "json" {
		return json.NewEncoder(e.Stdout).Encode(out)
	}
	_, err = fmt.Fprintln(e.Stdout, out)
	return err
}

// runExpr abandons the evaluation once ctx is done.
func runExpr(ctx context.Context, prog *vm.Program, env map[string]any) (any, error) {
	type result struct {
		out any
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := expr.Run(prog, env)
		done <- result{out, err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.out, r.err
	}
}

func typed(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func size(ctx context.Context, e call.Environ, files []string, atLeast *uint64) error {
	var total uint64
	for _, name := range files {
		fi, err := os.Stat(name)
		if err != nil {
			return err
		}
		n := uint64(fi.Size())
		if atLeast != nil && n < *atLeast {
			e.Logger.Debug("skip", "file", name, "size", n)
			continue
		}
		total += n
		fmt.Fprintf(e.Stdout, "%s\t%s\n", name, humanize.Bytes(n))
	}
	fmt.Fprintf(e.Stdout, "total\t%s\n", humanize.Bytes(total))
	return nil
}
