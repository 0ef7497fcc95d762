// Package run connects a call.Program to the process: arguments, standard
// streams, logging configured from the environment, and the exit code.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/LaSpruca/argster/call"
)

// Main runs p with the process environment and returns its exit code.
// Interrupts cancel the handler's context.
func Main(p *call.Program) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return MainEnv(ctx, p, DefaultEnviron())
}

// MainEnv runs p with env and returns its exit code.
//
//	0   success, or help was shown
//	1   the handler failed
//	2   the command line could not be parsed
//	70  the program's commands are defined incorrectly
//	78  the logging environment is invalid
func MainEnv(ctx context.Context, p *call.Program, env Environ) int {
	env.fillDefaults()
	cfg, err := ConfigFromEnv(env)
	if err != nil {
		Ferror(env.Stderr, p.Name, err)
		return exitCode(err)
	}

	logger, closer := NewLogger(cfg, env.Stderr)
	defer closer.Close()

	p.Environ = env.handlerEnviron(logger)
	p.NoColor = p.NoColor || cfg.NoColor
	logger.Debug("start", "program", p.Name, "version", p.Version, "args", env.Args)

	err = p.Main(ctx, env.Args)
	code := exitCode(err)
	logger.Debug("exit", "code", code)
	return code
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec interface{ ExitCode() int }
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

// Ferror writes err to w prefixed by the program name.
func Ferror(w io.Writer, name string, err error) {
	fmt.Fprintf(w, "%s: error: %v\n", name, err)
}
