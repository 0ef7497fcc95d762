package run

import (
	"io"
	"log/slog"
	"os"

	"github.com/LaSpruca/argster/call"
)

// DefaultEnviron returns the process's arguments, standard streams and
// environment.
func DefaultEnviron() (env Environ) {
	env.fillDefaults()
	return env
}

// Environ is everything MainEnv reads from the process. Nil fields are
// filled from os.
type Environ struct {
	Args      []string
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Getenv    func(string) string
	LookupEnv func(string) (string, bool)
}

func (e *Environ) fillDefaults() {
	if e.Args == nil {
		e.Args = os.Args
	}
	if e.Stdin == nil {
		e.Stdin = os.Stdin
	}
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	switch {
	case e.Getenv == nil && e.LookupEnv == nil:
		e.Getenv, e.LookupEnv = os.Getenv, os.LookupEnv
	case e.LookupEnv == nil:
		getenv := e.Getenv
		e.LookupEnv = func(k string) (string, bool) {
			v := getenv(k)
			return v, v != ""
		}
	case e.Getenv == nil:
		lookup := e.LookupEnv
		e.Getenv = func(k string) string {
			v, _ := lookup(k)
			return v
		}
	}
}

// handlerEnviron is what handlers of a call.Program see.
func (e Environ) handlerEnviron(logger *slog.Logger) call.Environ {
	return call.Environ{
		Stdin:  e.Stdin,
		Stdout: e.Stdout,
		Stderr: e.Stderr,
		Logger: logger,
	}
}
