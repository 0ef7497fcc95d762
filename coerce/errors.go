package coerce

import (
	"errors"
	"fmt"

	"github.com/LaSpruca/argster/argv"
)

// NotFoundError reports a required argument that was not given.
type NotFoundError struct {
	Arg string
}

func (e NotFoundError) Error() string {
	if e.Arg == "" {
		return "required argument not found"
	}
	return "required argument " + e.Arg + " not found"
}

// InvalidTypeError reports a given argument whose shape or text does not fit
// the expected type.
type InvalidTypeError struct {
	Arg      string
	Expected string // type description, e.g. "<number>"
	Found    string // item kind, or "string: " and the parse failure
	Err      error  // underlying parse failure, if any
}

func (e InvalidTypeError) Error() string {
	arg := e.Arg
	if arg == "" {
		arg = "argument"
	}
	return fmt.Sprintf("expected %s to be of type %s, but found %s", arg, e.Expected, e.Found)
}

func (e InvalidTypeError) Unwrap() error { return e.Err }

// Named returns err annotated with the argument name arg.
// Errors other than NotFoundError and InvalidTypeError are returned unchanged.
func Named(err error, arg string) error {
	if e, ok := err.(NotFoundError); ok || errors.As(err, &e) {
		e.Arg = arg
		return e
	}
	if e, ok := err.(InvalidTypeError); ok || errors.As(err, &e) {
		e.Arg = arg
		return e
	}
	return err
}

func found(meta Meta, item argv.Item) error {
	return InvalidTypeError{Expected: meta.Desc, Found: item.Describe()}
}

func parseFailed(meta Meta, err error) error {
	var ite InvalidTypeError
	if errors.As(err, &ite) {
		return ite
	}
	return InvalidTypeError{Expected: meta.Desc, Found: "string: " + err.Error(), Err: err}
}
