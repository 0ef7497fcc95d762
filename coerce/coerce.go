// Package coerce converts untyped argument items into typed values.
//
// Each supported type has a Coercer whose Meta describes the type without
// needing a value, so help output can list a parameter's type name,
// description and modifier (required, optional, flag or list) generically.
package coerce

import "github.com/LaSpruca/argster/argv"

// Modifiers reported in Meta.Extra.
const (
	Required = "required"
	Optional = "optional"
	Flag     = "flag"
	List     = "list"
)

// Meta is the static description of a coercible type.
type Meta struct {
	Name  string // e.g. "uint32"
	Desc  string // e.g. "<positive number>"
	Extra string // one of Required, Optional, Flag, List
}

// A Coercer converts the item seen for an argument into a T.
// A nil item means the argument was not given.
type Coercer[T any] interface {
	Coerce(item *argv.Item) (T, error)
	Meta() Meta
}

// Func adapts a conversion of single string values into a Coercer.
// Items other than a single value are rejected with an InvalidTypeError.
func Func[T any](meta Meta, parse func(string) (T, error)) Coercer[T] {
	if meta.Extra == "" {
		meta.Extra = Required
	}
	return scalar[T]{meta, parse}
}

type scalar[T any] struct {
	meta  Meta
	parse func(string) (T, error)
}

func (s scalar[T]) Meta() Meta { return s.meta }

func (s scalar[T]) Coerce(item *argv.Item) (T, error) {
	var zero T
	switch {
	case item == nil:
		return zero, NotFoundError{}
	case item.Kind != argv.KindString:
		return zero, found(s.meta, *item)
	}
	v, err := s.parse(item.Value)
	if err != nil {
		return zero, parseFailed(s.meta, err)
	}
	return v, nil
}
