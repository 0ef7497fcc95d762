package coerce

import (
	"strings"

	"github.com/LaSpruca/argster/argv"
)

// OptionalOf returns nil for an absent argument, and otherwise the result of c.
func OptionalOf[T any](c Coercer[T]) Coercer[*T] { return optional[T]{c} }

type optional[T any] struct{ c Coercer[T] }

func (o optional[T]) Meta() Meta {
	m := o.c.Meta()
	m.Extra = Optional
	return m
}

func (o optional[T]) Coerce(item *argv.Item) (*T, error) {
	if item == nil {
		return nil, nil
	}
	v, err := o.c.Coerce(item)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListOf coerces each value with c. A single value is split on commas first,
// so "--n 1,2" and "--n 1 --n 2" are equivalent.
func ListOf[T any](c Coercer[T]) Coercer[[]T] { return list[T]{c} }

type list[T any] struct{ c Coercer[T] }

func (l list[T]) Meta() Meta {
	m := l.c.Meta()
	m.Extra = List
	return m
}

func (l list[T]) Coerce(item *argv.Item) ([]T, error) {
	if item == nil {
		return nil, NotFoundError{}
	}
	var values []string
	switch item.Kind {
	case argv.KindString:
		values = strings.Split(item.Value, ",")
	case argv.KindMany:
		values = item.Values
	default:
		return nil, found(l.Meta(), *item)
	}
	out := make([]T, len(values))
	for i, s := range values {
		it := argv.String(s)
		v, err := l.c.Coerce(&it)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
