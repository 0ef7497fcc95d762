package call

import (
	"context"

	"github.com/LaSpruca/argster/argv"
	"github.com/LaSpruca/argster/coerce"
	"github.com/LaSpruca/argster/schema"
)

// Arg declares one handler parameter: where its value comes from and how it
// is coerced.
type Arg[T any] struct {
	long string
	c    coerce.Coercer[T]
}

// Input declares the parameter receiving the positional values.
func Input[T any](c coerce.Coercer[T]) Arg[T] { return Arg[T]{schema.Input, c} }

// Named declares a parameter given as --long. Its short alias and
// description come from the command's documentation.
func Named[T any](long string, c coerce.Coercer[T]) Arg[T] { return Arg[T]{long, c} }

func (a Arg[T]) name() string      { return a.long }
func (a Arg[T]) meta() coerce.Meta { return a.c.Meta() }

func (a Arg[T]) coerce(item *argv.Item) (any, error) {
	v, err := a.c.Coerce(item)
	if err != nil {
		return nil, err
	}
	return v, nil
}

type param interface {
	name() string
	meta() coerce.Meta
	coerce(*argv.Item) (any, error)
}

// Handler is a handler function together with its parameter declarations.
type Handler struct {
	args   []param
	invoke func(context.Context, Environ, []any) error
}

// Handler0 adapts a func(Context, Environ) for (*Program).Command.
func Handler0(handler func(context.Context, Environ) error) Handler {
	return Handler{
		invoke: func(ctx context.Context, e Environ, _ []any) error {
			return handler(ctx, e)
		},
	}
}

// Handler1 adapts a func(Context, Environ, T1) for (*Program).Command.
// T1 is coerced as declared by a1.
func Handler1[T1 any](
	handler func(context.Context, Environ, T1) error, a1 Arg[T1],
) Handler {
	return Handler{
		args: []param{a1},
		invoke: func(ctx context.Context, e Environ, v []any) error {
			return handler(ctx, e, v[0].(T1))
		},
	}
}

// Handler2 adapts a func(Context, Environ, T1, T2) for (*Program).Command.
// T1, T2 are coerced as declared by a1, a2.
func Handler2[T1, T2 any](
	handler func(context.Context, Environ, T1, T2) error, a1 Arg[T1], a2 Arg[T2],
) Handler {
	return Handler{
		args: []param{a1, a2},
		invoke: func(ctx context.Context, e Environ, v []any) error {
			return handler(ctx, e, v[0].(T1), v[1].(T2))
		},
	}
}

// Handler3 adapts a func(Context, Environ, T1...T3) for (*Program).Command.
// T1...T3 are coerced as declared by a1...a3.
func Handler3[T1, T2, T3 any](
	handler func(context.Context, Environ, T1, T2, T3) error, a1 Arg[T1], a2 Arg[T2], a3 Arg[T3],
) Handler {
	return Handler{
		args: []param{a1, a2, a3},
		invoke: func(ctx context.Context, e Environ, v []any) error {
			return handler(ctx, e, v[0].(T1), v[1].(T2), v[2].(T3))
		},
	}
}

// Handler4 adapts a func(Context, Environ, T1...T4) for (*Program).Command.
// T1...T4 are coerced as declared by a1...a4.
func Handler4[T1, T2, T3, T4 any](
	handler func(context.Context, Environ, T1, T2, T3, T4) error, a1 Arg[T1], a2 Arg[T2], a3 Arg[T3], a4 Arg[T4],
) Handler {
	return Handler{
		args: []param{a1, a2, a3, a4},
		invoke: func(ctx context.Context, e Environ, v []any) error {
			return handler(ctx, e, v[0].(T1), v[1].(T2), v[2].(T3), v[3].(T4))
		},
	}
}

// Handler5 adapts a func(Context, Environ, T1...T5) for (*Program).Command.
// T1...T5 are coerced as declared by a1...a5.
func Handler5[T1, T2, T3, T4, T5 any](
	handler func(context.Context, Environ, T1, T2, T3, T4, T5) error, a1 Arg[T1], a2 Arg[T2], a3 Arg[T3], a4 Arg[T4], a5 Arg[T5],
) Handler {
	return Handler{
		args: []param{a1, a2, a3, a4, a5},
		invoke: func(ctx context.Context, e Environ, v []any) error {
			return handler(ctx, e, v[0].(T1), v[1].(T2), v[2].(T3), v[3].(T4), v[4].(T5))
		},
	}
}

// Handler6 adapts a func(Context, Environ, T1...T6) for (*Program).Command.
// T1...T6 are coerced as declared by a1...a6.
func Handler6[T1, T2, T3, T4, T5, T6 any](
	handler func(context.Context, Environ, T1, T2, T3, T4, T5, T6) error, a1 Arg[T1], a2 Arg[T2], a3 Arg[T3], a4 Arg[T4], a5 Arg[T5], a6 Arg[T6],
) Handler {
	return Handler{
		args: []param{a1, a2, a3, a4, a5, a6},
		invoke: func(ctx context.Context, e Environ, v []any) error {
			return handler(ctx, e, v[0].(T1), v[1].(T2), v[2].(T3), v[3].(T4), v[4].(T5), v[5].(T6))
		},
	}
}
