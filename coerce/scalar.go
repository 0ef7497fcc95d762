package coerce

import (
	"errors"
	"fmt"
	"strconv"
	"reflect"
	"strings"

	"github.com/LaSpruca/argster/argv"
)

// String accepts a single value as is.
func String() Coercer[string] { return StringLike[string]() }

// StringLike is like String, for string-like types.
func StringLike[T ~string]() Coercer[T] {
	return Func(Meta{Name: typeName[T]("string"), Desc: "<string>"}, func(s string) (T, error) { return T(s), nil })
}

var (
	errEmptyPath = errors.New("empty path")
	errNULPath   = errors.New("path contains NUL byte")
)

// Path accepts a single value naming a filesystem path.
// Empty values and values containing NUL bytes are rejected.
func Path() Coercer[string] { return PathLike[string]() }

// PathLike is like Path, for string-like types.
func PathLike[T ~string]() Coercer[T] {
	return Func(Meta{Name: typeName[T]("path"), Desc: "<path>"}, func(s string) (T, error) {
		switch {
		case s == "":
			return "", errEmptyPath
		case strings.IndexByte(s, 0) >= 0:
			return "", errNULPath
		}
		return T(s), nil
	})
}

// Bool is true when the flag is present and false when it is absent.
// A value is parsed with strconv.ParseBool.
func Bool() Coercer[bool] { return BoolLike[bool]() }

// BoolLike is like Bool, for bool-like types.
func BoolLike[T ~bool]() Coercer[T] {
	return boolean[T]{Meta{Name: typeName[T]("bool"), Desc: "<true|false>", Extra: Flag}}
}

type boolean[T ~bool] struct{ meta Meta }

func (b boolean[T]) Meta() Meta { return b.meta }

func (b boolean[T]) Coerce(item *argv.Item) (T, error) {
	if item == nil {
		return false, nil
	}
	switch item.Kind {
	case argv.KindPresent:
		return true, nil
	case argv.KindString:
		v, err := strconv.ParseBool(item.Value)
		if err != nil {
			return false, parseFailed(b.meta, err)
		}
		return T(v), nil
	}
	return false, found(b.meta, *item)
}

type (
	signed   interface{ ~int | ~int8 | ~int16 | ~int32 | ~int64 }
	unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}
	float interface{ ~float32 | ~float64 }
)

// Int accepts a signed integer value, or counts a repeated flag.
func Int[T signed]() Coercer[T] {
	return number[T]{Meta{Name: typeName[T](""), Desc: "<number>", Extra: Required}, parseInt[T]}
}

// Uint accepts an unsigned integer value, or counts a repeated flag.
func Uint[T unsigned]() Coercer[T] {
	return number[T]{Meta{Name: typeName[T](""), Desc: "<positive number>", Extra: Required}, parseUint[T]}
}

// Float accepts a decimal value, or counts a repeated flag.
func Float[T float]() Coercer[T] {
	return number[T]{Meta{Name: typeName[T](""), Desc: "<decimal>", Extra: Required}, parseFloat[T]}
}

type number[T signed | unsigned | float] struct {
	meta  Meta
	parse func(string) (T, error)
}

func (n number[T]) Meta() Meta { return n.meta }

// Coerce converts a value, or the number of times a flag was repeated.
// A single valueless flag is not a number.
func (n number[T]) Coerce(item *argv.Item) (T, error) {
	if item == nil {
		return 0, NotFoundError{}
	}
	var s string
	switch item.Kind {
	case argv.KindString:
		s = item.Value
	case argv.KindPresentTimes:
		s = strconv.Itoa(item.Times)
	default:
		return 0, found(n.meta, *item)
	}
	v, err := n.parse(s)
	if err != nil {
		return 0, parseFailed(n.meta, err)
	}
	return v, nil
}

func parseInt[T signed](s string) (T, error) {
	var v T
	i, err := strconv.ParseInt(s, 10, bits[T]())
	if err != nil {
		return 0, numError(err, v)
	}
	return T(i), nil
}

func parseUint[T unsigned](s string) (T, error) {
	var v T
	i, err := strconv.ParseUint(s, 10, bits[T]())
	if err != nil {
		return 0, numError(err, v)
	}
	return T(i), nil
}

func parseFloat[T float](s string) (T, error) {
	var v T
	f, err := strconv.ParseFloat(s, bits[T]())
	if err != nil {
		return 0, numError(err, v)
	}
	return T(f), nil
}

// bits is the size of T, named types included.
func bits[T signed | unsigned | float]() int { return reflect.TypeFor[T]().Bits() }

func numError(err error, v any) error {
	if e, ok := err.(*strconv.NumError); ok || errors.As(err, &e) {
		return fmt.Errorf("parsing %q as %T: %w", e.Num, v, e.Err)
	}
	return err
}

// typeName is the name shown for T, or alias for T's underlying builtin.
func typeName[T any](alias string) string {
	var zero T
	name := fmt.Sprintf("%T", zero)
	if alias == "" || strings.Contains(name, ".") {
		return name
	}
	return alias
}
