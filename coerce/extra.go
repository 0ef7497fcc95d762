package coerce

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ErrNotInEnum reports a value outside an enumeration.
type ErrNotInEnum[T any] struct {
	Got  T
	Want []T
}

func (e ErrNotInEnum[T]) Error() string {
	if len(e.Want) < 8 {
		n := make([]string, len(e.Want))
		for i, w := range e.Want {
			n[i] = strconv.Quote(fmt.Sprint(w))
		}
		return strconv.Quote(fmt.Sprint(e.Got)) + " not one of " + strings.Join(n, ", ")
	}
	return strconv.Quote(fmt.Sprint(e.Got)) + " unsupported value"
}

// OneOf accepts a single value that must be one of names.
func OneOf[T ~string](names ...T) Coercer[T] {
	names = slices.Clone(names)
	desc := make([]string, len(names))
	for i, n := range names {
		desc[i] = string(n)
	}
	meta := Meta{Name: typeName[T]("string"), Desc: "<" + strings.Join(desc, "|") + ">"}
	return Func(meta, func(s string) (T, error) {
		if !slices.Contains(names, T(s)) {
			return "", ErrNotInEnum[T]{T(s), names}
		}
		return T(s), nil
	})
}

// Size accepts a byte count with an optional unit, such as 512, 10kB or 4 MiB.
func Size() Coercer[uint64] {
	return Func(Meta{Name: "size", Desc: "<size, e.g. 10MB>"}, humanize.ParseBytes)
}

// Duration accepts a value parsed by time.ParseDuration, such as 1m30s.
func Duration() Coercer[time.Duration] {
	return Func(Meta{Name: "duration", Desc: "<duration, e.g. 1m30s>"}, time.ParseDuration)
}
