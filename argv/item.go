// Package argv turns raw process arguments into an order-independent set of
// untyped items, one per distinct argument key.
package argv

import (
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the shape of an Item.
type Kind uint8

const (
	KindString       Kind = iota + 1 // seen once with a value
	KindMany                         // seen more than once, at least one with a value
	KindPresent                      // seen once without a value
	KindPresentTimes                 // seen more than once, never with a value
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindMany:
		return "list"
	case KindPresent:
		return "flag"
	case KindPresentTimes:
		return "repeated flag"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Item is the raw result of all occurrences of one argument key.
//
// Only the fields relevant to Kind are set: Value for KindString, Values for
// KindMany, and Times for KindPresentTimes.
type Item struct {
	Kind   Kind
	Value  string
	Values []string
	Times  int
}

func String(v string) Item       { return Item{Kind: KindString, Value: v} }
func Many(vs ...string) Item     { return Item{Kind: KindMany, Values: vs} }
func Present() Item              { return Item{Kind: KindPresent} }
func PresentTimes(n int) Item    { return Item{Kind: KindPresentTimes, Times: n} }
func (i Item) Is(k Kind) bool    { return i.Kind == k }
func (i Item) IsZero() bool      { return i.Kind == 0 }
func (i Item) Describe() string  { return i.Kind.String() }
func (i Item) Equal(o Item) bool { return i.String() == o.String() }

// Occurrence returns the item for a key seen exactly once.
func Occurrence(value string, hasValue bool) Item {
	if hasValue {
		return String(value)
	}
	return Present()
}

// Fold records one more occurrence of the key i describes.
//
// A key that has ever carried a value keeps an empty placeholder for each
// valueless occurrence, so Fold never discards an occurrence.
func (i Item) Fold(value string, hasValue bool) Item {
	switch i.Kind {
	case 0:
		return Occurrence(value, hasValue)
	case KindString:
		return Many(i.Value, value)
	case KindMany:
		return Many(append(slices.Clip(i.Values), value)...)
	case KindPresent:
		if hasValue {
			return Many("", value)
		}
		return PresentTimes(2)
	case KindPresentTimes:
		if hasValue {
			vs := make([]string, i.Times, i.Times+1)
			return Many(append(vs, value)...)
		}
		return PresentTimes(i.Times + 1)
	}
	panic("argv: fold of " + i.Kind.String())
}

// String renders the item the way it would be written in a test expectation.
func (i Item) String() string {
	switch i.Kind {
	case KindString:
		return "String(" + strconv.Quote(i.Value) + ")"
	case KindMany:
		q := make([]string, len(i.Values))
		for n, v := range i.Values {
			q[n] = strconv.Quote(v)
		}
		return "Many([" + strings.Join(q, ", ") + "])"
	case KindPresent:
		return "Present"
	case KindPresentTimes:
		return "PresentTimes(" + strconv.Itoa(i.Times) + ")"
	}
	return "Absent"
}
