package argv

import (
	"slices"
	"testing"
)

type occurrence struct {
	value    string
	hasValue bool
}

var (
	val  = func(v string) occurrence { return occurrence{v, true} }
	flag = occurrence{}
)

func fold(occs ...occurrence) Item {
	var it Item
	for _, o := range occs {
		it = it.Fold(o.value, o.hasValue)
	}
	return it
}

func TestFold(t *testing.T) {
	for _, tt := range []struct {
		Name string
		Occs []occurrence
		Want Item
	}{
		{"value", []occurrence{val("a")}, String("a")},
		{"flag", []occurrence{flag}, Present()},
		{"value value", []occurrence{val("a"), val("b")}, Many("a", "b")},
		{"value flag", []occurrence{val("a"), flag}, Many("a", "")},
		{"flag value", []occurrence{flag, val("b")}, Many("", "b")},
		{"flag flag", []occurrence{flag, flag}, PresentTimes(2)},
		{"flag*3 value", []occurrence{flag, flag, flag, val("v")}, Many("", "", "", "v")},
		{"flag*3 flag", []occurrence{flag, flag, flag, flag}, PresentTimes(4)},
		{"many value", []occurrence{val("a"), val("b"), val("c")}, Many("a", "b", "c")},
		{"many flag", []occurrence{val("a"), val("b"), flag}, Many("a", "b", "")},
		{"empty value", []occurrence{val("")}, String("")},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			if got := fold(tt.Occs...); !got.Equal(tt.Want) {
				t.Error("got", got, "want", tt.Want)
			}
		})
	}
}

func TestFoldAssociative(t *testing.T) {
	all := []occurrence{val("a"), flag, val(""), val("b")}
	// every sequence of three occurrences drawn from all
	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				one := fold(a, b, c)
				two := fold(a, b).Fold(c.value, c.hasValue)
				if !one.Equal(two) {
					t.Errorf("%v %v %v: got %v and %v", a, b, c, one, two)
				}
			}
		}
	}
}

func TestFoldDoesNotAlias(t *testing.T) {
	base := Many("a", "b")
	base.Values = slices.Grow(base.Values, 4)
	x := base.Fold("x", true)
	y := base.Fold("y", true)
	if x.Values[2] != "x" || y.Values[2] != "y" {
		t.Error("aliased: got", x, y)
	}
	if len(base.Values) != 2 {
		t.Error("base modified:", base)
	}
}

func TestFoldMonotonic(t *testing.T) {
	// once a value has been seen the item never returns to a valueless kind
	it := fold(val("a"))
	for i := 0; i < 5; i++ {
		it = it.Fold("", false)
		if it.Kind != KindMany {
			t.Fatalf("after %d flags: got %v", i+1, it)
		}
	}
	if got := len(it.Values); got != 6 {
		t.Error("values: got", got, "want", 6)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindString:       "string",
		KindMany:         "list",
		KindPresent:      "flag",
		KindPresentTimes: "repeated flag",
		Kind(9):          "Kind(9)",
	} {
		if got := k.String(); got != want {
			t.Error("kind: got", got, "want", want)
		}
	}
}
