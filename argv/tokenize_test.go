package argv_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LaSpruca/argster/argv"
)

func TestTokenize(t *testing.T) {
	for _, tt := range []struct {
		Args string
		Want argv.Set
	}{
		{"--hello", argv.Set{"hello": argv.Present()}},
		{"--hello world", argv.Set{"hello": argv.String("world")}},
		{"hello world", argv.Set{"": argv.Many("hello", "world")}},
		{"-hworld yes -v -p other", argv.Set{
			"h": argv.String("world"),
			"":  argv.String("yes"),
			"v": argv.Present(),
			"p": argv.String("other"),
		}},
		{"-v -v -v", argv.Set{"v": argv.PresentTimes(3)}},
		{"-v --v", argv.Set{"v": argv.PresentTimes(2)}},
		{"-n 1 -n2 -n", argv.Set{"n": argv.Many("1", "2", "")}},
		{"--a --b", argv.Set{"a": argv.Present(), "b": argv.Present()}},
		{"--a -1", argv.Set{"a": argv.Present(), "1": argv.Present()}},
		{"--a -", argv.Set{"a": argv.Present()}},
		{"- x", argv.Set{"": argv.String("x")}},
		{"-x -", argv.Set{"x": argv.Present()}},
		{"-éclair", argv.Set{"é": argv.String("clair")}},
		{"-- x", argv.Set{"": argv.String("x")}},
		{"--key=value", argv.Set{"key=value": argv.Present()}},
		{"", argv.Set{}},
	} {
		t.Run(tt.Args, func(t *testing.T) {
			got := argv.Tokenize(strings.Fields(tt.Args))
			if diff := cmp.Diff(tt.Want, got); diff != "" {
				t.Errorf("Tokenize(%q) (-want +got):\n%s", tt.Args, diff)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	args := strings.Fields("hello -v --name a -n b -v world -xyz --flag")
	first := argv.Tokenize(args)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, argv.Tokenize(args)); diff != "" {
			t.Fatalf("retokenize %d (-first +got):\n%s", i, diff)
		}
	}
}

func TestTokenizeDoesNotModifyInput(t *testing.T) {
	args := []string{"--a", "b", "-cd", "e"}
	argv.Tokenize(args)
	if got := strings.Join(args, " "); got != "--a b -cd e" {
		t.Error("args: got", got)
	}
}

func TestLookup(t *testing.T) {
	set := argv.Tokenize(strings.Fields("--number 3 -n 4 -v"))
	for _, tt := range []struct {
		Long, Short string
		Want        string
	}{
		{"number", "n", `String("3")`},
		{"missing", "n", `String("4")`},
		{"missing", "v", "Present"},
		{"missing", "", "Absent"},
		{"missing", "x", "Absent"},
	} {
		got := "Absent"
		if it := set.Lookup(tt.Long, tt.Short); it != nil {
			got = it.String()
		}
		if got != tt.Want {
			t.Errorf("Lookup(%q, %q): got %s want %s", tt.Long, tt.Short, got, tt.Want)
		}
	}
}

func TestHas(t *testing.T) {
	set := argv.Tokenize(strings.Fields("cmd -h"))
	if !set.Has("help", "h") {
		t.Error("Has(help, h): got false")
	}
	if set.Has("help") {
		t.Error("Has(help): got true")
	}
}

func ExampleTokenize() {
	set := argv.Tokenize([]string{"greet", "-v", "-v", "--name", "world", "-ttrue"})
	for _, key := range set.Keys() {
		fmt.Printf("%q: %v\n", key, set[key])
	}
	// output:
	// "": String("greet")
	// "name": String("world")
	// "t": String("true")
	// "v": PresentTimes(2)
}
