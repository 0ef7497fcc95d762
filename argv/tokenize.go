package argv

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Positional is the key shared by every token without a leading dash.
const Positional = ""

// Set maps argument keys to their folded occurrences.
type Set map[string]Item

// Tokenize folds tokens into a Set.
//
//   - --key consumes the next token as its value unless it starts with -
//   - -k behaves like --k
//   - -kvalue is key k with value "value"; no lookahead
//   - a bare - is ignored
//   - anything else is a value for the Positional key
func Tokenize(tokens []string) Set {
	set := make(Set)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		var key, value string
		var hasValue bool
		if long, ok := strings.CutPrefix(tok, "--"); ok {
			key = long
			value, hasValue = lookahead(tokens, &i)
		} else if short, ok := strings.CutPrefix(tok, "-"); ok {
			if short == "" {
				continue
			}
			_, size := utf8.DecodeRuneInString(short)
			if key = short[:size]; len(short) == size {
				value, hasValue = lookahead(tokens, &i)
			} else {
				value, hasValue = short[size:], true
			}
		} else {
			key, value, hasValue = Positional, tok, true
		}
		set.Add(key, value, hasValue)
	}
	return set
}

// lookahead consumes the token after *i as a value unless it looks like a flag.
func lookahead(tokens []string, i *int) (string, bool) {
	if next := *i + 1; next < len(tokens) && !strings.HasPrefix(tokens[next], "-") {
		*i = next
		return tokens[next], true
	}
	return "", false
}

// Add folds one occurrence of key into the set.
func (s Set) Add(key, value string, hasValue bool) {
	s[key] = s[key].Fold(value, hasValue)
}

// Lookup returns the item for long, falling back to short when long is absent.
// It returns nil when neither key was seen.
func (s Set) Lookup(long, short string) *Item {
	if it, ok := s[long]; ok {
		return &it
	}
	if short == "" {
		return nil
	}
	if it, ok := s[short]; ok {
		return &it
	}
	return nil
}

// Has reports whether any of keys was seen.
func (s Set) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := s[k]; ok {
			return true
		}
	}
	return false
}

// Keys returns the seen keys in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
