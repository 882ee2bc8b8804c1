package token

import (
	"fmt"
	"regexp"
	"unicode"
)

// Definition is a predicate over token text. Definitions classify tokens;
// they carry no matching logic of their own beyond the predicate.
type Definition interface {
	Matches(value string) bool
}

// DefinitionFunc adapts a plain function to a Definition.
type DefinitionFunc func(string) bool

func (f DefinitionFunc) Matches(value string) bool { return f(value) }

type anyDef struct{}

func (anyDef) Matches(string) bool { return true }
func (anyDef) String() string      { return "any" }

// Any accepts every value.
func Any() Definition { return anyDef{} }

type wordDef string

func (w wordDef) Matches(value string) bool { return string(w) == value }
func (w wordDef) String() string            { return fmt.Sprintf("word(%q)", string(w)) }

// Word accepts exactly the given text.
func Word(text string) Definition { return wordDef(text) }

type patternDef struct {
	re *regexp.Regexp
}

func (p patternDef) Matches(value string) bool {
	loc := p.re.FindStringIndex(value)
	return loc != nil && loc[0] == 0 && loc[1] == len(value)
}

func (p patternDef) String() string { return fmt.Sprintf("pattern(%s)", p.re) }

// Pattern accepts values the expression matches in full. It panics if the
// expression does not compile.
func Pattern(expr string) Definition {
	return PatternOf(regexp.MustCompile(expr))
}

// PatternOf accepts values re matches in full.
func PatternOf(re *regexp.Regexp) Definition {
	if re == nil {
		panic("token: nil pattern")
	}
	return patternDef{re: re}
}

type classDef struct {
	name string
	is   func(rune) bool
}

func (c classDef) Matches(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if !c.is(r) {
			return false
		}
	}
	return true
}

func (c classDef) String() string { return c.name }

// Digits accepts non-empty runs of digit runes.
func Digits() Definition {
	return classDef{name: "digits", is: unicode.IsDigit}
}

// Letters accepts non-empty runs of letter runes.
func Letters() Definition {
	return classDef{name: "letters", is: unicode.IsLetter}
}

// Whitespace accepts non-empty runs of whitespace runes.
func Whitespace() Definition {
	return classDef{name: "whitespace", is: unicode.IsSpace}
}

// WordChars accepts non-empty runs of letters, digits and underscores.
func WordChars() Definition {
	return classDef{name: "wordchars", is: func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}}
}
