package rules

import (
	"fmt"
	"regexp"

	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

// leafRule consumes exactly one token whose value satisfies a
// definition.
type leafRule struct {
	def   token.Definition
	label string
}

// Value returns a rule matching one token with exactly the given text.
func Value(text string) TokenRule {
	return &leafRule{def: token.Word(text), label: fmt.Sprintf("value(%q)", text)}
}

// Matching returns a rule matching one token whose value satisfies
// def.
func Matching(def token.Definition) TokenRule {
	if def == nil {
		panic("rules: Matching requires a non-nil definition")
	}
	return &leafRule{def: def, label: fmt.Sprintf("matching(%v)", def)}
}

// Pattern returns a rule matching one token whose whole value matches
// the expression. Bad expressions panic, as with regexp.MustCompile.
func Pattern(expr string) TokenRule {
	return &leafRule{def: token.Pattern(expr), label: fmt.Sprintf("pattern(%s)", expr)}
}

// PatternOf is Pattern for an already compiled expression.
func PatternOf(re *regexp.Regexp) TokenRule {
	if re == nil {
		panic("rules: PatternOf requires a non-nil pattern")
	}
	return &leafRule{def: token.PatternOf(re), label: fmt.Sprintf("pattern(%s)", re)}
}

func (r *leafRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if debug.Rules() {
		debug.Logf("%s at %d\n", r, s.Index())
	}
	cur, err := s.Current()
	if err != nil || !r.def.Matches(cur.Value()) {
		return nil
	}
	start := s.Index()
	s.Advance()
	return newMatch(r, s, start, []token.Token{cur})
}

func (r *leafRule) Not() TokenRule {
	return notOf(r)
}

func (r *leafRule) String() string {
	return r.label
}
