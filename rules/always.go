package rules

import (
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

var alwaysSingleton = &alwaysRule{}

// AlwaysMatch returns the rule that consumes the current token when
// one exists and succeeds zero-width at end of stream.
func AlwaysMatch() TokenRule {
	return alwaysSingleton
}

type alwaysRule struct{}

func (r *alwaysRule) Match(s stream.TokenStream, ctx *Context) *Match {
	start := s.Index()
	cur, err := s.Current()
	if err != nil {
		return &Match{StartIndex: start, EndIndex: start, Rule: r}
	}
	s.Advance()
	return newMatch(r, s, start, []token.Token{cur})
}

func (r *alwaysRule) Not() TokenRule {
	return neverSingleton
}

func (r *alwaysRule) String() string {
	return "always"
}
