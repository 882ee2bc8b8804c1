package rules

import (
	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
)

// Optional returns a rule that matches sub when it can and otherwise
// succeeds zero-width.
func Optional(sub TokenRule) TokenRule {
	mustRule("Optional", sub)
	return &optionalRule{sub: sub}
}

type optionalRule struct {
	sub TokenRule
}

func (r *optionalRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if debug.Rules() {
		debug.Logf("%s at %d\n", r, s.Index())
	}
	if m := r.sub.Match(s, ctx); m != nil {
		return m
	}
	at := s.Index()
	return &Match{StartIndex: at, EndIndex: at, Rule: r}
}

func (r *optionalRule) Not() TokenRule {
	return notOf(r)
}

func (r *optionalRule) String() string {
	return "optional(" + r.sub.String() + ")"
}
