package rules

import (
	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
)

// Lookahead returns a zero-width rule asserting that sub matches the
// upcoming tokens, current token included. The stream never moves.
func Lookahead(sub TokenRule) TokenRule {
	mustRule("Lookahead", sub)
	return &lookaroundRule{name: "lookahead", sub: sub, view: ahead}
}

// Lookbehind returns a zero-width rule asserting that sub matches the
// tokens before the cursor, nearest first. A Value rule inside a
// lookbehind therefore tests the token just passed.
func Lookbehind(sub TokenRule) TokenRule {
	mustRule("Lookbehind", sub)
	return &lookaroundRule{name: "lookbehind", sub: sub, view: behind}
}

func ahead(s stream.TokenStream) stream.TokenStream {
	return s.CopyWithCurrentIndex()
}

func behind(s stream.TokenStream) stream.TokenStream {
	return s.Lookbehind().CopyWithCurrentIndex()
}

type lookaroundRule struct {
	name string
	sub  TokenRule
	view func(stream.TokenStream) stream.TokenStream
}

func (r *lookaroundRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if debug.Rules() {
		debug.Logf("%s at %d\n", r, s.Index())
	}
	if m := r.sub.Match(r.view(s), ctx); m == nil {
		return nil
	}
	at := s.Index()
	return &Match{StartIndex: at, EndIndex: at, Rule: r}
}

func (r *lookaroundRule) Not() TokenRule {
	return notOf(r)
}

func (r *lookaroundRule) String() string {
	return r.name + "(" + r.sub.String() + ")"
}
