package actions

import (
	"fmt"

	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

// Index returns the action wrapping each matched token with its
// position within the match, counting from start. Tokens that already
// carry an index pass through unchanged, so re-applying the action is
// a no-op.
func Index(start int) TokenAction {
	if start < 0 {
		panic("actions: Index requires start >= 0")
	}
	return &indexAction{start: start}
}

type indexAction struct {
	start int
}

func (a *indexAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply("Index", m, ctx)
	trace(a, m)
	out := make([]token.Token, len(m.Tokens))
	for i, t := range m.Tokens {
		if _, ok := token.IndexOf(t); ok {
			out[i] = t
			continue
		}
		out[i] = token.WithIndex(t, a.start+i)
	}
	return out
}

func (a *indexAction) String() string {
	return fmt.Sprintf("index(%d)", a.start)
}
