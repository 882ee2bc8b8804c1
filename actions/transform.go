package actions

import (
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

// Transform returns the action applying an arbitrary transform to the
// whole matched token list. It is the escape hatch for replacements
// the fixed variants cannot express.
func Transform(fn func([]token.Token) []token.Token) TokenAction {
	if fn == nil {
		panic("actions: Transform requires a non-nil function")
	}
	return &transformAction{fn: fn}
}

type transformAction struct {
	fn func([]token.Token) []token.Token
}

func (a *transformAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply("Transform", m, ctx)
	trace(a, m)
	return a.fn(m.Tokens)
}

func (a *transformAction) String() string {
	return "transform"
}
