package actions

import (
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

// Convert returns the action applying mapper to every matched token
// independently. A mapper returning nil panics.
func Convert(mapper func(token.Token) token.Token) TokenAction {
	if mapper == nil {
		panic("actions: Convert requires a non-nil mapper")
	}
	return &convertAction{mapper: mapper}
}

type convertAction struct {
	mapper func(token.Token) token.Token
}

func (a *convertAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply("Convert", m, ctx)
	trace(a, m)
	out := make([]token.Token, len(m.Tokens))
	for i, t := range m.Tokens {
		mapped := a.mapper(t)
		if mapped == nil {
			panic("actions: Convert mapper returned a nil token")
		}
		out[i] = mapped
	}
	return out
}

func (a *convertAction) String() string {
	return "convert"
}
