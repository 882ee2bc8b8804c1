package actions

import (
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

var identitySingleton = &identityAction{}

// Identity returns the action that leaves matched tokens unchanged.
func Identity() TokenAction {
	return identitySingleton
}

type identityAction struct{}

func (a *identityAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply("Identity", m, ctx)
	return m.Tokens
}

func (a *identityAction) String() string {
	return "identity"
}
