package actions

import (
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

// Annotate returns the action attaching meta to every matched token.
// Tokens that already carry annotations keep them; same-named keys are
// overwritten by meta.
func Annotate(meta map[string]any) TokenAction {
	if len(meta) == 0 {
		panic("actions: Annotate requires a non-empty metadata map")
	}
	return &annotateAction{meta: meta}
}

type annotateAction struct {
	meta map[string]any
}

func (a *annotateAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply("Annotate", m, ctx)
	trace(a, m)
	out := make([]token.Token, len(m.Tokens))
	for i, t := range m.Tokens {
		out[i] = token.Annotate(t, a.meta)
	}
	return out
}

func (a *annotateAction) String() string {
	return "annotate"
}
