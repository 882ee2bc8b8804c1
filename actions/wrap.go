package actions

import (
	"fmt"

	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

// Wrap returns the action placing prefix before and suffix after the
// matched tokens, which stay untouched in between.
func Wrap(prefix, suffix token.Token) TokenAction {
	if prefix == nil || suffix == nil {
		panic("actions: Wrap requires non-nil prefix and suffix tokens")
	}
	return &wrapAction{prefix: prefix, suffix: suffix}
}

type wrapAction struct {
	prefix, suffix token.Token
}

func (a *wrapAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply("Wrap", m, ctx)
	trace(a, m)
	out := make([]token.Token, 0, len(m.Tokens)+2)
	out = append(out, a.prefix)
	out = append(out, m.Tokens...)
	out = append(out, a.suffix)
	return out
}

func (a *wrapAction) String() string {
	return fmt.Sprintf("wrap(%q, %q)", a.prefix.Value(), a.suffix.Value())
}
