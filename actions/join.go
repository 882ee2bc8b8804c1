package actions

import (
	"fmt"
	"strings"

	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

// Join returns the action concatenating all matched token values with
// delimiter into a single token, for contexts that want one flat value
// rather than a token list. A match with no tokens yields an empty
// result.
func Join(delimiter string) TokenAction {
	return &joinAction{delimiter: delimiter}
}

type joinAction struct {
	delimiter string
}

func (a *joinAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply("Join", m, ctx)
	trace(a, m)
	if len(m.Tokens) == 0 {
		return nil
	}
	value := strings.Join(token.Values(m.Tokens), a.delimiter)
	joined := token.NewAt(value, token.Any(), m.Tokens[0].Pos())
	return []token.Token{joined}
}

func (a *joinAction) String() string {
	return fmt.Sprintf("join(%q)", a.delimiter)
}
