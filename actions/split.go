package actions

import (
	"fmt"
	"regexp"

	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

// Split returns the action splitting every matched token's text on the
// expression, producing a flat sequence of fresh tokens. Empty parts
// are kept, so delimiters at the edges and doubled delimiters yield
// empty tokens. Each part's definition comes from provider and its
// position is offset into the original token's position. Bad
// expressions panic, as with regexp.MustCompile.
func Split(expr string, provider token.DefinitionProvider) TokenAction {
	return SplitOf(regexp.MustCompile(expr), provider)
}

// SplitOf is Split for an already compiled expression.
func SplitOf(re *regexp.Regexp, provider token.DefinitionProvider) TokenAction {
	if re == nil {
		panic("actions: Split requires a non-nil pattern")
	}
	if provider == nil {
		panic("actions: Split requires a non-nil definition provider")
	}
	return &splitAction{re: re, provider: provider}
}

type splitAction struct {
	re       *regexp.Regexp
	provider token.DefinitionProvider
}

func (a *splitAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply("Split", m, ctx)
	trace(a, m)
	var out []token.Token
	for _, t := range m.Tokens {
		out = append(out, a.splitToken(t)...)
	}
	return out
}

func (a *splitAction) splitToken(t token.Token) []token.Token {
	text := t.Value()
	var parts []token.Token
	emit := func(from, to int) {
		value := text[from:to]
		pos := t.Pos().Advance(text[:from])
		parts = append(parts, token.NewAt(value, a.provider.Definition(value), pos))
	}
	prev := 0
	for _, sep := range a.re.FindAllStringIndex(text, -1) {
		emit(prev, sep[0])
		prev = sep[1]
	}
	emit(prev, len(text))
	return parts
}

func (a *splitAction) String() string {
	return fmt.Sprintf("split(%s)", a.re)
}
