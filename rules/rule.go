package rules

import (
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

// TokenRule matches zero or more tokens at a stream's cursor.
type TokenRule interface {
	// Match returns the consumed span, or nil for no-match. The stream
	// cursor advances past the span on success and stays put on
	// failure.
	Match(s stream.TokenStream, ctx *Context) *Match

	// Not returns the rule's negation: a zero-width rule succeeding
	// exactly where the receiver fails. Negating twice restores the
	// original rule.
	Not() TokenRule

	String() string
}

// Match describes a successful rule application. Indexes are raw
// stream indexes: the span [StartIndex, EndIndex) covers exactly the
// consumed tokens, interior shadows included. The stream cursor may
// sit past EndIndex when shadows trail the span, since advancing
// normalizes past them.
type Match struct {
	StartIndex int
	EndIndex   int
	Tokens     []token.Token
	Rule       TokenRule
}

// IsZeroWidth reports whether the match consumed no tokens.
func (m *Match) IsZeroWidth() bool {
	return m.StartIndex == m.EndIndex
}

// Text concatenates the matched token values.
func (m *Match) Text() string {
	return token.Text(m.Tokens)
}

// newMatch builds the match for a rule that committed progress on s
// from start. Shadows trailing the consumed span belong to whatever
// comes next, so they are excluded from the span end.
func newMatch(r TokenRule, s stream.TokenStream, start int, toks []token.Token) *Match {
	end := s.Index()
	all := s.All()
	for end > start && token.IsShadow(all[end-1]) {
		end--
	}
	return &Match{StartIndex: start, EndIndex: end, Tokens: toks, Rule: r}
}

func mustRule(name string, r TokenRule) {
	if r == nil {
		panic("rules: " + name + " requires a non-nil rule")
	}
}

func mustRules(name string, rs []TokenRule) {
	if len(rs) == 0 {
		panic("rules: " + name + " requires at least one rule")
	}
	for _, r := range rs {
		mustRule(name, r)
	}
}

func mustKey(name, key string) {
	if key == "" {
		panic("rules: " + name + " requires a non-empty key")
	}
}
