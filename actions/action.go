package actions

import (
	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

// TokenAction produces the replacement tokens for a matched span.
type TokenAction interface {
	// Apply returns the tokens replacing the match. Callers treat the
	// result as read-only. Nil match or context panics.
	Apply(m *rules.Match, ctx *Context) []token.Token

	String() string
}

// Predicate selects tokens for the filtering actions.
type Predicate func(token.Token) bool

// Context gives actions read access to the stream a match came from,
// so span-level actions can see the raw backing, shadows included.
type Context struct {
	s stream.TokenStream
}

// NewContext returns a context over the matched stream.
func NewContext(s stream.TokenStream) *Context {
	if s == nil {
		panic("actions: NewContext requires a non-nil stream")
	}
	return &Context{s: s}
}

// Stream returns the matched stream.
func (c *Context) Stream() stream.TokenStream {
	return c.s
}

// Span returns the raw tokens between the match's start and end
// indexes, interior shadow tokens included.
func (c *Context) Span(m *rules.Match) []token.Token {
	return c.s.All()[m.StartIndex:m.EndIndex]
}

func mustApply(name string, m *rules.Match, ctx *Context) {
	if m == nil {
		panic("actions: " + name + " applied to nil match")
	}
	if ctx == nil {
		panic("actions: " + name + " applied with nil context")
	}
}

func trace(a TokenAction, m *rules.Match) {
	if debug.Actions() {
		debug.Logf("%s on %v\n", a, m.Tokens)
	}
}
