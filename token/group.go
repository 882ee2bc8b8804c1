package token

import (
	"fmt"
	"strings"
)

// Group aggregates two or more tokens into one. The group's value is the
// concatenation of its constituents' values and must satisfy the group's
// definition. Constituents are held by reference and never mutated; they
// outlive the group when shared.
type Group struct {
	tokens []Token
	def    Definition
	value  string
}

// NewGroup creates a group over toks. It panics when toks has fewer than two
// tokens, contains a nil token, def is nil, or the concatenated value does
// not satisfy def.
func NewGroup(toks []Token, def Definition) *Group {
	if len(toks) < 2 {
		panic(fmt.Sprintf("token: group needs at least 2 tokens, got %d", len(toks)))
	}
	if def == nil {
		panic("token: nil definition")
	}
	var sb strings.Builder
	for i, t := range toks {
		if t == nil {
			panic(fmt.Sprintf("token: nil token at %d", i))
		}
		sb.WriteString(t.Value())
	}
	value := sb.String()
	if !def.Matches(value) {
		panic(fmt.Sprintf("token: group value %q does not satisfy its definition", value))
	}
	return &Group{tokens: toks, def: def, value: value}
}

func (g *Group) Value() string   { return g.value }
func (g *Group) Def() Definition { return g.def }

// Pos returns the position of the first constituent.
func (g *Group) Pos() Position { return g.tokens[0].Pos() }

// Tokens returns the constituent tokens. The slice is shared with the group
// and must not be modified.
func (g *Group) Tokens() []Token { return g.tokens }

func (g *Group) String() string { return g.value }
