package actions

import (
	"fmt"

	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

// GroupMode selects which tokens a Group action aggregates.
type GroupMode int

const (
	// Matched groups the tokens the rule consumed.
	Matched GroupMode = iota
	// All groups the raw span between the match's start and end
	// indexes, shadow tokens included, so the group reconstructs the
	// source text losslessly.
	All
)

func (m GroupMode) String() string {
	switch m {
	case Matched:
		return "matched"
	case All:
		return "all"
	default:
		return fmt.Sprintf("GroupMode(%d)", int(m))
	}
}

// Group returns the action aggregating the span into a single group
// token satisfying def. Grouping fewer than two tokens panics, as does
// a def rejecting the concatenated value.
func Group(mode GroupMode, def token.Definition) TokenAction {
	switch mode {
	case Matched, All:
	default:
		panic(fmt.Sprintf("actions: unknown group mode %d", int(mode)))
	}
	if def == nil {
		panic("actions: Group requires a non-nil definition")
	}
	return &groupAction{mode: mode, def: def}
}

type groupAction struct {
	mode GroupMode
	def  token.Definition
}

func (a *groupAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply("Group", m, ctx)
	trace(a, m)
	toks := m.Tokens
	if a.mode == All {
		toks = ctx.Span(m)
	}
	return []token.Token{token.NewGroup(toks, a.def)}
}

func (a *groupAction) String() string {
	return fmt.Sprintf("group(%s)", a.mode)
}
