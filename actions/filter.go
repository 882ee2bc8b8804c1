package actions

import (
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

// Filter returns the action keeping only matched tokens satisfying
// pred, in order.
func Filter(pred Predicate) TokenAction {
	mustPred("Filter", pred)
	return &filterAction{name: "filter", keep: pred}
}

// Skip returns the action removing matched tokens satisfying pred.
func Skip(pred Predicate) TokenAction {
	mustPred("Skip", pred)
	return &filterAction{name: "skip", keep: func(t token.Token) bool { return !pred(t) }}
}

// Extract is Skip with a consumer: each removed token is handed to
// consume before it is dropped, so callers can pull tokens out into
// their own collections while excluding them from the result.
func Extract(pred Predicate, consume func(token.Token)) TokenAction {
	mustPred("Extract", pred)
	if consume == nil {
		panic("actions: Extract requires a non-nil consumer")
	}
	return &filterAction{
		name:    "extract",
		keep:    func(t token.Token) bool { return !pred(t) },
		dropped: consume,
	}
}

type filterAction struct {
	name    string
	keep    Predicate
	dropped func(token.Token)
}

func (a *filterAction) Apply(m *rules.Match, ctx *Context) []token.Token {
	mustApply(a.name, m, ctx)
	trace(a, m)
	out := make([]token.Token, 0, len(m.Tokens))
	for _, t := range m.Tokens {
		if a.keep(t) {
			out = append(out, t)
			continue
		}
		if a.dropped != nil {
			a.dropped(t)
		}
	}
	return out
}

func (a *filterAction) String() string {
	return a.name
}

func mustPred(name string, pred Predicate) {
	if pred == nil {
		panic("actions: " + name + " requires a non-nil predicate")
	}
}
