// Package tokenops rewrites token streams by matching rules and
// applying replacement actions.
//
// The packages compose bottom-up: token defines the token variants,
// stream the cursors, rules the matchers, actions the replacements.
// This package ties them together into scan-and-replace passes over
// whole token sequences.
package tokenops

import (
	"github.com/tokenops/tokenops/actions"
	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

// Pass pairs a rule with the action that rewrites what it matches.
// Name appears in traces only.
type Pass struct {
	Name   string
	Rule   rules.TokenRule
	Action actions.TokenAction
}

type rewriteOpts struct {
	defs map[string]rules.TokenRule
}

// Option configures a rewrite run.
type Option func(*rewriteOpts)

// WithDefinitions seeds every match attempt's rule context with the
// given named rules, so passes can use reference rules.
func WithDefinitions(defs map[string]rules.TokenRule) Option {
	return func(o *rewriteOpts) {
		if o.defs == nil {
			o.defs = map[string]rules.TokenRule{}
		}
		for k, r := range defs {
			o.defs[k] = r
		}
	}
}

// Apply rewrites the first span of toks matched by rule, returning the
// rewritten sequence and whether anything matched. On no-match the
// input slice comes back untouched.
func Apply(rule rules.TokenRule, action actions.TokenAction, toks []token.Token, opts ...Option) ([]token.Token, bool) {
	p := Pass{Name: "apply", Rule: rule, Action: action}
	out, n := runPass(p, toks, buildOpts(opts), true)
	if n == 0 {
		return toks, false
	}
	return out, true
}

// Rewrite runs each pass over toks in order, every pass scanning the
// previous pass's output left to right and rewriting all matches.
// Replacement tokens are not rescanned within the pass that produced
// them. Tokens outside matched spans, shadows included, are preserved
// verbatim.
func Rewrite(toks []token.Token, passes []Pass, opts ...Option) []token.Token {
	o := buildOpts(opts)
	for _, p := range passes {
		var n int
		toks, n = runPass(p, toks, o, false)
		if debug.Rewrite() {
			debug.Logf("pass %s: %d match(es), %d token(s)\n", p.Name, n, len(toks))
		}
	}
	return toks
}

func buildOpts(opts []Option) *rewriteOpts {
	o := &rewriteOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// runPass scans toks once. Match attempts happen at each visible token
// position with a fresh seeded context, so captures never leak between
// attempts. A zero-width match applies its action and the scan then
// moves past the next visible token.
func runPass(p Pass, toks []token.Token, o *rewriteOpts, firstOnly bool) ([]token.Token, int) {
	if p.Rule == nil {
		panic("tokenops: pass " + p.Name + " has no rule")
	}
	if p.Action == nil {
		panic("tokenops: pass " + p.Name + " has no action")
	}
	s := stream.NewMutable(toks)
	actx := actions.NewContext(s)
	out := make([]token.Token, 0, len(toks))
	next := 0 // next raw index to copy through
	matched := 0
	for s.HasMore() {
		at := s.Index()
		out = append(out, toks[next:at]...)
		next = at

		m := p.Rule.Match(s, seedContext(o))
		if m == nil {
			s.Advance()
			continue
		}
		matched++
		if debug.Rewrite() {
			debug.Logf("pass %s: %s at [%d,%d)\n", p.Name, p.Rule, m.StartIndex, m.EndIndex)
		}
		out = append(out, p.Action.Apply(m, actx)...)
		next = m.EndIndex
		if firstOnly {
			break
		}
		if m.IsZeroWidth() {
			s.Advance()
		}
	}
	out = append(out, toks[next:]...)
	return out, matched
}

func seedContext(o *rewriteOpts) *rules.Context {
	ctx := rules.NewContext()
	for k, r := range o.defs {
		ctx.DefineRule(k, r)
	}
	return ctx
}
