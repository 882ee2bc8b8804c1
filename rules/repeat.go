package rules

import (
	"fmt"

	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

// Unbounded lifts the upper bound of Repeat.
const Unbounded = -1

// Repeat returns a rule matching sub at least min and at most max
// times (Unbounded for no upper bound). Iterations run on a working
// copy; progress is committed up to the last successful iteration.
// Fewer than min successes is a no-match.
//
// Repetition around a zero-width always-succeeding rule does not
// terminate; callers compose terminating rule graphs.
func Repeat(sub TokenRule, min, max int) TokenRule {
	mustRule("Repeat", sub)
	if min < 0 {
		panic("rules: Repeat requires min >= 0")
	}
	if max != Unbounded && max < min {
		panic("rules: Repeat requires max >= min or Unbounded")
	}
	return &repeatRule{sub: sub, min: min, max: max}
}

// ZeroOrMore matches sub any number of times, including none.
func ZeroOrMore(sub TokenRule) TokenRule {
	return Repeat(sub, 0, Unbounded)
}

// OneOrMore matches sub at least once.
func OneOrMore(sub TokenRule) TokenRule {
	return Repeat(sub, 1, Unbounded)
}

// Exactly matches sub exactly n times.
func Exactly(sub TokenRule, n int) TokenRule {
	return Repeat(sub, n, n)
}

// AtMost matches sub up to n times, including none.
func AtMost(sub TokenRule, n int) TokenRule {
	return Repeat(sub, 0, n)
}

type repeatRule struct {
	sub      TokenRule
	min, max int
}

func (r *repeatRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if debug.Rules() {
		debug.Logf("%s at %d\n", r, s.Index())
	}
	start := s.Index()
	work := s.CopyWithCurrentIndex()
	var toks []token.Token
	count := 0
	for r.max == Unbounded || count < r.max {
		m := r.sub.Match(work, ctx)
		if m == nil {
			break
		}
		toks = append(toks, m.Tokens...)
		count++
	}
	if count < r.min {
		return nil
	}
	s.SyncTo(work)
	return newMatch(r, s, start, toks)
}

func (r *repeatRule) Not() TokenRule {
	return notOf(r)
}

func (r *repeatRule) String() string {
	if r.max == Unbounded {
		return fmt.Sprintf("repeat(%s){%d,}", r.sub, r.min)
	}
	return fmt.Sprintf("repeat(%s){%d,%d}", r.sub, r.min, r.max)
}
