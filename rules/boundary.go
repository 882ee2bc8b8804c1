package rules

import (
	"fmt"

	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

// Boundary returns a rule matching a start delimiter, a repeated
// between span, and an end delimiter. The end rule is tried before the
// between rule on every iteration, so empty between spans are fine.
// After the stream is exhausted the end rule gets one more
// zero-consumption try, which lets pure assertions such as
// EndOfDocument terminate a boundary. If the between rule fails before
// the end rule has succeeded the whole boundary is a no-match.
func Boundary(start, between, end TokenRule) TokenRule {
	mustRule("Boundary", start)
	mustRule("Boundary", between)
	mustRule("Boundary", end)
	return &boundaryRule{start: start, between: between, end: end}
}

type boundaryRule struct {
	start, between, end TokenRule
}

func (r *boundaryRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if debug.Rules() {
		debug.Logf("%s at %d\n", r, s.Index())
	}
	start := s.Index()
	work := s.CopyWithCurrentIndex()

	sm := r.start.Match(work, ctx)
	if sm == nil {
		return nil
	}
	var toks []token.Token
	toks = append(toks, sm.Tokens...)

	commit := func(em *Match) *Match {
		toks = append(toks, em.Tokens...)
		s.SyncTo(work)
		return newMatch(r, s, start, toks)
	}

	for work.HasMore() {
		if em := r.end.Match(work, ctx); em != nil {
			return commit(em)
		}
		bm := r.between.Match(work, ctx)
		if bm == nil {
			return nil
		}
		toks = append(toks, bm.Tokens...)
	}
	if em := r.end.Match(work, ctx); em != nil {
		return commit(em)
	}
	return nil
}

// Not distributes over the constituent rules, negating start, between
// and end individually.
func (r *boundaryRule) Not() TokenRule {
	return Boundary(r.start.Not(), r.between.Not(), r.end.Not())
}

func (r *boundaryRule) String() string {
	return fmt.Sprintf("boundary(%s, %s, %s)", r.start, r.between, r.end)
}
