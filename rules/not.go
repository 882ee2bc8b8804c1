package rules

import (
	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
)

// notRule is the default negation: a zero-width rule succeeding
// exactly where the inner rule fails. Rules with richer structure
// (boundary) override Not to distribute instead.
type notRule struct {
	inner TokenRule
}

func notOf(inner TokenRule) TokenRule {
	return &notRule{inner: inner}
}

func (r *notRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if debug.Rules() {
		debug.Logf("%s at %d\n", r, s.Index())
	}
	work := s.CopyWithCurrentIndex()
	if m := r.inner.Match(work, ctx); m != nil {
		return nil
	}
	at := s.Index()
	return &Match{StartIndex: at, EndIndex: at, Rule: r}
}

func (r *notRule) Not() TokenRule {
	return r.inner
}

func (r *notRule) String() string {
	return "not(" + r.inner.String() + ")"
}
