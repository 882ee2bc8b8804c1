package rules

import (
	"strings"

	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

// Sequence returns a rule matching every sub-rule in order. It fails
// atomically: if any sub-rule fails the stream is left at the
// pre-match index.
func Sequence(subs ...TokenRule) TokenRule {
	mustRules("Sequence", subs)
	return &sequenceRule{subs: subs}
}

type sequenceRule struct {
	subs []TokenRule
}

func (r *sequenceRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if debug.Rules() {
		debug.Logf("%s at %d\n", r, s.Index())
	}
	start := s.Index()
	work := s.CopyWithCurrentIndex()
	var toks []token.Token
	for _, sub := range r.subs {
		m := sub.Match(work, ctx)
		if m == nil {
			return nil
		}
		toks = append(toks, m.Tokens...)
	}
	s.SyncTo(work)
	return newMatch(r, s, start, toks)
}

func (r *sequenceRule) Not() TokenRule {
	return notOf(r)
}

func (r *sequenceRule) String() string {
	parts := make([]string, len(r.subs))
	for i, sub := range r.subs {
		parts[i] = sub.String()
	}
	return "seq(" + strings.Join(parts, ", ") + ")"
}
