package rules

import (
	"strings"

	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
)

// AnyOf returns a rule trying every sub-rule in listed order and
// returning the first success. Order is significant: earlier
// alternatives win.
func AnyOf(subs ...TokenRule) TokenRule {
	mustRules("AnyOf", subs)
	return &anyOfRule{subs: subs}
}

type anyOfRule struct {
	subs []TokenRule
}

func (r *anyOfRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if debug.Rules() {
		debug.Logf("%s at %d\n", r, s.Index())
	}
	// Each sub-rule is itself atomic, so trying them directly on s
	// leaves the cursor untouched until one succeeds.
	for _, sub := range r.subs {
		if m := sub.Match(s, ctx); m != nil {
			return m
		}
	}
	return nil
}

func (r *anyOfRule) Not() TokenRule {
	return notOf(r)
}

func (r *anyOfRule) String() string {
	parts := make([]string, len(r.subs))
	for i, sub := range r.subs {
		parts[i] = sub.String()
	}
	return "any(" + strings.Join(parts, ", ") + ")"
}
