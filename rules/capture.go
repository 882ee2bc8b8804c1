package rules

import (
	"fmt"

	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
)

// Capture returns a rule that matches sub and, on success, stores the
// matched tokens in the context under key for later back-reference. A
// later success overwrites an earlier capture under the same key.
func Capture(key string, sub TokenRule) TokenRule {
	mustKey("Capture", key)
	mustRule("Capture", sub)
	return &captureRule{key: key, sub: sub}
}

type captureRule struct {
	key string
	sub TokenRule
}

func (r *captureRule) Match(s stream.TokenStream, ctx *Context) *Match {
	m := r.sub.Match(s, ctx)
	if m == nil {
		return nil
	}
	if debug.Rules() {
		debug.Logf("capture %q = %v\n", r.key, m.Tokens)
	}
	ctx.CaptureTokens(r.key, m.Tokens)
	return m
}

func (r *captureRule) Not() TokenRule {
	return notOf(r)
}

func (r *captureRule) String() string {
	return fmt.Sprintf("capture(%q, %s)", r.key, r.sub)
}
