package rules

import "github.com/tokenops/tokenops/stream"

var neverSingleton = &neverRule{}

// NeverMatch returns the rule that matches nothing, anywhere.
func NeverMatch() TokenRule {
	return neverSingleton
}

type neverRule struct{}

func (r *neverRule) Match(s stream.TokenStream, ctx *Context) *Match {
	return nil
}

func (r *neverRule) Not() TokenRule {
	return alwaysSingleton
}

func (r *neverRule) String() string {
	return "never"
}
