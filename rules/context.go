package rules

import "github.com/tokenops/tokenops/token"

// Context is the scratch state shared across one top-level match
// invocation: named rule definitions and named captured token lists,
// looked up by reference rules. It is not thread-safe and must not be
// shared across concurrent matches. Create, use, discard.
type Context struct {
	rules    map[string]TokenRule
	captured map[string][]token.Token
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{
		rules:    map[string]TokenRule{},
		captured: map[string][]token.Token{},
	}
}

// DefineRule registers rule under key, replacing any previous
// definition. Empty keys and nil rules panic.
func (c *Context) DefineRule(key string, rule TokenRule) {
	mustKey("DefineRule", key)
	mustRule("DefineRule", rule)
	if c == nil {
		panic("rules: DefineRule on nil context")
	}
	c.rules[key] = rule
}

// RuleDefinition looks up a rule registered under key.
func (c *Context) RuleDefinition(key string) (TokenRule, bool) {
	if c == nil {
		return nil, false
	}
	r, ok := c.rules[key]
	return r, ok
}

// CaptureTokens stores a copy of toks under key, replacing any
// previous capture. Empty keys panic.
func (c *Context) CaptureTokens(key string, toks []token.Token) {
	mustKey("CaptureTokens", key)
	if c == nil {
		panic("rules: CaptureTokens on nil context")
	}
	cp := make([]token.Token, len(toks))
	copy(cp, toks)
	c.captured[key] = cp
}

// CapturedTokens looks up a token sequence captured under key.
func (c *Context) CapturedTokens(key string) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	toks, ok := c.captured[key]
	return toks, ok
}
