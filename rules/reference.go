package rules

import (
	"fmt"

	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

// ReferenceType selects what a Reference resolves to in the context.
type ReferenceType int

const (
	// RuleReference delegates matching to the rule defined under the
	// key.
	RuleReference ReferenceType = iota
	// TokensReference requires the upcoming tokens to equal, value by
	// value, the sequence captured under the key.
	TokensReference
	// DynamicReference resolves to whichever of the two is present.
	// When both or neither are present it is a no-match: ambiguity and
	// absence are never silently resolved.
	DynamicReference
)

func (t ReferenceType) String() string {
	switch t {
	case RuleReference:
		return "rule"
	case TokensReference:
		return "tokens"
	case DynamicReference:
		return "dynamic"
	default:
		return fmt.Sprintf("ReferenceType(%d)", int(t))
	}
}

// Reference returns a rule resolved against the context at match time:
// to a named rule, a captured token sequence, or dynamically to
// whichever is present. Unresolvable references are no-matches, not
// errors, so rule graphs can be built before their targets exist.
func Reference(key string, typ ReferenceType) TokenRule {
	mustKey("Reference", key)
	switch typ {
	case RuleReference, TokensReference, DynamicReference:
	default:
		panic(fmt.Sprintf("rules: unknown reference type %d", int(typ)))
	}
	return &referenceRule{key: key, typ: typ}
}

type referenceRule struct {
	key string
	typ ReferenceType
}

func (r *referenceRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if debug.Rules() {
		debug.Logf("%s at %d\n", r, s.Index())
	}
	rule, hasRule := ctx.RuleDefinition(r.key)
	captured, hasTokens := ctx.CapturedTokens(r.key)

	switch r.typ {
	case RuleReference:
		if !hasRule {
			return nil
		}
		return rule.Match(s, ctx)
	case TokensReference:
		if !hasTokens {
			return nil
		}
		return r.matchCaptured(s, captured)
	default:
		if hasRule == hasTokens {
			return nil
		}
		if hasRule {
			return rule.Match(s, ctx)
		}
		return r.matchCaptured(s, captured)
	}
}

// matchCaptured consumes one upcoming token per captured token,
// requiring equal values in order.
func (r *referenceRule) matchCaptured(s stream.TokenStream, captured []token.Token) *Match {
	start := s.Index()
	work := s.CopyWithCurrentIndex()
	var toks []token.Token
	for _, want := range captured {
		cur, err := work.Current()
		if err != nil || cur.Value() != want.Value() {
			return nil
		}
		toks = append(toks, cur)
		work.Advance()
	}
	s.SyncTo(work)
	return newMatch(r, s, start, toks)
}

func (r *referenceRule) Not() TokenRule {
	return notOf(r)
}

func (r *referenceRule) String() string {
	return fmt.Sprintf("ref(%q, %s)", r.key, r.typ)
}
