package ruleset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tokenops/tokenops/rules"
)

func (s *Set) compileRule(n *ruleNode) (rules.TokenRule, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: missing rule", ErrRuleSet)
	}
	fs := n.forms()
	switch len(fs) {
	case 0:
		return nil, fmt.Errorf("%w: no recognized rule form", ErrRuleSet)
	case 1:
	default:
		return nil, fmt.Errorf("%w: rule combines %s", ErrRuleSet, strings.Join(fs, ", "))
	}
	switch fs[0] {
	case "value":
		return rules.Value(*n.Value), nil
	case "pattern":
		re, err := regexp.Compile(*n.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrRuleSet, *n.Pattern, err)
		}
		return rules.PatternOf(re), nil
	case "def":
		d, ok := s.Definitions[*n.Def]
		if !ok {
			return nil, fmt.Errorf("%w: unknown definition %q", ErrRuleSet, *n.Def)
		}
		return rules.Matching(d), nil
	case "any":
		return rules.AlwaysMatch(), nil
	case "never":
		return rules.NeverMatch(), nil
	case "sequence":
		subs, err := s.compileRules("sequence", n.Sequence)
		if err != nil {
			return nil, err
		}
		return rules.Sequence(subs...), nil
	case "anyOf":
		subs, err := s.compileRules("anyOf", n.AnyOf)
		if err != nil {
			return nil, err
		}
		return rules.AnyOf(subs...), nil
	case "repeat":
		return s.compileRepeat(n.Repeat)
	case "optional":
		sub, err := s.compileRule(n.Optional)
		if err != nil {
			return nil, fmt.Errorf("optional: %w", err)
		}
		return rules.Optional(sub), nil
	case "boundary":
		return s.compileBoundary(n.Boundary)
	case "startOf":
		switch *n.StartOf {
		case "document":
			return rules.StartOfDocument(), nil
		case "line":
			return rules.StartOfLine(), nil
		}
		return nil, fmt.Errorf("%w: startOf wants document or line, got %q", ErrRuleSet, *n.StartOf)
	case "endOf":
		switch *n.EndOf {
		case "document":
			return rules.EndOfDocument(), nil
		case "line":
			return rules.EndOfLine(), nil
		}
		return nil, fmt.Errorf("%w: endOf wants document or line, got %q", ErrRuleSet, *n.EndOf)
	case "ref":
		return compileRef(n.Ref)
	case "capture":
		if n.Capture.Key == "" {
			return nil, fmt.Errorf("%w: capture needs a key", ErrRuleSet)
		}
		sub, err := s.compileRule(&n.Capture.Rule)
		if err != nil {
			return nil, fmt.Errorf("capture %q: %w", n.Capture.Key, err)
		}
		return rules.Capture(n.Capture.Key, sub), nil
	case "lookahead":
		sub, err := s.compileRule(n.Lookahead)
		if err != nil {
			return nil, fmt.Errorf("lookahead: %w", err)
		}
		return rules.Lookahead(sub), nil
	case "lookbehind":
		sub, err := s.compileRule(n.Lookbehind)
		if err != nil {
			return nil, fmt.Errorf("lookbehind: %w", err)
		}
		return rules.Lookbehind(sub), nil
	case "not":
		sub, err := s.compileRule(n.Not)
		if err != nil {
			return nil, fmt.Errorf("not: %w", err)
		}
		return sub.Not(), nil
	}
	panic("ruleset: unhandled rule form " + fs[0])
}

func (s *Set) compileRules(form string, nodes []ruleNode) ([]rules.TokenRule, error) {
	out := make([]rules.TokenRule, len(nodes))
	for i := range nodes {
		sub, err := s.compileRule(&nodes[i])
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", form, i, err)
		}
		out[i] = sub
	}
	return out, nil
}

func (s *Set) compileRepeat(n *repeatNode) (rules.TokenRule, error) {
	sub, err := s.compileRule(&n.Rule)
	if err != nil {
		return nil, fmt.Errorf("repeat: %w", err)
	}
	min := n.Min
	max := rules.Unbounded
	if n.Max != nil {
		max = *n.Max
	}
	if min < 0 {
		return nil, fmt.Errorf("%w: repeat min %d is negative", ErrRuleSet, min)
	}
	if max != rules.Unbounded && max < min {
		return nil, fmt.Errorf("%w: repeat max %d below min %d", ErrRuleSet, max, min)
	}
	return rules.Repeat(sub, min, max), nil
}

func (s *Set) compileBoundary(n *boundaryNode) (rules.TokenRule, error) {
	start, err := s.compileRule(&n.Start)
	if err != nil {
		return nil, fmt.Errorf("boundary start: %w", err)
	}
	between, err := s.compileRule(&n.Between)
	if err != nil {
		return nil, fmt.Errorf("boundary between: %w", err)
	}
	end, err := s.compileRule(&n.End)
	if err != nil {
		return nil, fmt.Errorf("boundary end: %w", err)
	}
	return rules.Boundary(start, between, end), nil
}

func compileRef(n *refNode) (rules.TokenRule, error) {
	if n.Key == "" {
		return nil, fmt.Errorf("%w: ref needs a key", ErrRuleSet)
	}
	var typ rules.ReferenceType
	switch n.Type {
	case "", "dynamic":
		typ = rules.DynamicReference
	case "rule":
		typ = rules.RuleReference
	case "tokens":
		typ = rules.TokensReference
	default:
		return nil, fmt.Errorf("%w: ref type wants rule, tokens or dynamic, got %q", ErrRuleSet, n.Type)
	}
	return rules.Reference(n.Key, typ), nil
}
