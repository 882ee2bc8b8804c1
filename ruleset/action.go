package ruleset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tokenops/tokenops/actions"
	"github.com/tokenops/tokenops/token"
)

func (s *Set) compileAction(n *actionNode) (actions.TokenAction, error) {
	if n == nil {
		return actions.Identity(), nil
	}
	fs := n.forms()
	switch len(fs) {
	case 0:
		return nil, fmt.Errorf("%w: no recognized action form", ErrRuleSet)
	case 1:
	default:
		return nil, fmt.Errorf("%w: action combines %s", ErrRuleSet, strings.Join(fs, ", "))
	}
	switch fs[0] {
	case "identity":
		return actions.Identity(), nil
	case "group":
		mode := actions.Matched
		switch n.Group.Mode {
		case "", "matched":
		case "all":
			mode = actions.All
		default:
			return nil, fmt.Errorf("%w: group mode wants matched or all, got %q", ErrRuleSet, n.Group.Mode)
		}
		def, err := s.resolveDef(&n.Group.Def)
		if err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		return actions.Group(mode, def), nil
	case "wrap":
		if n.Wrap.Prefix == "" || n.Wrap.Suffix == "" {
			return nil, fmt.Errorf("%w: wrap needs prefix and suffix", ErrRuleSet)
		}
		prefix := token.New(n.Wrap.Prefix, token.Word(n.Wrap.Prefix))
		suffix := token.New(n.Wrap.Suffix, token.Word(n.Wrap.Suffix))
		return actions.Wrap(prefix, suffix), nil
	case "annotate":
		return actions.Annotate(n.Annotate), nil
	case "index":
		if n.Index.Start < 0 {
			return nil, fmt.Errorf("%w: index start %d is negative", ErrRuleSet, n.Index.Start)
		}
		return actions.Index(n.Index.Start), nil
	case "skip":
		pred, err := s.defPredicate(n.Skip)
		if err != nil {
			return nil, fmt.Errorf("skip: %w", err)
		}
		return actions.Skip(pred), nil
	case "filter":
		pred, err := s.defPredicate(n.Filter)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		return actions.Filter(pred), nil
	case "split":
		if n.Split.Pattern == "" {
			return nil, fmt.Errorf("%w: split needs a pattern", ErrRuleSet)
		}
		re, err := regexp.Compile(n.Split.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: split pattern %q: %v", ErrRuleSet, n.Split.Pattern, err)
		}
		return actions.SplitOf(re, token.Classify()), nil
	case "join":
		return actions.Join(n.Join.Delimiter), nil
	}
	panic("ruleset: unhandled action form " + fs[0])
}

// defPredicate turns a definition into a token predicate over values.
func (s *Set) defPredicate(n *defNode) (actions.Predicate, error) {
	def, err := s.resolveDef(n)
	if err != nil {
		return nil, err
	}
	return func(t token.Token) bool { return def.Matches(t.Value()) }, nil
}
