package ruleset

import (
	"fmt"
	"io"

	"github.com/tokenops/tokenops"
	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"

	"github.com/goccy/go-yaml"
)

// Set is a compiled rule set.
type Set struct {
	Definitions map[string]token.Definition
	Rules       map[string]rules.TokenRule
	Passes      []tokenops.Pass
}

// Load reads a YAML rule set document from r and compiles it.
func Load(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	return Parse(data)
}

// Parse compiles a YAML rule set document.
func Parse(data []byte) (*Set, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRuleSet, err)
	}
	s := &Set{
		Definitions: make(map[string]token.Definition, len(f.Definitions)),
		Rules:       make(map[string]rules.TokenRule, len(f.Rules)),
	}
	for name, dn := range f.Definitions {
		d, err := concreteDef(&dn)
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", name, err)
		}
		s.Definitions[name] = d
	}
	for name, rn := range f.Rules {
		r, err := s.compileRule(&rn)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		s.Rules[name] = r
	}
	for i := range f.Passes {
		p, err := s.compilePass(&f.Passes[i])
		if err != nil {
			return nil, fmt.Errorf("pass %d: %w", i, err)
		}
		s.Passes = append(s.Passes, p)
	}
	if debug.Rules() {
		debug.Logf("ruleset: compiled %d definitions, %d rules, %d passes\n",
			len(s.Definitions), len(s.Rules), len(s.Passes))
	}
	return s, nil
}

func (s *Set) compilePass(n *passNode) (tokenops.Pass, error) {
	var r rules.TokenRule
	switch {
	case n.Use != "" && n.Rule != nil:
		return tokenops.Pass{}, fmt.Errorf("%w: pass has both use and rule", ErrRuleSet)
	case n.Use != "":
		named, ok := s.Rules[n.Use]
		if !ok {
			return tokenops.Pass{}, fmt.Errorf("%w: unknown rule %q", ErrRuleSet, n.Use)
		}
		r = named
	case n.Rule != nil:
		var err error
		r, err = s.compileRule(n.Rule)
		if err != nil {
			return tokenops.Pass{}, err
		}
	default:
		return tokenops.Pass{}, fmt.Errorf("%w: pass needs use or rule", ErrRuleSet)
	}
	a, err := s.compileAction(n.Action)
	if err != nil {
		return tokenops.Pass{}, err
	}
	name := n.Name
	if name == "" {
		name = n.Use
	}
	if name == "" {
		return tokenops.Pass{}, fmt.Errorf("%w: pass with an inline rule needs a name", ErrRuleSet)
	}
	return tokenops.Pass{Name: name, Rule: r, Action: a}, nil
}

// Rule returns the named rule.
func (s *Set) Rule(name string) (rules.TokenRule, bool) {
	r, ok := s.Rules[name]
	return r, ok
}

// Context returns a fresh match context seeded with every named rule
// as a rule definition, so references inside the set resolve by name.
func (s *Set) Context() *rules.Context {
	ctx := rules.NewContext()
	for name, r := range s.Rules {
		ctx.DefineRule(name, r)
	}
	return ctx
}

// Rewrite runs the set's passes over toks in order.
func (s *Set) Rewrite(toks []token.Token) []token.Token {
	return tokenops.Rewrite(toks, s.Passes, tokenops.WithDefinitions(s.Rules))
}
