package ruleset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tokenops/tokenops/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// concreteDef compiles an inline definition form.
func concreteDef(n *defNode) (token.Definition, error) {
	fs := n.forms()
	switch len(fs) {
	case 0:
		return nil, fmt.Errorf("%w: no recognized definition form", ErrRuleSet)
	case 1:
	default:
		return nil, fmt.Errorf("%w: definition combines %s", ErrRuleSet, strings.Join(fs, ", "))
	}
	switch fs[0] {
	case "value":
		return token.Word(*n.Value), nil
	case "pattern":
		re, err := regexp.Compile(*n.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrRuleSet, *n.Pattern, err)
		}
		return token.PatternOf(re), nil
	case "class":
		return classByName(*n.Class)
	case "expr":
		return newExprDef(*n.Expr)
	}
	panic("ruleset: unhandled definition form " + fs[0])
}

func classByName(name string) (token.Definition, error) {
	switch name {
	case "digits":
		return token.Digits(), nil
	case "letters":
		return token.Letters(), nil
	case "whitespace":
		return token.Whitespace(), nil
	case "word":
		return token.WordChars(), nil
	case "any":
		return token.Any(), nil
	}
	return nil, fmt.Errorf("%w: unknown class %q", ErrRuleSet, name)
}

// resolveDef compiles an inline definition or looks up a named one.
func (s *Set) resolveDef(n *defNode) (token.Definition, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: missing definition", ErrRuleSet)
	}
	if n.Name == "" {
		return concreteDef(n)
	}
	if fs := n.forms(); len(fs) > 0 {
		return nil, fmt.Errorf("%w: definition names %q but also declares %s",
			ErrRuleSet, n.Name, strings.Join(fs, ", "))
	}
	d, ok := s.Definitions[n.Name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown definition %q", ErrRuleSet, n.Name)
	}
	return d, nil
}

// exprDef accepts token values for which an expr program over the
// variable value yields true. Evaluation errors reject the value.
type exprDef struct {
	src string
	prg *vm.Program
}

func newExprDef(src string) (token.Definition, error) {
	prg, err := expr.Compile(src, expr.Env(exprEnv("")), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: expr %q: %v", ErrRuleSet, src, err)
	}
	return &exprDef{src: src, prg: prg}, nil
}

func exprEnv(value string) map[string]any {
	return map[string]any{"value": value}
}

func (d *exprDef) Matches(value string) bool {
	out, err := expr.Run(d.prg, exprEnv(value))
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

func (d *exprDef) String() string { return fmt.Sprintf("expr(%s)", d.src) }
