package tokenops

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tokenops/tokenops/actions"
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/token"
)

func toks(values ...string) []token.Token {
	out := make([]token.Token, 0, len(values))
	for _, v := range values {
		out = append(out, token.New(v, token.Any()))
	}
	return out
}

func TestApplyFirstMatch(t *testing.T) {
	rule := rules.Matching(token.Digits())
	action := actions.Convert(func(t token.Token) token.Token {
		return token.New("#", token.Any())
	})
	got, ok := Apply(rule, action, toks("a", "1", "b", "2"))
	if !ok {
		t.Fatalf("apply found no match")
	}
	want := []string{"a", "#", "b", "2"}
	if diff := cmp.Diff(want, token.Values(got)); diff != "" {
		t.Errorf("apply (-want +got):\n%s", diff)
	}
}

func TestApplyNoMatchReturnsInput(t *testing.T) {
	in := toks("a", "b")
	got, ok := Apply(rules.Value("z"), actions.Identity(), in)
	if ok {
		t.Fatalf("apply matched nothing that exists")
	}
	if &got[0] != &in[0] || len(got) != len(in) {
		t.Errorf("no-match did not return the input slice")
	}
}

func TestRewriteGroupsAllParens(t *testing.T) {
	parens := Pass{
		Name:   "parens",
		Rule:   rules.Boundary(rules.Value("("), rules.AlwaysMatch(), rules.Value(")")),
		Action: actions.Group(actions.All, token.Any()),
	}
	in := toks("(", "a", ")", "x", "(", "b", "c", ")")
	got := Rewrite(in, []Pass{parens})
	want := []string{"(a)", "x", "(bc)"}
	if diff := cmp.Diff(want, token.Values(got)); diff != "" {
		t.Errorf("rewrite (-want +got):\n%s", diff)
	}
}

func TestRewritePreservesShadowsOutsideMatches(t *testing.T) {
	in := []token.Token{
		token.Shadowed(token.New(" ", token.Whitespace())),
		token.New("1", token.Digits()),
		token.Shadowed(token.New(" ", token.Whitespace())),
		token.New("x", token.Any()),
	}
	digitsToHash := Pass{
		Name: "digits",
		Rule: rules.Matching(token.Digits()),
		Action: actions.Convert(func(token.Token) token.Token {
			return token.New("#", token.Any())
		}),
	}
	got := Rewrite(in, []Pass{digitsToHash})
	want := []string{" ", "#", " ", "x"}
	if diff := cmp.Diff(want, token.Values(got)); diff != "" {
		t.Fatalf("rewrite (-want +got):\n%s", diff)
	}
	if !token.IsShadow(got[0]) || !token.IsShadow(got[2]) {
		t.Errorf("shadows outside the match lost their shadow wrapping")
	}
}

func TestRewriteZeroWidthInsertions(t *testing.T) {
	lineMarks := Pass{
		Name: "marks",
		Rule: rules.StartOfLine(),
		Action: actions.Transform(func([]token.Token) []token.Token {
			return []token.Token{token.New("|", token.Any())}
		}),
	}
	got := Rewrite(toks("a\n", "b"), []Pass{lineMarks})
	want := []string{"|", "a\n", "|", "b"}
	if diff := cmp.Diff(want, token.Values(got)); diff != "" {
		t.Errorf("insertions (-want +got):\n%s", diff)
	}
}

func TestRewriteReplacementIsNotRescanned(t *testing.T) {
	doubler := Pass{
		Name: "double",
		Rule: rules.Value("a"),
		Action: actions.Transform(func(in []token.Token) []token.Token {
			return append(append([]token.Token{}, in...), in...)
		}),
	}
	got := Rewrite(toks("a"), []Pass{doubler})
	want := []string{"a", "a"}
	if diff := cmp.Diff(want, token.Values(got)); diff != "" {
		t.Errorf("rewrite (-want +got):\n%s", diff)
	}
}

func TestRewriteWithDefinitions(t *testing.T) {
	pass := Pass{
		Name:   "nums",
		Rule:   rules.Reference("num", rules.RuleReference),
		Action: actions.Annotate(map[string]any{"kind": "number"}),
	}
	got := Rewrite(
		toks("1", "a", "2"),
		[]Pass{pass},
		WithDefinitions(map[string]rules.TokenRule{"num": rules.Matching(token.Digits())}),
	)
	if _, ok := token.AnnotationsOf(got[0]); !ok {
		t.Errorf("referenced rule did not fire on %q", got[0].Value())
	}
	if _, ok := token.AnnotationsOf(got[1]); ok {
		t.Errorf("non-matching token %q was annotated", got[1].Value())
	}
	if _, ok := token.AnnotationsOf(got[2]); !ok {
		t.Errorf("referenced rule did not fire on %q", got[2].Value())
	}
}

func TestRewriteSequencesPasses(t *testing.T) {
	split := Pass{
		Name:   "split",
		Rule:   rules.Pattern(`[a-z]+(,[a-z]+)+`),
		Action: actions.Split(",", token.Classify()),
	}
	count := Pass{
		Name:   "count",
		Rule:   rules.OneOrMore(rules.Matching(token.Letters())),
		Action: actions.Index(0),
	}
	got := Rewrite(toks("a,b,c"), []Pass{split, count})
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, token.Values(got)); diff != "" {
		t.Fatalf("passes (-want +got):\n%s", diff)
	}
	for i, tok := range got {
		idx, ok := token.IndexOf(tok)
		if !ok || idx != i {
			t.Errorf("token %d not indexed by the second pass: %d, %v", i, idx, ok)
		}
	}
}

func TestPassValidation(t *testing.T) {
	for name, p := range map[string]Pass{
		"no rule":   {Name: "x", Action: actions.Identity()},
		"no action": {Name: "x", Rule: rules.Value("a")},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			Rewrite(toks("a"), []Pass{p})
		}()
	}
}
