package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func wantPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestSimpleToken(t *testing.T) {
	tok := New("abc", Letters())
	if tok.Value() != "abc" {
		t.Errorf("Value() = %q, want %q", tok.Value(), "abc")
	}
	if tok.Pos().IsPositioned() {
		t.Errorf("New token is positioned: %v", tok.Pos())
	}
	at := NewAt("abc", Letters(), Position{Line: 2, Column: 1, Offset: 10})
	if !at.Pos().IsPositioned() {
		t.Errorf("NewAt token is unpositioned")
	}
	if at.Pos().Offset != 10 {
		t.Errorf("Pos().Offset = %d, want 10", at.Pos().Offset)
	}
	wantPanic(t, "nil definition", func() { New("abc", nil) })
}

func TestAnnotateMergesMetadata(t *testing.T) {
	tok := New("x", Any())
	a := Annotate(tok, map[string]any{"kind": "id", "n": 1})
	b := Annotate(a, map[string]any{"n": 2, "extra": true})

	got, ok := AnnotationsOf(b)
	if !ok {
		t.Fatalf("AnnotationsOf found no annotations")
	}
	want := map[string]any{"kind": "id", "n": 2, "extra": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("annotations mismatch (-want +got):\n%s", diff)
	}
	if b.Value() != "x" {
		t.Errorf("annotation changed the value: %q", b.Value())
	}

	// The returned map is a copy.
	got["kind"] = "mutated"
	if v, _ := b.Annotation("kind"); v != "id" {
		t.Errorf("annotation map was not copied, got %v", v)
	}
}

func TestWithIndex(t *testing.T) {
	tok := WithIndex(New("x", Any()), 3)
	if tok.Index() != 3 {
		t.Errorf("Index() = %d, want 3", tok.Index())
	}
	if idx, ok := IndexOf(tok); !ok || idx != 3 {
		t.Errorf("IndexOf = %d, %v, want 3, true", idx, ok)
	}
	if _, ok := IndexOf(New("x", Any())); ok {
		t.Errorf("IndexOf found an index on a plain token")
	}
	wantPanic(t, "negative index", func() { WithIndex(New("x", Any()), -1) })
	wantPanic(t, "nil token", func() { WithIndex(nil, 0) })
}

func TestGroupToken(t *testing.T) {
	toks := []Token{
		NewAt("(", Any(), Position{Line: 0, Column: 0, Offset: 0}),
		NewAt("a", Letters(), Position{Line: 0, Column: 1, Offset: 1}),
		NewAt(")", Any(), Position{Line: 0, Column: 2, Offset: 2}),
	}
	g := NewGroup(toks, Any())
	if g.Value() != "(a)" {
		t.Errorf("Value() = %q, want %q", g.Value(), "(a)")
	}
	if g.Pos().Offset != 0 {
		t.Errorf("group position = %v, want the first constituent's", g.Pos())
	}
	if len(g.Tokens()) != 3 {
		t.Errorf("Tokens() has %d entries, want 3", len(g.Tokens()))
	}

	wantPanic(t, "single token", func() { NewGroup(toks[:1], Any()) })
	wantPanic(t, "nil definition", func() { NewGroup(toks, nil) })
	wantPanic(t, "nil constituent", func() { NewGroup([]Token{toks[0], nil}, Any()) })
	wantPanic(t, "definition rejects value", func() { NewGroup(toks, Digits()) })
}

func TestShadowed(t *testing.T) {
	tok := New(" ", Whitespace())
	sh := Shadowed(tok)
	if !IsShadow(sh) {
		t.Errorf("IsShadow(Shadowed(tok)) = false")
	}
	if IsShadow(tok) {
		t.Errorf("IsShadow(tok) = true for a plain token")
	}
	if Shadowed(sh) != sh {
		t.Errorf("Shadowed is not idempotent on shadows")
	}
	if sh.Value() != " " {
		t.Errorf("shadow changed the value: %q", sh.Value())
	}
	// Shadow survives further wrapping.
	if !IsShadow(WithIndex(sh, 0)) {
		t.Errorf("IsShadow lost the shadow under an index wrapper")
	}
}

func TestUnwrap(t *testing.T) {
	base := New("x", Any())
	ann := Annotate(base, map[string]any{"k": "v"})
	wrapped := WithIndex(ann, 1)

	// Unwrap peels exactly one layer per call.
	if got := Unwrap(wrapped); got != Token(ann) {
		t.Errorf("Unwrap(indexed) = %v, want the annotated wrapper", got)
	}
	if got := Unwrap(ann); got != Token(base) {
		t.Errorf("Unwrap(annotated) = %v, want the base token", got)
	}
	if got := Unwrap(base); got != nil {
		t.Errorf("Unwrap(plain) = %v, want nil", got)
	}
}

func TestValuesAndText(t *testing.T) {
	toks := []Token{New("a", Any()), New(",", Any()), New("b", Any())}
	want := []string{"a", ",", "b"}
	if diff := cmp.Diff(want, Values(toks)); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if Text(toks) != "a,b" {
		t.Errorf("Text = %q, want %q", Text(toks), "a,b")
	}
}

func TestTypeHierarchy(t *testing.T) {
	root := NewType("node", nil)
	leaf := NewType("leaf", root)
	if !leaf.Is(root) {
		t.Errorf("leaf.Is(root) = false")
	}
	if root.Is(leaf) {
		t.Errorf("root.Is(leaf) = true")
	}
	if !leaf.Is(leaf) {
		t.Errorf("leaf.Is(leaf) = false")
	}
	wantPanic(t, "empty name", func() { NewType("", nil) })
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 1, Column: 2, Offset: 12}
	if p.String() == "" {
		t.Errorf("Position.String() is empty")
	}
	if Unpositioned.IsPositioned() {
		t.Errorf("Unpositioned reports IsPositioned")
	}
}
