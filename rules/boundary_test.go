package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
)

func TestBoundaryParens(t *testing.T) {
	rule := Boundary(Value("("), AlwaysMatch(), Value(")"))
	s := streamOf("(", "a", "b", ")", "x")
	m := rule.Match(s, NewContext())
	if m == nil {
		t.Fatalf("boundary did not match")
	}
	want := []string{"(", "a", "b", ")"}
	if diff := cmp.Diff(want, matchedValues(m)); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	if s.Index() != 4 {
		t.Errorf("cursor = %d, want 4", s.Index())
	}
}

func TestBoundaryEmptyBetween(t *testing.T) {
	rule := Boundary(Value("("), AlwaysMatch(), Value(")"))
	m := rule.Match(streamOf("(", ")"), NewContext())
	if m == nil {
		t.Fatalf("boundary rejected an empty between span")
	}
	if diff := cmp.Diff([]string{"(", ")"}, matchedValues(m)); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
}

func TestBoundaryIsAtomic(t *testing.T) {
	// The between rule fails before the end rule can succeed.
	rule := Boundary(Value("("), Matching(token.Letters()), Value(")"))
	s := streamOf("(", "a", "1", ")")
	if m := rule.Match(s, NewContext()); m != nil {
		t.Fatalf("boundary matched %q past a failing between rule", m.Text())
	}
	if s.Index() != 0 {
		t.Errorf("failed boundary left the cursor at %d", s.Index())
	}

	// Unterminated: stream ends, final end check fails too.
	s = streamOf("(", "a")
	if rule.Match(s, NewContext()) != nil {
		t.Fatalf("boundary matched without its end delimiter")
	}
	if s.Index() != 0 {
		t.Errorf("unterminated boundary left the cursor at %d", s.Index())
	}
}

func TestBoundaryAssertionEnd(t *testing.T) {
	// A pure assertion can end a boundary after the stream runs out.
	rule := Boundary(Value("#"), AlwaysMatch(), EndOfDocument())
	s := streamOf("#", "a", "b")
	m := rule.Match(s, NewContext())
	if m == nil {
		t.Fatalf("assertion-terminated boundary did not match")
	}
	if diff := cmp.Diff([]string{"#", "a", "b"}, matchedValues(m)); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	if s.HasMore() {
		t.Errorf("stream still has tokens after a full-width match")
	}
}

func TestBoundaryNotDistributes(t *testing.T) {
	rule := Boundary(Value("("), Matching(token.Letters()), Value(")"))
	neg := rule.Not()
	if neg.String() != "boundary(not(value(\"(\")), not(matching(letters)), not(value(\")\")))" {
		t.Fatalf("negation did not distribute: %s", neg)
	}
	// Distributing twice restores the original shape.
	if neg.Not().String() != rule.String() {
		t.Errorf("double negation shape = %s, want %s", neg.Not(), rule)
	}
}

func TestAnchors(t *testing.T) {
	// Two tokens, the first ending in a newline.
	doc := func() stream.TokenStream {
		return stream.NewMutable([]token.Token{
			token.New("text\n", token.Any()),
			token.New("next", token.Any()),
		})
	}

	s := doc()
	if StartOfDocument().Match(s, NewContext()) == nil {
		t.Errorf("start-of-document did not match at index 0")
	}
	if StartOfLine().Match(s, NewContext()) == nil {
		t.Errorf("start-of-line did not match at index 0")
	}
	s.Advance()
	if StartOfDocument().Match(s, NewContext()) != nil {
		t.Errorf("start-of-document matched mid-stream")
	}
	m := StartOfLine().Match(s, NewContext())
	if m == nil {
		t.Fatalf("start-of-line did not match after a newline token")
	}
	if !m.IsZeroWidth() || s.Index() != 1 {
		t.Errorf("anchor consumed tokens: %+v, cursor %d", m, s.Index())
	}
	if EndOfLine().Match(s, NewContext()) == nil {
		t.Errorf("end-of-line did not match before a new line")
	}
	if EndOfDocument().Match(s, NewContext()) != nil {
		t.Errorf("end-of-document matched with tokens left")
	}
	s.Advance()
	if EndOfDocument().Match(s, NewContext()) == nil {
		t.Errorf("end-of-document did not match at the end")
	}
	if EndOfLine().Match(s, NewContext()) == nil {
		t.Errorf("end-of-line did not match at the end")
	}
}

func TestStartOfLineByPosition(t *testing.T) {
	// No newline in the token text; the line positions differ.
	s := stream.NewMutable([]token.Token{
		token.NewAt("a", token.Any(), token.Position{Line: 0, Column: 0, Offset: 0}),
		token.NewAt("b", token.Any(), token.Position{Line: 1, Column: 0, Offset: 2}),
	})
	s.Advance()
	if StartOfLine().Match(s, NewContext()) == nil {
		t.Errorf("start-of-line did not match on a line position change")
	}

	same := stream.NewMutable([]token.Token{
		token.NewAt("a", token.Any(), token.Position{Line: 0, Column: 0, Offset: 0}),
		token.NewAt("b", token.Any(), token.Position{Line: 0, Column: 2, Offset: 2}),
	})
	same.Advance()
	if StartOfLine().Match(same, NewContext()) != nil {
		t.Errorf("start-of-line matched within a line")
	}
}

func TestStartOfDocumentIgnoresLeadingShadows(t *testing.T) {
	s := stream.NewMutable([]token.Token{
		token.Shadowed(token.New(" ", token.Whitespace())),
		token.New("a", token.Any()),
	})
	if StartOfDocument().Match(s, NewContext()) == nil {
		t.Errorf("start-of-document rejected a cursor before any visible token")
	}
}
