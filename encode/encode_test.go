package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/tokenops/tokenops/token"
	"github.com/tokenops/tokenops/tokenize"
)

func TestEncodeLossless(t *testing.T) {
	src := "let x = 41;\n  print( x )\n"
	toks, err := tokenize.Tokenize(nil, []byte(src))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if got := String(toks); got != src {
		t.Fatalf("round trip = %q, want %q", got, src)
	}
}

func TestEncodeSeparator(t *testing.T) {
	toks, err := tokenize.Tokenize(nil, []byte("a b c"), tokenize.DropWhitespace())
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if got := String(toks, Separator(" ")); got != "a b c" {
		t.Errorf("separated = %q, want %q", got, "a b c")
	}
}

func TestEncodeSeparatorIgnoredWithShadows(t *testing.T) {
	toks, err := tokenize.Tokenize(nil, []byte("a b"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if got := String(toks, Separator("_")); got != "a b" {
		t.Errorf("encoded = %q, want %q", got, "a b")
	}
}

func TestDump(t *testing.T) {
	a := token.New("a", token.Letters())
	b := token.New("b", token.Letters())
	toks := []token.Token{
		token.NewAt("12", token.Digits(), token.Position{Line: 0, Column: 0, Offset: 0}),
		token.Shadowed(token.New(" ", token.Whitespace())),
		token.WithIndex(token.NewGroup([]token.Token{a, b}, token.Any()), 3),
	}
	buf := bytes.NewBuffer(nil)
	if err := Dump(toks, buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("dump has %d lines, want 3:\n%s", len(lines), buf)
	}
	for i, want := range []string{`"12"`, "shadow", "#3"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, missing %q", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[0], "offset 0") {
		t.Errorf("line 0 = %q, missing position", lines[0])
	}
}

func TestClassOf(t *testing.T) {
	a := token.New("a", token.Letters())
	b := token.New("b", token.Letters())
	group := token.NewGroup([]token.Token{a, b}, token.Any())
	for _, tc := range []struct {
		tok  token.Token
		want Class
	}{
		{a, Simple},
		{token.Shadowed(a), Shadow},
		{group, Grouped},
		{token.Shadowed(group), Shadow},
		{token.Annotate(a, map[string]any{"k": 1}), Annotated},
		{token.WithIndex(a, 0), Indexed},
	} {
		if got := ClassOf(tc.tok); got != tc.want {
			t.Errorf("ClassOf(%q) = %s, want %s", tc.tok.Value(), got, tc.want)
		}
	}
}

func TestColorsEscapePercent(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	cs := NewColors()
	if got := cs.Color(Shadow, "100%"); got != "100%" {
		t.Errorf("colored = %q, want %q", got, "100%")
	}
	if got := cs.Color(Simple, "plain"); got != "plain" {
		t.Errorf("default = %q, want passthrough", got)
	}
}
