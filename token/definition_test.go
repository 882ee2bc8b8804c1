package token

import "testing"

func TestDefinitions(t *testing.T) {
	tests := []struct {
		name  string
		def   Definition
		value string
		want  bool
	}{
		{"any empty", Any(), "", true},
		{"any text", Any(), "abc", true},
		{"word exact", Word("let"), "let", true},
		{"word other", Word("let"), "letx", false},
		{"pattern full", Pattern("[0-9]+"), "123", true},
		{"pattern partial", Pattern("[0-9]+"), "123a", false},
		{"pattern empty", Pattern("[0-9]+"), "", false},
		{"digits", Digits(), "0042", true},
		{"digits mixed", Digits(), "4a2", false},
		{"digits empty", Digits(), "", false},
		{"letters", Letters(), "abc", true},
		{"letters unicode", Letters(), "héllo", true},
		{"letters digit", Letters(), "ab1", false},
		{"whitespace", Whitespace(), " \t\n", true},
		{"whitespace word", Whitespace(), " a ", false},
		{"wordchars", WordChars(), "ab_1", true},
		{"wordchars punct", WordChars(), "ab-1", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.def.Matches(tc.value); got != tc.want {
				t.Errorf("%v.Matches(%q) = %v, want %v", tc.def, tc.value, got, tc.want)
			}
		})
	}
}

func TestPatternOfAnchorsFullValue(t *testing.T) {
	def := Pattern("a+")
	if def.Matches("baa") {
		t.Errorf("pattern matched inside the value, want full match only")
	}
	if !def.Matches("aaa") {
		t.Errorf("pattern did not match the full value")
	}
}

func TestClassifyProvider(t *testing.T) {
	p := Classify()
	tests := []struct {
		value string
		want  string
	}{
		{"123", "digits"},
		{"abc", "letters"},
		{"  \t", "whitespace"},
		{"ab_1", "wordchars"},
		{"a-b", "any"},
		{"", "any"},
	}
	for _, tc := range tests {
		def := p.Definition(tc.value)
		s, ok := def.(interface{ String() string })
		if !ok {
			t.Fatalf("definition for %q has no name", tc.value)
		}
		if s.String() != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.value, s.String(), tc.want)
		}
		if tc.want != "any" && !def.Matches(tc.value) {
			t.Errorf("Classify(%q) returned a definition that rejects it", tc.value)
		}
	}
}

func TestConstantProvider(t *testing.T) {
	def := Word("x")
	p := Constant(def)
	if p.Definition("anything") != def {
		t.Errorf("Constant provider did not return its definition")
	}
}

func TestAcceptAllProvider(t *testing.T) {
	if !AcceptAll().Definition("whatever").Matches("else") {
		t.Errorf("AcceptAll definition rejected a value")
	}
}
