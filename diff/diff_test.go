package diff

import (
	"testing"

	"github.com/fatih/color"

	"github.com/tokenops/tokenops/tokenize"
)

func noColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func TestTexts(t *testing.T) {
	noColor(t)
	if got, want := Texts("a cat", "a hat"), "a [-c-]{+h+}at"; got != want {
		t.Errorf("Texts = %q, want %q", got, want)
	}
}

func TestTextsEqual(t *testing.T) {
	noColor(t)
	if got := Texts("same", "same"); got != "same" {
		t.Errorf("Texts = %q, want %q", got, "same")
	}
}

func TestStreams(t *testing.T) {
	noColor(t)
	before, err := tokenize.Tokenize(nil, []byte("a b"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	after, err := tokenize.Tokenize(nil, []byte("a c"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if got, want := Streams(before, after), "a [-b-]{+c+}"; got != want {
		t.Errorf("Streams = %q, want %q", got, want)
	}
}
