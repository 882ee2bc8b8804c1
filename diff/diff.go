package diff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tokenops/tokenops/encode"
	"github.com/tokenops/tokenops/token"
)

// Texts renders the character diff from before to after.
func Texts(before, after string) string {
	diffCfg := diffpatch.New()
	checklines := strings.Contains(before, "\n") && strings.Contains(after, "\n")
	diffs := diffCfg.DiffMain(before, after, checklines)

	var b strings.Builder
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffInsert:
			if color.NoColor {
				b.WriteString("{+" + d.Text + "+}")
			} else {
				b.WriteString(color.GreenString("%s", d.Text))
			}
		case diffpatch.DiffDelete:
			if color.NoColor {
				b.WriteString("[-" + d.Text + "-]")
			} else {
				b.WriteString(color.RedString("%s", d.Text))
			}
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Streams encodes both sequences and diffs the results.
func Streams(before, after []token.Token) string {
	return Texts(encode.String(before), encode.String(after))
}
