package encode

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tokenops/tokenops/token"
)

type encState struct {
	sep    string
	colors *ColorSet
}

func newState(opts []Option) *encState {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes every token's text to w in order, shadows included.
func Encode(toks []token.Token, w io.Writer, opts ...Option) error {
	es := newState(opts)
	sep := es.sep
	if sep != "" && hasShadow(toks) {
		sep = ""
	}
	for i, t := range toks {
		if i > 0 && sep != "" {
			if err := writeString(w, sep); err != nil {
				return err
			}
		}
		text := t.Value()
		if es.colors != nil {
			text = es.colors.Color(ClassOf(t), text)
		}
		if err := writeString(w, text); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes a per-token table to w: index, variant, value, then a
// variant detail and the position when there is one.
func Dump(toks []token.Token, w io.Writer, opts ...Option) error {
	es := newState(opts)
	for i, t := range toks {
		value := fmt.Sprintf("%q", t.Value())
		if es.colors != nil {
			value = es.colors.Color(ClassOf(t), value)
		}
		line := fmt.Sprintf("%4d  %-9s  %s", i, ClassOf(t), value)
		if detail := detailOf(t); detail != "" {
			line += "  " + detail
		}
		if t.Pos().IsPositioned() {
			line += "  @ " + t.Pos().String()
		}
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func detailOf(t token.Token) string {
	switch x := t.(type) {
	case *token.Group:
		return fmt.Sprintf("%d parts", len(x.Tokens()))
	case *token.Indexed:
		return fmt.Sprintf("#%d", x.Index())
	case *token.Annotated:
		keys := make([]string, 0, len(x.Annotations()))
		for k := range x.Annotations() {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return strings.Join(keys, ",")
	}
	return ""
}

func hasShadow(toks []token.Token) bool {
	for _, t := range toks {
		if token.IsShadow(t) {
			return true
		}
	}
	return false
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
