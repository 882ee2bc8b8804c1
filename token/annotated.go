package token

import "maps"

// Annotated wraps a token with string-keyed metadata.
type Annotated struct {
	tok  Token
	meta map[string]any
}

// Annotate attaches metadata to t. When t is already annotated the result
// merges: keys in meta overwrite same-named existing keys, all other existing
// keys are preserved. The wrapped token itself is never modified. It panics
// on a nil token.
func Annotate(t Token, meta map[string]any) *Annotated {
	if t == nil {
		panic("token: nil token")
	}
	if a, ok := t.(*Annotated); ok {
		merged := make(map[string]any, len(a.meta)+len(meta))
		maps.Copy(merged, a.meta)
		maps.Copy(merged, meta)
		return &Annotated{tok: a.tok, meta: merged}
	}
	m := make(map[string]any, len(meta))
	maps.Copy(m, meta)
	return &Annotated{tok: t, meta: m}
}

func (t *Annotated) Value() string   { return t.tok.Value() }
func (t *Annotated) Pos() Position   { return t.tok.Pos() }
func (t *Annotated) Def() Definition { return t.tok.Def() }

// Unwrap returns the annotated token.
func (t *Annotated) Unwrap() Token { return t.tok }

// Annotations returns a copy of the metadata.
func (t *Annotated) Annotations() map[string]any {
	m := make(map[string]any, len(t.meta))
	maps.Copy(m, t.meta)
	return m
}

// Annotation returns the value stored under key.
func (t *Annotated) Annotation(key string) (any, bool) {
	v, ok := t.meta[key]
	return v, ok
}
