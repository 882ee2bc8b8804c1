package token

// Shadow marks a token as present in the stream but invisible to cursor and
// matching operations. Tokenizers shadow whitespace so that reconstructing
// the original text stays lossless while rules never see the filler.
type Shadow struct {
	tok Token
}

// Shadowed wraps t as a shadow token. Shadowing a shadow token returns it
// unchanged. It panics on a nil token.
func Shadowed(t Token) *Shadow {
	if t == nil {
		panic("token: nil token")
	}
	if s, ok := t.(*Shadow); ok {
		return s
	}
	return &Shadow{tok: t}
}

func (t *Shadow) Value() string   { return t.tok.Value() }
func (t *Shadow) Pos() Position   { return t.tok.Pos() }
func (t *Shadow) Def() Definition { return t.tok.Def() }

// Unwrap returns the shadowed token.
func (t *Shadow) Unwrap() Token { return t.tok }
