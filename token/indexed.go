package token

// Indexed wraps a token with its position in some sequence, typically the
// zero-based offset within a rule match.
type Indexed struct {
	tok   Token
	index int
}

// WithIndex wraps t with index. It panics on a nil token or a negative index.
func WithIndex(t Token, index int) *Indexed {
	if t == nil {
		panic("token: nil token")
	}
	if index < 0 {
		panic("token: negative index")
	}
	return &Indexed{tok: t, index: index}
}

func (t *Indexed) Value() string   { return t.tok.Value() }
func (t *Indexed) Pos() Position   { return t.tok.Pos() }
func (t *Indexed) Def() Definition { return t.tok.Def() }

// Unwrap returns the indexed token.
func (t *Indexed) Unwrap() Token { return t.tok }

func (t *Indexed) Index() int { return t.index }
