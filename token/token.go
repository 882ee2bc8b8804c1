package token

// Token is an immutable lexical unit: its text, where it came from, and the
// definition that classified it. The implementations in this package form a
// closed set: Simple, Annotated, Indexed, Group and Shadow.
type Token interface {
	Value() string
	Pos() Position
	Def() Definition
}

// Simple is a plain token.
type Simple struct {
	value string
	def   Definition
	pos   Position
}

// New creates an unpositioned token. It panics on a nil definition.
func New(value string, def Definition) *Simple {
	return NewAt(value, def, Unpositioned)
}

// NewAt creates a token at the given position. It panics on a nil definition.
func NewAt(value string, def Definition, pos Position) *Simple {
	if def == nil {
		panic("token: nil definition")
	}
	return &Simple{value: value, def: def, pos: pos}
}

func (t *Simple) Value() string   { return t.value }
func (t *Simple) Pos() Position   { return t.pos }
func (t *Simple) Def() Definition { return t.def }
func (t *Simple) String() string  { return t.value }
