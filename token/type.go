package token

// Type is a descriptive tag for tokens with an optional super type. Types
// name what a token is for debugging and display; matching never consults
// them.
type Type struct {
	name  string
	super *Type
}

func NewType(name string, super *Type) *Type {
	if name == "" {
		panic("token: empty type name")
	}
	return &Type{name: name, super: super}
}

func (t *Type) Name() string { return t.name }

func (t *Type) Super() *Type { return t.super }

// Is reports whether t is other or has other among its super types.
func (t *Type) Is(other *Type) bool {
	for c := t; c != nil; c = c.super {
		if c == other {
			return true
		}
	}
	return false
}

func (t *Type) String() string {
	if t.super == nil {
		return t.name
	}
	return t.super.String() + "/" + t.name
}
