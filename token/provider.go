package token

// DefinitionProvider picks a Definition for a piece of text. Providers keep
// tokens classifiable after their text has been produced outside a tokenizer,
// for example by a split action.
type DefinitionProvider interface {
	Definition(value string) Definition
}

type constantProvider struct {
	def Definition
}

func (p constantProvider) Definition(string) Definition { return p.def }

// Constant always supplies def. It panics on a nil definition.
func Constant(def Definition) DefinitionProvider {
	if def == nil {
		panic("token: nil definition")
	}
	return constantProvider{def: def}
}

type acceptAllProvider struct{}

func (acceptAllProvider) Definition(string) Definition { return Any() }

// AcceptAll supplies the Any definition for every value.
func AcceptAll() DefinitionProvider { return acceptAllProvider{} }

type classifyProvider struct{}

func (classifyProvider) Definition(value string) Definition {
	for _, def := range []Definition{Digits(), Letters(), Whitespace(), WordChars()} {
		if def.Matches(value) {
			return def
		}
	}
	return Any()
}

// Classify picks the narrowest rune-class definition that covers the value:
// digits, letters, whitespace, then word characters, falling back to Any.
func Classify() DefinitionProvider { return classifyProvider{} }
