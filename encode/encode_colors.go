package encode

import (
	"fmt"
	"strings"

	"github.com/tokenops/tokenops/token"

	"github.com/fatih/color"
)

// Class selects a palette entry by token variant.
type Class int

const (
	Simple Class = iota
	Shadow
	Grouped
	Annotated
	Indexed
)

func (c Class) String() string {
	switch c {
	case Simple:
		return "simple"
	case Shadow:
		return "shadow"
	case Grouped:
		return "group"
	case Annotated:
		return "annotated"
	case Indexed:
		return "indexed"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

type ColorSet struct {
	Default func(string, ...any) string
	Map     map[Class]func(string, ...any) string
}

func NewColors() *ColorSet {
	cs := &ColorSet{
		Default: colorDefault,
		Map:     map[Class]func(string, ...any) string{},
	}
	cs.Map[Shadow] = color.RGB(96, 96, 96).SprintfFunc()
	cs.Map[Grouped] = color.RGB(128, 216, 236).SprintfFunc()
	cs.Map[Annotated] = color.RGB(196, 168, 128).SprintfFunc()
	cs.Map[Indexed] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range cs.Map {
		cs.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return cs
}

func colorDefault(v string, _ ...any) string { return v }

func (c *ColorSet) Color(cl Class, s string) string {
	return c.Get(cl)(s)
}

func (c *ColorSet) Get(cl Class) func(string, ...any) string {
	f := c.Map[cl]
	if f == nil {
		return c.Default
	}
	return f
}

// ClassOf maps a token to its palette class. Shadows win over the
// wrapper variants; otherwise the outermost wrapper decides.
func ClassOf(t token.Token) Class {
	if token.IsShadow(t) {
		return Shadow
	}
	switch t.(type) {
	case *token.Group:
		return Grouped
	case *token.Annotated:
		return Annotated
	case *token.Indexed:
		return Indexed
	}
	return Simple
}
