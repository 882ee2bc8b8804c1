package token

import "fmt"

// Position locates a token in its source document. Line and Column are
// 0-based, Offset is the 0-based byte offset of the token's first byte.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Unpositioned marks tokens that were not produced from a source document,
// such as tokens synthesized by actions.
var Unpositioned = Position{Line: -1, Column: -1, Offset: -1}

func (p Position) IsPositioned() bool {
	return p.Offset >= 0 && p.Line >= 0 && p.Column >= 0
}

func (p Position) String() string {
	if !p.IsPositioned() {
		return "unpositioned"
	}
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Column)
}

// Advance returns the position just past s when read from p. Columns
// count runes, offsets count bytes. Advancing Unpositioned stays
// unpositioned.
func (p Position) Advance(s string) Position {
	if !p.IsPositioned() {
		return p
	}
	for _, r := range s {
		if r == '\n' {
			p.Line++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	p.Offset += len(s)
	return p
}
