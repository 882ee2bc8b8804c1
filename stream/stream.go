package stream

import (
	"fmt"

	"github.com/tokenops/tokenops/token"
)

// TokenStream is a cursor over an ordered token sequence. The cursor
// index is the position of the next token to be consumed; it never
// rests on a shadow token. Size and All report the raw backing
// including shadows, so a stream can be reconstructed losslessly.
type TokenStream interface {
	// All returns the raw backing slice, shadows included. Callers
	// must not mutate it.
	All() []token.Token
	// Size is the raw backing length.
	Size() int
	// Index is the cursor position, in [0, Size].
	Index() int
	// HasMore reports whether a visible token remains.
	HasMore() bool
	// Current returns the token at the cursor, or ErrEndOfStream.
	Current() (token.Token, error)

	// Advance moves the cursor past the current token and any shadow
	// tokens after it, returning the new index. Advancing an exhausted
	// stream is a no-op. Mutable streams only.
	Advance() int
	// Reset rewinds the cursor to the first visible token. Mutable
	// streams only.
	Reset()
	// AdvanceTo sets the cursor to i, clamped to [0, Size] and
	// normalized past shadows. Mutable streams only.
	AdvanceTo(i int)
	// SyncTo sets the cursor to the other stream's index, committing
	// progress made on a working copy. Mutable streams only.
	SyncTo(other TokenStream)

	// CopyWithCurrentIndex returns an independent mutable stream
	// sharing the backing slice, cursor at the receiver's index.
	CopyWithCurrentIndex() TokenStream
	// CopyWithIndex is CopyWithCurrentIndex with an explicit index,
	// clamped to [0, Size].
	CopyWithIndex(i int) TokenStream

	// Lookahead returns an immutable stream over the tokens strictly
	// after the cursor, in order, cursor at 0.
	Lookahead() TokenStream
	// Lookbehind returns an immutable stream over the tokens strictly
	// before the cursor, nearest first, cursor at 0.
	Lookbehind() TokenStream
	// Reversed returns a stream over the reversed sequence with the
	// cursor remapped so the current token stays current. The result
	// has the receiver's mutability.
	Reversed() TokenStream
}

// core holds the state shared by the mutable and immutable streams.
type core struct {
	toks []token.Token
	pos  int
}

// normalize moves i forward past shadow tokens so the cursor invariant
// holds: pos == len(toks) or toks[pos] is visible.
func normalize(toks []token.Token, i int) int {
	for i < len(toks) && token.IsShadow(toks[i]) {
		i++
	}
	return i
}

func clamp(i, size int) int {
	if i < 0 {
		return 0
	}
	if i > size {
		return size
	}
	return i
}

func (c *core) set(i int) {
	c.pos = normalize(c.toks, clamp(i, len(c.toks)))
}

func (c *core) All() []token.Token { return c.toks }

func (c *core) Size() int { return len(c.toks) }

func (c *core) Index() int { return c.pos }

func (c *core) HasMore() bool { return c.pos < len(c.toks) }

func (c *core) Current() (token.Token, error) {
	if c.pos >= len(c.toks) {
		return nil, ErrEndOfStream
	}
	return c.toks[c.pos], nil
}

func (c *core) CopyWithCurrentIndex() TokenStream {
	return c.CopyWithIndex(c.pos)
}

func (c *core) CopyWithIndex(i int) TokenStream {
	s := &mutable{core{toks: c.toks}}
	s.set(i)
	return s
}

func (c *core) Lookahead() TokenStream {
	if c.pos+1 >= len(c.toks) {
		return NewImmutable(nil)
	}
	return NewImmutable(c.toks[c.pos+1:])
}

func (c *core) Lookbehind() TokenStream {
	return NewImmutable(reverse(c.toks[:c.pos]))
}

// reversedCore builds the reversed backing and the remapped cursor. An
// exhausted cursor stays exhausted; otherwise the current token keeps
// its identity at index len-1-pos.
func (c *core) reversedCore() core {
	rev := core{toks: reverse(c.toks)}
	if c.pos >= len(c.toks) {
		rev.pos = len(rev.toks)
	} else {
		rev.set(len(c.toks) - 1 - c.pos)
	}
	return rev
}

func (c *core) describe(kind string) string {
	cur, err := c.Current()
	if err != nil {
		return fmt.Sprintf("%s[%d/%d at end]", kind, c.pos, len(c.toks))
	}
	return fmt.Sprintf("%s[%d/%d %q]", kind, c.pos, len(c.toks), cur.Value())
}

func reverse(toks []token.Token) []token.Token {
	if len(toks) == 0 {
		return nil
	}
	rev := make([]token.Token, len(toks))
	for i, t := range toks {
		rev[len(toks)-1-i] = t
	}
	return rev
}
