package stream

import "github.com/tokenops/tokenops/token"

// immutable is a read-only view. Cursor mutations panic: an immutable
// stream aliased into a backtracking evaluation is a programming
// error, not a run-time condition.
type immutable struct {
	core
}

// NewImmutable returns an immutable stream over toks, cursor at the
// first visible token.
func NewImmutable(toks []token.Token) TokenStream {
	return NewImmutableAt(toks, 0)
}

// NewImmutableAt returns an immutable stream over toks with the cursor
// at i, clamped and normalized.
func NewImmutableAt(toks []token.Token, i int) TokenStream {
	s := &immutable{core{toks: toks}}
	s.set(i)
	return s
}

func (s *immutable) Advance() int {
	panic("stream: Advance on immutable stream")
}

func (s *immutable) Reset() {
	panic("stream: Reset on immutable stream")
}

func (s *immutable) AdvanceTo(int) {
	panic("stream: AdvanceTo on immutable stream")
}

func (s *immutable) SyncTo(TokenStream) {
	panic("stream: SyncTo on immutable stream")
}

func (s *immutable) Reversed() TokenStream {
	return &immutable{s.reversedCore()}
}

func (s *immutable) String() string {
	return s.describe("view")
}
