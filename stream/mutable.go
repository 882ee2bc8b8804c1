package stream

import "github.com/tokenops/tokenops/token"

// mutable is the in-place stream used while a rule evaluation is
// active. Backtracking works by matching on a copy and committing the
// copy's progress with SyncTo.
type mutable struct {
	core
}

// NewMutable returns a mutable stream over toks, cursor at the first
// visible token.
func NewMutable(toks []token.Token) TokenStream {
	s := &mutable{core{toks: toks}}
	s.set(0)
	return s
}

func (s *mutable) Advance() int {
	if s.pos < len(s.toks) {
		s.set(s.pos + 1)
	}
	return s.pos
}

func (s *mutable) Reset() {
	s.set(0)
}

func (s *mutable) AdvanceTo(i int) {
	s.set(i)
}

func (s *mutable) SyncTo(other TokenStream) {
	s.set(other.Index())
}

func (s *mutable) Reversed() TokenStream {
	return &mutable{s.reversedCore()}
}

func (s *mutable) String() string {
	return s.describe("stream")
}
