package rules

import (
	"strings"

	"github.com/tokenops/tokenops/stream"
)

// Anchors are zero-width assertions about the cursor position. They
// never consume tokens and are safe on immutable streams.

var (
	startOfDocumentSingleton = &anchorRule{name: "startOfDocument", at: atDocumentStart}
	startOfLineSingleton     = &anchorRule{name: "startOfLine", at: atLineStart}
	endOfDocumentSingleton   = &anchorRule{name: "endOfDocument", at: atDocumentEnd}
	endOfLineSingleton       = &anchorRule{name: "endOfLine", at: atLineEnd}
)

// StartOfDocument matches before any visible token.
func StartOfDocument() TokenRule {
	return startOfDocumentSingleton
}

// StartOfLine matches at the start of the document, after a token
// whose text ends in a newline, or where the previous and current
// token line positions differ.
func StartOfLine() TokenRule {
	return startOfLineSingleton
}

// EndOfDocument matches once no visible token remains.
func EndOfDocument() TokenRule {
	return endOfDocumentSingleton
}

// EndOfLine matches at the end of the document or wherever StartOfLine
// would match after at least one token.
func EndOfLine() TokenRule {
	return endOfLineSingleton
}

type anchorRule struct {
	name string
	at   func(s stream.TokenStream) bool
}

func (r *anchorRule) Match(s stream.TokenStream, ctx *Context) *Match {
	if !r.at(s) {
		return nil
	}
	at := s.Index()
	return &Match{StartIndex: at, EndIndex: at, Rule: r}
}

func (r *anchorRule) Not() TokenRule {
	return notOf(r)
}

func (r *anchorRule) String() string {
	return r.name
}

func atDocumentStart(s stream.TokenStream) bool {
	return !s.Lookbehind().HasMore()
}

func atDocumentEnd(s stream.TokenStream) bool {
	return !s.HasMore()
}

func atLineStart(s stream.TokenStream) bool {
	return atDocumentStart(s) || lineBreakBefore(s)
}

func atLineEnd(s stream.TokenStream) bool {
	return atDocumentEnd(s) || lineBreakBefore(s)
}

// lineBreakBefore reports a line break immediately before the cursor:
// the previous raw token's text ends in a newline, or its line
// position differs from the current token's. Shadow tokens count, so
// shadowed whitespace still separates lines.
func lineBreakBefore(s stream.TokenStream) bool {
	i := s.Index()
	if i == 0 {
		return false
	}
	prev := s.All()[i-1]
	if strings.HasSuffix(prev.Value(), "\n") {
		return true
	}
	cur, err := s.Current()
	if err != nil {
		return false
	}
	if !prev.Pos().IsPositioned() || !cur.Pos().IsPositioned() {
		return false
	}
	return prev.Pos().Line != cur.Pos().Line
}
