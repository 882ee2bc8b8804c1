// Package tokenize splits source text into positioned tokens.
//
// The scanner produces word runs (letters, digits, underscore),
// whitespace runs and single punctuation tokens. Whitespace becomes
// shadow tokens by default so the original text can be reconstructed
// from the token sequence while matching sees only the visible tokens.
package tokenize

import (
	"unicode"
	"unicode/utf8"

	"github.com/tokenops/tokenops/debug"
	"github.com/tokenops/tokenops/token"
)

type opts struct {
	provider   token.DefinitionProvider
	dropSpace  bool
	separators map[rune]bool
}

// Option configures Tokenize.
type Option func(*opts)

// Provider sets the definition provider classifying produced tokens.
// The default is token.Classify().
func Provider(p token.DefinitionProvider) Option {
	return func(o *opts) {
		if p != nil {
			o.provider = p
		}
	}
}

// DropWhitespace discards whitespace runs instead of emitting them as
// shadow tokens. Reconstruction of the source text is lossy with this
// option.
func DropWhitespace() Option {
	return func(o *opts) {
		o.dropSpace = true
	}
}

// Separators marks each rune in chars as a standalone single-rune
// token, splitting any word or whitespace run it would otherwise be
// part of.
func Separators(chars string) Option {
	return func(o *opts) {
		if o.separators == nil {
			o.separators = map[rune]bool{}
		}
		for _, r := range chars {
			o.separators[r] = true
		}
	}
}

// Tokenize appends the tokens of src to dst and returns the extended
// slice. Positions are 0-based line/column/byte-offset. Invalid UTF-8
// input fails with an error wrapping ErrBadUTF8.
func Tokenize(dst []token.Token, src []byte, options ...Option) ([]token.Token, error) {
	o := &opts{provider: token.Classify()}
	for _, opt := range options {
		opt(o)
	}

	pos := token.Position{}
	emit := func(value string, shadow bool) {
		var t token.Token = token.NewAt(value, o.provider.Definition(value), pos)
		if shadow {
			t = token.Shadowed(t)
		}
		dst = append(dst, t)
		pos = pos.Advance(value)
	}

	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, newError(ErrBadUTF8, pos)
		}
		switch {
		case o.separators[r]:
			emit(string(src[i:i+size]), false)
			i += size
		case unicode.IsSpace(r):
			end := runEnd(src, i, o.spaceRune)
			if o.dropSpace {
				pos = pos.Advance(string(src[i:end]))
			} else {
				emit(string(src[i:end]), true)
			}
			i = end
		case wordRune(r):
			end := runEnd(src, i, o.wordRune)
			emit(string(src[i:end]), false)
			i = end
		default:
			emit(string(src[i:i+size]), false)
			i += size
		}
	}
	if debug.Tokenize() {
		debug.Logf("tokenize: %d byte(s) -> %d token(s)\n", len(src), len(dst))
	}
	return dst, nil
}

// runEnd extends a run from i while pred holds. Invalid UTF-8 ends the
// run so the main loop reports it with the right position.
func runEnd(src []byte, i int, pred func(rune) bool) int {
	for i < len(src) {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		if !pred(r) {
			return i
		}
		i += size
	}
	return i
}

func wordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (o *opts) wordRune(r rune) bool {
	return wordRune(r) && !o.separators[r]
}

func (o *opts) spaceRune(r rune) bool {
	return unicode.IsSpace(r) && !o.separators[r]
}
