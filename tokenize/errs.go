package tokenize

import (
	"errors"
	"fmt"

	"github.com/tokenops/tokenops/token"
)

// ErrBadUTF8 reports invalid UTF-8 in the input.
var ErrBadUTF8 = errors.New("invalid utf-8")

// Error wraps a tokenization failure with the position it happened at.
type Error struct {
	Err error
	Pos token.Position
}

func newError(err error, pos token.Position) *Error {
	return &Error{Err: err, Pos: pos}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}
