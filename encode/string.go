package encode

import (
	"bytes"

	"github.com/tokenops/tokenops/token"
)

// String encodes toks to a string. Options behave as in Encode.
func String(toks []token.Token, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(toks, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
