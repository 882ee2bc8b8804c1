package debug

import (
	"fmt"
	"os"

	"github.com/tokenops/tokenops/token"
)

// Logf writes a trace line to stderr. Token slice arguments render as
// quoted values so rule traces stay readable.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case []token.Token:
			args[i] = fmt.Sprintf("%q", token.Values(x))
		case token.Token:
			args[i] = fmt.Sprintf("%q", x.Value())
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
