package token

import "fmt"

func PrintTokens(toks []Token, msg string) {
	fmt.Printf("%s tokens:\n", msg)
	for _, t := range toks {
		kind := ""
		if IsShadow(t) {
			kind = " (shadow)"
		}
		fmt.Printf("\t%q %s%s\n", t.Value(), t.Pos(), kind)
	}
}
