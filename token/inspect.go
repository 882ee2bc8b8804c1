package token

import "strings"

// Unwrap returns the token wrapped by t, or nil when t wraps nothing.
func Unwrap(t Token) Token {
	type wrapper interface{ Unwrap() Token }
	if w, ok := t.(wrapper); ok {
		return w.Unwrap()
	}
	return nil
}

// IsShadow reports whether t is a shadow token at any wrapping depth.
func IsShadow(t Token) bool {
	for ; t != nil; t = Unwrap(t) {
		if _, ok := t.(*Shadow); ok {
			return true
		}
	}
	return false
}

// IndexOf returns the sequence index of t when t is indexed at any wrapping
// depth.
func IndexOf(t Token) (int, bool) {
	for ; t != nil; t = Unwrap(t) {
		if it, ok := t.(*Indexed); ok {
			return it.Index(), true
		}
	}
	return 0, false
}

// AnnotationsOf returns the metadata of t when t is annotated at any
// wrapping depth.
func AnnotationsOf(t Token) (map[string]any, bool) {
	for ; t != nil; t = Unwrap(t) {
		if at, ok := t.(*Annotated); ok {
			return at.Annotations(), true
		}
	}
	return nil, false
}

// Values returns the values of toks in order.
func Values(toks []Token) []string {
	res := make([]string, len(toks))
	for i, t := range toks {
		res[i] = t.Value()
	}
	return res
}

// Text concatenates the values of toks.
func Text(toks []Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Value())
	}
	return sb.String()
}
