// Package encode renders token sequences back to text.
//
// # Usage
//
//	// Reproduce the tokenized source, shadows included
//	err := encode.Encode(toks, os.Stdout)
//
//	// Space-separate sequences tokenized without shadows
//	err := encode.Encode(toks, os.Stdout, encode.Separator(" "))
//
//	// Colored per-token table
//	err := encode.Dump(toks, os.Stdout, encode.Colors(encode.NewColors()))
//
// A sequence that still carries its shadow tokens encodes byte for
// byte back to the text it was tokenized from.
package encode
