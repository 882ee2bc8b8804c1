// Package token defines the lexical values the rest of the module operates on.
//
// A [Token] carries its text, its source [Position] and the [Definition] that
// classified it. Wrapper tokens add metadata ([Annotated]), a sequence index
// ([Indexed]), aggregation ([Group]) or stream invisibility ([Shadow]).
package token
