// Package actions transforms matched token spans into replacement
// tokens.
//
// A [TokenAction] takes a successful rule match and produces the
// ordered token sequence that replaces the matched span. Actions never
// mutate their input tokens; wrapping variants (group, annotate,
// index) build new tokens around the originals. Applying an action to
// a nil match or nil context is a precondition violation and panics.
package actions
