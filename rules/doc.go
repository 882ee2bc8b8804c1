// Package rules implements composable matching rules over token
// streams.
//
// A [TokenRule] attempts to consume tokens from a stream and returns a
// [Match] or nil. No-match is an ordinary outcome, never an error.
// Every rule is atomic: on success the stream cursor sits past the
// consumed tokens (and past any shadows trailing them), on failure it
// is exactly where it was. Combinators get this by matching sub-rules
// against a working copy of the stream and committing with SyncTo only
// once the whole combinator has succeeded.
//
// Rules advance the stream they are given, so callers pass a mutable
// stream (or a copy of an immutable one).
//
// Construction misuse (nil sub-rule, empty reference key, bad bounds)
// panics at build time. Matching itself never panics and never errors.
package rules
