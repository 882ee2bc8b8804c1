// Package stream provides cursors over token sequences.
//
// A [TokenStream] walks an ordered slice of tokens. Mutable streams
// advance in place and are used while a rule evaluation is active;
// immutable streams are read-only views such as lookahead and
// lookbehind windows. Shadow tokens stay in the backing slice but are
// never reported as current: every operation that sets the cursor
// normalizes it forward past shadows.
package stream
