// Package debug exposes env-flag gated tracing for the engine.
// Flags are read once at startup; tracing goes to stderr.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match    bool
	Rules    bool
	Actions  bool
	Rewrite  bool
	Stream   bool
	Tokenize bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("TOKENOPS_DEBUG_MATCH")
	d.Rules = boolEnv("TOKENOPS_DEBUG_RULES")
	d.Actions = boolEnv("TOKENOPS_DEBUG_ACTIONS")
	d.Rewrite = boolEnv("TOKENOPS_DEBUG_REWRITE")
	d.Stream = boolEnv("TOKENOPS_DEBUG_STREAM")
	d.Tokenize = boolEnv("TOKENOPS_DEBUG_TOKENIZE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Rules() bool {
	return d.Rules
}
func Actions() bool {
	return d.Actions
}
func Rewrite() bool {
	return d.Rewrite
}
func Stream() bool {
	return d.Stream
}
func Tokenize() bool {
	return d.Tokenize
}
