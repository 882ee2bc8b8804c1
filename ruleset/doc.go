// Package ruleset loads token rule sets from YAML.
//
// A rule set declares named token definitions, named rules, and an
// ordered list of rewrite passes. Loading compiles the document down
// to the rules and actions APIs; the named rules double as reference
// definitions, so passes and ad-hoc matches can resolve them by key.
//
// Unlike the construction APIs, which panic on misuse, the loader
// reports every problem as an error wrapping ErrRuleSet. Rule set
// documents are user input.
package ruleset
