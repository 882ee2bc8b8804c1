package ruleset

import "errors"

// ErrRuleSet is wrapped by every error the loader reports, so callers
// can classify load failures with a single errors.Is check.
var ErrRuleSet = errors.New("invalid rule set")
