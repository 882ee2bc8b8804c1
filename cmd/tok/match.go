package main

import (
	"fmt"

	"github.com/tokenops/tokenops/encode"
	"github.com/tokenops/tokenops/rules"
	"github.com/tokenops/tokenops/stream"
	"github.com/tokenops/tokenops/token"
	"github.com/tokenops/tokenops/tokenize"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Rule == "" {
		return fmt.Errorf("%w: match requires -n <rule>", cli.ErrUsage)
	}
	set, err := loadSet(cfg.RulesFile)
	if err != nil {
		return err
	}
	rule, ok := set.Rule(cfg.Rule)
	if !ok {
		return fmt.Errorf("%w: rule %q not in %s", cli.ErrUsage, cfg.Rule, cfg.RulesFile)
	}
	return eachInput(args, func(name string, data []byte) error {
		toks, err := tokenize.Tokenize(nil, data, cfg.tokenizeOpts()...)
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", name, err)
		}
		s := stream.NewMutable(toks)
		for s.HasMore() {
			m := rule.Match(s, set.Context())
			if m == nil {
				s.Advance()
				continue
			}
			if err := printMatch(cfg, cc, name, m, s); err != nil {
				return err
			}
			if m.IsZeroWidth() {
				s.Advance()
			}
		}
		return nil
	})
}

// printMatch reports one match span. With -C the tokens following the
// match appear after it, pulled from the stream's lookahead view.
func printMatch(cfg *MatchConfig, cc *cli.Context, name string, m *rules.Match, s stream.TokenStream) error {
	line := fmt.Sprintf("%s: [%d,%d) %q", name, m.StartIndex, m.EndIndex, m.Text())
	if cfg.Context > 0 && s.HasMore() {
		cur, err := s.Current()
		if err != nil {
			return err
		}
		next := []token.Token{cur}
		for _, t := range s.Lookahead().All() {
			if len(next) >= cfg.Context {
				break
			}
			next = append(next, t)
		}
		line += fmt.Sprintf("  next %q", encode.String(next))
	}
	_, err := fmt.Fprintln(cc.Out, line)
	return err
}
