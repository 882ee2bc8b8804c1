package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "tok").
		WithSynopsis("tok [opts] command [opts]").
		WithDescription("tok tokenizes, matches and rewrites token streams with rules.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokMain(cfg, cc, args)
		}).
		WithSubs(
			TokensCommand(cfg),
			MatchCommand(cfg),
			RewriteCommand(cfg),
			RulesCommand(cfg))
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t").
		WithSynopsis("tokens [-ws] [-json] [files]").
		WithDescription("tokenize files and print the token table").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Match, "match").
		WithAliases("m").
		WithSynopsis("match -r <rules.yaml> -n <rule> [-C n] [files]").
		WithDescription("print the spans a named rule matches").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func RewriteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RewriteConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Rewrite, "rewrite").
		WithAliases("rw").
		WithSynopsis("rewrite -r <rules.yaml> [-d] [files]").
		WithDescription("run the rule set's passes over files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rewrite(cfg, cc, args)
		})
}

func RulesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RulesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Rules, "rules").
		WithAliases("r").
		WithSynopsis("rules -r <rules.yaml>").
		WithDescription("list a rule set's definitions, rules and passes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rulesList(cfg, cc, args)
		})
}
