package main

import (
	"fmt"
	"sort"

	"github.com/scott-cotton/cli"
)

func rulesList(cfg *RulesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rules.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: rules takes no file arguments", cli.ErrUsage)
	}
	set, err := loadSet(cfg.RulesFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "definitions:\n")
	for _, name := range sortedKeys(set.Definitions) {
		fmt.Fprintf(cc.Out, "\t%s: %v\n", name, set.Definitions[name])
	}
	fmt.Fprintf(cc.Out, "rules:\n")
	for _, name := range sortedKeys(set.Rules) {
		fmt.Fprintf(cc.Out, "\t%s: %s\n", name, set.Rules[name])
	}
	fmt.Fprintf(cc.Out, "passes:\n")
	for i, p := range set.Passes {
		fmt.Fprintf(cc.Out, "\t%d %s: %s -> %s\n", i, p.Name, p.Rule, p.Action)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
