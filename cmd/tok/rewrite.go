package main

import (
	"fmt"
	"io"

	"github.com/tokenops/tokenops/diff"
	"github.com/tokenops/tokenops/encode"
	"github.com/tokenops/tokenops/tokenize"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func rewrite(cfg *RewriteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rewrite.Parse(cc, args)
	if err != nil {
		return err
	}
	set, err := loadSet(cfg.RulesFile)
	if err != nil {
		return err
	}
	return eachInput(args, func(name string, data []byte) error {
		toks, err := tokenize.Tokenize(nil, data, cfg.tokenizeOpts()...)
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", name, err)
		}
		out := set.Rewrite(toks)
		if cfg.Diff {
			color.NoColor = !cfg.colorsOn(cc.Out)
			_, err := io.WriteString(cc.Out, diff.Streams(toks, out)+"\n")
			return err
		}
		return encode.Encode(out, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
