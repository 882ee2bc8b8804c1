package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tokenops/tokenops/encode"
	"github.com/tokenops/tokenops/token"
	"github.com/tokenops/tokenops/tokenize"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(name string, data []byte) error {
		toks, err := tokenize.Tokenize(nil, data, cfg.tokenizeOpts()...)
		if err != nil {
			return fmt.Errorf("error tokenizing %s: %w", name, err)
		}
		if cfg.JSON {
			return writeJSON(cc.Out, toks)
		}
		return encode.Dump(toks, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

type tokenJSON struct {
	Index       int            `json:"index"`
	Kind        string         `json:"kind"`
	Value       string         `json:"value"`
	Pos         *posJSON       `json:"pos,omitempty"`
	Ord         *int           `json:"ord,omitempty"`
	Parts       int            `json:"parts,omitempty"`
	Annotations map[string]any `json:"annotations,omitempty"`
}

type posJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

func writeJSON(w io.Writer, toks []token.Token) error {
	rows := make([]tokenJSON, len(toks))
	for i, t := range toks {
		row := tokenJSON{
			Index: i,
			Kind:  encode.ClassOf(t).String(),
			Value: t.Value(),
		}
		if pos := t.Pos(); pos.IsPositioned() {
			row.Pos = &posJSON{Line: pos.Line, Column: pos.Column, Offset: pos.Offset}
		}
		if ord, ok := token.IndexOf(t); ok {
			row.Ord = &ord
		}
		for x := t; x != nil; x = token.Unwrap(x) {
			if g, ok := x.(*token.Group); ok {
				row.Parts = len(g.Tokens())
				break
			}
		}
		if meta, ok := token.AnnotationsOf(t); ok {
			row.Annotations = meta
		}
		rows[i] = row
	}
	d, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(d, '\n'))
	return err
}
