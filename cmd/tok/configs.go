package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tokenops/tokenops/encode"
	"github.com/tokenops/tokenops/ruleset"
	"github.com/tokenops/tokenops/tokenize"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`
	WS    bool `cli:"name=ws desc='drop whitespace instead of shadowing it'"`

	Main *cli.Command
}

func (cfg *MainConfig) tokenizeOpts() []tokenize.Option {
	if cfg.WS {
		return []tokenize.Option{tokenize.DropWhitespace()}
	}
	return nil
}

// colorsOn decides color for w: an explicit -color flag wins, then
// whether w is a terminal.
func (cfg *MainConfig) colorsOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	var res []encode.Option
	if cfg.WS {
		res = append(res, encode.Separator(" "))
	}
	if cfg.colorsOn(w) {
		res = append(res, encode.Colors(encode.NewColors()))
	}
	return res
}

type TokensConfig struct {
	*MainConfig
	JSON bool `cli:"name=json desc='emit the token table as JSON'"`

	Tokens *cli.Command
}

type MatchConfig struct {
	*MainConfig
	RulesFile string `cli:"name=r desc='rule set file'"`
	Rule      string `cli:"name=n desc='name of the rule to match'"`
	Context   int    `cli:"name=C desc='following tokens of context to show'"`

	Match *cli.Command
}

type RewriteConfig struct {
	*MainConfig
	RulesFile string `cli:"name=r desc='rule set file'"`
	Diff      bool   `cli:"name=d desc='show a diff instead of the result'"`

	Rewrite *cli.Command
}

type RulesConfig struct {
	*MainConfig
	RulesFile string `cli:"name=r desc='rule set file'"`

	Rules *cli.Command
}

func loadSet(path string) (*ruleset.Set, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: missing -r <rules.yaml>", cli.ErrUsage)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	set, err := ruleset.Load(f)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return set, nil
}

// eachInput runs fn over every file argument, with "-" and an empty
// argument list meaning stdin.
func eachInput(args []string, fn func(name string, data []byte) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		if err := fn(arg, data); err != nil {
			return err
		}
	}
	return nil
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return data, nil
}
