package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/m2vprep/preprocess"
)

func conlluCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "conllu",
		Usage:     "write one flat line per CoNLL-U sentence",
		ArgsUsage: "INPUT OUTPUT",
		Description: "Reads the sentences of a CoNLL-U file and writes each one as a line of\n" +
			"space separated tokens. With a locale, tokens get the morphemes of the lexicon.\n" +
			"INPUT and OUTPUT may be - for stdin and stdout.",
		Flags: preprocessFlags(),
		Action: withEnv(ui, func(c *cli.Context, env *appEnv) error {
			opts, err := preprocessOptions(c, env.cfg)
			if err != nil {
				return err
			}
			return preprocessCommand(c.Context, "conllu", preprocess.Conllu, opts, env, ui)
		}),
	}
}
