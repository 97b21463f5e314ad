package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/m2vprep/preprocess"
)

func evalCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "write one flat line per word similarity pair",
		ArgsUsage: "INPUT OUTPUT",
		Description: "Reads lines of \"word1 word2 similarity\" (commas count as spaces) and\n" +
			"writes \"token1 token2 similarity\". Needs a locale.\n" +
			"INPUT and OUTPUT may be - for stdin and stdout.",
		Flags: preprocessFlags(),
		Action: withEnv(ui, func(c *cli.Context, env *appEnv) error {
			opts, err := preprocessOptions(c, env.cfg)
			if err != nil {
				return err
			}
			if opts.Locale == "" {
				return errNoLocale
			}
			return preprocessCommand(c.Context, "eval", preprocess.Eval, opts, env, ui)
		}),
	}
}
