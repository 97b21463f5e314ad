package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/m2vprep/morph"
	"github.com/revelaction/m2vprep/shell"
)

func shellCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "interactive inspect, with word completion from the lexicon",
		Flags: append(factoryFlags(), formatFlag()),
		Action: withEnv(ui, func(c *cli.Context, env *appEnv) error {
			fo, err := factoryOptions(c, env.cfg)
			if err != nil {
				return err
			}
			return shellCommand(InspectOptions{FactoryOptions: fo, Format: c.String("format")}, env, ui)
		}),
	}
}

func shellCommand(opts InspectOptions, env *appEnv, ui UI) error {
	f, repo, err := newFactory(env.pool, opts.FactoryOptions)
	if err != nil {
		return err
	}

	// now present the REPL
	h := shell.NewHandler(f, opts.Format, ui.Out)
	if repo != nil {
		locale, err := morph.CanonicalLocale(opts.Locale)
		if err != nil {
			return err
		}
		h.Suggester = repo
		h.Locale = locale
	}
	return h.Run()
}
