package main

import (
	"bufio"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/m2vprep/shell"
)

func inspectCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "print the tokens of words or CoNLL-U lines",
		ArgsUsage: "[WORD...]",
		Description: "Prints the tokens of the given words. Without arguments every line of\n" +
			"stdin is read: lines with a tab are CoNLL-U token lines, others are words.",
		Flags: append(factoryFlags(), formatFlag()),
		Action: withEnv(ui, func(c *cli.Context, env *appEnv) error {
			fo, err := factoryOptions(c, env.cfg)
			if err != nil {
				return err
			}
			opts := InspectOptions{
				FactoryOptions: fo,
				Format:         c.String("format"),
				Words:          c.Args().Slice(),
			}
			return inspectCommand(opts, env, ui)
		}),
	}
}

func inspectCommand(opts InspectOptions, env *appEnv, ui UI) error {
	f, _, err := newFactory(env.pool, opts.FactoryOptions)
	if err != nil {
		return err
	}

	h := shell.NewHandler(f, opts.Format, ui.Out)

	if len(opts.Words) > 0 {
		return h.Execute(strings.Join(opts.Words, " "))
	}

	sc := bufio.NewScanner(ui.In)
	for sc.Scan() {
		if err := h.Execute(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
