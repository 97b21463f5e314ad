package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func localesCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "locales",
		Usage: "list the locales of the lexicon and their number of entries",
		Flags: []cli.Flag{lexiconFlag()},
		Action: withEnv(ui, func(c *cli.Context, env *appEnv) error {
			fo, err := factoryOptions(c, env.cfg)
			if err != nil {
				return err
			}
			return localesCommand(fo.LexiconPath, env, ui)
		}),
	}
}

func localesCommand(path string, env *appEnv, ui UI) error {
	repo, err := NewLexiconRepository(env.pool, path)
	if err != nil {
		return err
	}

	locales, err := repo.Locales()
	if err != nil {
		return err
	}

	t := newCountTable(path, "locale", "entries")
	for _, locale := range locales {
		n, err := repo.Count(locale)
		if err != nil {
			return fmt.Errorf("count %s: %w", locale, err)
		}
		t.add(locale, n)
	}

	t.write(ui.Out)
	return nil
}
