package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/m2vprep/config"
	"github.com/revelaction/m2vprep/render"
)

// Option structs for subcommands that have flags
type PreprocessOptions struct {
	FactoryOptions
	Input    string
	Output   string
	Workers  int
	Progress bool
}

type InspectOptions struct {
	FactoryOptions
	Format string
	Words  []string
}

type StatOptions struct {
	Input string
}

type ImportLexiconOptions struct {
	From    string
	To      string
	Locales []string
}

// factoryFlags are shared by every command that builds tokens.
func factoryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "locale",
			Aliases: []string{"l"},
			Usage:   "locale of the morphology lexicon",
			EnvVars: []string{config.EnvLocale},
		},
		&cli.StringFlag{
			Name:    "lexicon",
			Usage:   "lexicon directory (TSV files) or SQLite database",
			EnvVars: []string{config.EnvLexiconPath},
		},
		&cli.IntFlag{
			Name:  "min-ngram",
			Usage: "minimum character n-gram length",
		},
		&cli.IntFlag{
			Name:  "max-ngram",
			Usage: "maximum character n-gram length",
		},
	}
}

func preprocessFlags() []cli.Flag {
	return append(factoryFlags(),
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "number of units processed in parallel",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "do not show the progress bar",
		},
	)
}

func lexiconFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "lexicon",
		Usage:   "lexicon directory (TSV files) or SQLite database",
		EnvVars: []string{config.EnvLexiconPath},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format: flat, json or color",
		Value:   render.Defaultformat,
	}
}

// factoryOptions merges the flags over the configuration.
func factoryOptions(c *cli.Context, cfg *config.Config) (FactoryOptions, error) {
	opts := FactoryOptions{
		Locale:      cfg.Locale,
		LexiconPath: cfg.LexiconPath,
		MinNGram:    cfg.NGram.Min,
		MaxNGram:    cfg.NGram.Max,
	}

	if c.IsSet("locale") {
		opts.Locale = c.String("locale")
	}
	if c.IsSet("lexicon") {
		path, err := config.ExpandPath(c.String("lexicon"))
		if err != nil {
			return opts, err
		}
		opts.LexiconPath = path
	}
	if c.IsSet("min-ngram") {
		opts.MinNGram = c.Int("min-ngram")
	}
	if c.IsSet("max-ngram") {
		opts.MaxNGram = c.Int("max-ngram")
	}

	return opts, nil
}

func preprocessOptions(c *cli.Context, cfg *config.Config) (PreprocessOptions, error) {
	if c.NArg() != 2 {
		return PreprocessOptions{}, errUsage(c, "expected INPUT and OUTPUT arguments")
	}

	fo, err := factoryOptions(c, cfg)
	if err != nil {
		return PreprocessOptions{}, err
	}

	opts := PreprocessOptions{
		FactoryOptions: fo,
		Input:          c.Args().Get(0),
		Output:         c.Args().Get(1),
		Workers:        cfg.Workers,
		Progress:       cfg.Progress && !c.Bool("no-progress"),
	}
	if c.IsSet("workers") {
		opts.Workers = c.Int("workers")
	}
	return opts, nil
}
