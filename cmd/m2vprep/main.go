package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(ui).RunContext(ctx, os.Args); err != nil {
		fprintErr(ui.Err, err)
		stop()
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "m2vprep: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "m2vprep",
		Usage:                "turn CoNLL-U corpora and word similarity files into morph2vec training input",
		Version:              BuildTag,
		Reader:               ui.In,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		// errors are printed once, by main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file (default ~/.config/m2vprep/config.toml or ./m2vprep.toml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "console or json",
			},
		},
		Commands: []*cli.Command{
			conlluCmd(ui),
			evalCmd(ui),
			inspectCmd(ui),
			shellCmd(ui),
			statCmd(ui),
			importLexiconCmd(ui),
			localesCmd(ui),
			configCmd(ui),
			versionCmd(ui),
		},
	}
}
