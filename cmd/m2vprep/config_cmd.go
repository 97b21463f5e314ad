package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/m2vprep/config"
)

func configCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "manage the configuration file",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a sample configuration file",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "overwrite an existing file"},
				},
				Action: func(c *cli.Context) error {
					return configInitCommand(c.String("config"), c.Bool("force"), ui)
				},
			},
			{
				Name:  "show",
				Usage: "print the resolved configuration",
				Action: withEnv(ui, func(c *cli.Context, env *appEnv) error {
					return env.cfg.Encode(ui.Out)
				}),
			},
		},
	}
}

func configInitCommand(path string, force bool, ui UI) error {
	var err error
	if path == "" {
		path, err = config.DefaultConfigPath()
	} else {
		path, err = config.ExpandPath(path)
	}
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite it", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := config.CreateSample(path); err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Wrote %s\n", path)
	return nil
}
