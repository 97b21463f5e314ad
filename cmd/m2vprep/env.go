package main

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/m2vprep/config"
	"github.com/revelaction/m2vprep/logging"
)

// appEnv holds what every command needs: the resolved configuration, the
// logger and the SQLite pool of the lexicon, if one gets opened.
type appEnv struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *Pool
}

func newAppEnv(c *cli.Context, ui UI) (*appEnv, error) {
	cfg, _, _, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Logging.Format = c.String("log-format")
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: ui.Err,
	})
	if err != nil {
		return nil, err
	}

	return &appEnv{cfg: cfg, logger: logger, pool: &Pool{}}, nil
}

func (e *appEnv) Close() error {
	return e.pool.Close()
}

// withEnv adapts a command function to a cli.ActionFunc.
func withEnv(ui UI, fn func(c *cli.Context, env *appEnv) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		env, err := newAppEnv(c, ui)
		if err != nil {
			return err
		}
		defer env.Close()

		return fn(c, env)
	}
}
