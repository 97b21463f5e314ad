package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// errUsage prints the command help and returns an error describing the misuse.
func errUsage(c *cli.Context, msg string) error {
	_ = cli.ShowSubcommandHelp(c)
	return fmt.Errorf("%s: %s", c.Command.Name, msg)
}
