package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
)

const runLong = `
Reads lines from stdin, one at a time, and scans each against format.

Every replacement field in format is treated as a string, since a
terminal has no way to declare a Go type: for typed scanning, use
scanfmt as a library instead of a command line tool.

Pass --config to set a default locale other than classic, for example
to scan comma-decimal floats.
`

// run returns the run subcommand.
func run() (*cli.Command, error) {
	var (
		format string
		debug  bool
		config string
	)

	return cli.New(
		"run",
		cli.Short("Scan lines of input against a format string"),
		cli.Long(runLong),
		cli.Arg(&format, "format", "The format string to scan each line with"),
		cli.Flag(&debug, "debug", 'd', "Enable debug logging"),
		cli.Flag(&config, "config", 'c', "Path to a TOML config file"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(debug, config, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			if err != nil {
				return err
			}

			return a.Run(ctx, format)
		}),
	)
}
