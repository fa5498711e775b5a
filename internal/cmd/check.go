package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.scanforge.dev/scanfmt/internal/app"
	"go.scanforge.dev/scanfmt/internal/diag"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a '.scanfmt' file, then this file alone is checked
for syntax errors.

If it is a directory, this directory is scanned recursively for all
files with the '.scanfmt' extension and any matching files will be
validated.

Pass --fixtures to additionally validate a batch of ad-hoc format
strings listed in a YAML file under a top level "formats" key. The path
is still checked as well (it defaults to the current directory).
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var (
		path     string
		config   string
		fixtures string
		options  app.CheckOptions
	)

	return cli.New(
		"check",
		cli.Short("Check format strings for syntax errors"),
		cli.Long(checkLong),
		cli.Arg(&path, "path", "The path to check", cli.ArgDefault(".")),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Flag(&config, "config", 'c', "Path to a TOML config file"),
		cli.Flag(&fixtures, "fixtures", 'f', "Path to a YAML batch of format strings to check"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(options.Debug, config, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			if err != nil {
				return err
			}

			handler := diag.PrettyConsoleHandler(cmd.Stderr())

			if fixtures != "" {
				batch, err := app.LoadFixtures(fixtures)
				if err != nil {
					return err
				}

				if err := a.CheckFixtures(ctx, batch, handler); err != nil {
					return err
				}
			}

			return a.CheckPath(ctx, path, handler, options)
		}),
	)
}
