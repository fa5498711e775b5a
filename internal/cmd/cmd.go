// Package cmd implements scanfmt's command line interface.
package cmd

import (
	"context"
	"io"
	"os"

	"go.followtheprocess.codes/cli"
	"go.scanforge.dev/scanfmt/internal/app"
	"go.scanforge.dev/scanfmt/locale"
)

//nolint:gochecknoglobals // These have to be here
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the scanfmt CLI.
func Build() (*cli.Command, error) {
	var debug bool

	return cli.New(
		"scanfmt",
		cli.Short("A type-safe, format-string-directed text scanning toolkit"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Check a format file for syntax errors", "scanfmt check ./formats/person.scanfmt"),
		cli.Example("Check every format string under a directory", "scanfmt check ./formats"),
		cli.Example("Scan lines of stdin against a format string", `scanfmt run '{}, {}'`),
		cli.Flag(&debug, "debug", 'd', "Enable debug logs"),
		cli.SubCommands(
			run,
			check,
		),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			a := app.New(debug, version, os.Stdin, os.Stdout, os.Stderr)
			a.Hello(ctx)

			return nil
		}),
	)
}

// newApp builds an [app.App] for a subcommand, loading --config (if set)
// to resolve the default locale.
func newApp(debug bool, configPath string, stdin io.Reader, stdout, stderr io.Writer) (app.App, error) {
	a := app.New(debug, version, stdin, stdout, stderr)

	if configPath == "" {
		return a, nil
	}

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return app.App{}, err
	}

	tag, ok, err := cfg.Tag()
	if err != nil {
		return app.App{}, err
	}

	if ok {
		a = a.WithLocale(locale.ForTag(tag))
	}

	return a, nil
}
