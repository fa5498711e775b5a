// scanfmt is a command line front end to the scanfmt text scanning library.
package main

import (
	"os"

	"go.followtheprocess.codes/msg"
	"go.scanforge.dev/scanfmt/internal/cmd"
)

func main() {
	if err := run(); err != nil {
		msg.Err(err)
		os.Exit(1)
	}
}

func run() error {
	root, err := cmd.Build()
	if err != nil {
		return err
	}

	return root.Execute()
}
