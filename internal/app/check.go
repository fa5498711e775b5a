package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.followtheprocess.codes/msg"
	"go.scanforge.dev/scanfmt/internal/diag"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Debug enables debug logging.
	Debug bool
}

// CheckPath validates every format string stored under path: a single
// ".scanfmt" file, or a directory of them, one format string per file.
func (a App) CheckPath(ctx context.Context, path string, handler diag.ErrorHandler, options CheckOptions) error {
	a.logger.Debug("checking path", slog.String("path", path))

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		a.logger.Debug("path is a directory", slog.String("path", path))

		err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if filepath.Ext(path) == ".scanfmt" {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", path, err)
		}
	} else {
		a.logger.Debug("path is a file", slog.String("path", path))

		paths = []string{path}
	}

	a.logger.Debug("checking format files", slog.Int("number", len(paths)))

	group := errgroup.Group{}

	for _, path := range paths {
		group.Go(func() error {
			return a.checkFile(ctx, path, handler)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, path := range paths {
		msg.Fsuccess(a.stdout, "%s is valid", path)
	}

	return nil
}

// CheckFixtures validates every format string in fixtures concurrently,
// the batch-mode counterpart to [App.CheckPath] for format strings that
// do not each warrant their own ".scanfmt" file.
func (a App) CheckFixtures(ctx context.Context, fixtures Fixtures, handler diag.ErrorHandler) error {
	a.logger.Debug("checking fixtures", slog.Int("number", len(fixtures.Formats)))

	group := errgroup.Group{}

	for i, format := range fixtures.Formats {
		group.Go(func() error {
			wrapped := func(pos diag.Position, message string) {
				if handler != nil {
					handler(pos, fmt.Sprintf("fixture[%d]: %s", i, message))
				}
			}

			if err := a.Check(ctx, format, wrapped); err != nil {
				return fmt.Errorf("fixture[%d] %q: %w", i, format, err)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for i, format := range fixtures.Formats {
		msg.Fsuccess(a.stdout, "fixture[%d] %q is valid", i, format)
	}

	return nil
}

// checkFile runs a format check on the format string stored in a single file.
func (a App) checkFile(ctx context.Context, path string, handler diag.ErrorHandler) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	format := strings.TrimRight(string(contents), "\n")

	wrapped := func(pos diag.Position, message string) {
		if handler != nil {
			handler(pos, fmt.Sprintf("%s: %s", path, message))
		}
	}

	// We don't actually care about the result, just that it parses.
	if err := a.Check(ctx, format, wrapped); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
