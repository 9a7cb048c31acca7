/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mammos-project/mammos-gate/pkg/logging"
)

const (
	name           = "mammosctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Root builds the top-level command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "MaMMoS dataset submission gate",
		Version: version,
		Description: fmt.Sprintf(`mammosctl - MaMMoS dataset submission gate

Version: %s
Commit:  %s
Built:   %s

Checks a dataset directory against a named convention before ingestion:
the directory tree, the files each directory must and may contain, and
the ontology-labeled entries of the metadata document.`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log at debug level (overrides --log-level)",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Log warnings and errors only (overrides --log-level)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := cmd.String("log-level")
			switch {
			case cmd.Bool("verbose"):
				level = "debug"
			case cmd.Bool("quiet"):
				level = "warn"
			}
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			validateCmd(),
			vocabularyCmd(),
		},
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string) error {
	return Root().Run(ctx, args)
}
