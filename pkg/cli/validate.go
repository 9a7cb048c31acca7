/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mammos-project/mammos-gate/pkg/dataset"
	"github.com/mammos-project/mammos-gate/pkg/dataset/uppsala"
	"github.com/mammos-project/mammos-gate/pkg/ontology"
	"github.com/mammos-project/mammos-gate/pkg/serializer"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a dataset directory against a convention",
		Description: `Validate a dataset directory against a named convention.

The convention declares the directory tree a dataset must have, the
files each directory must and may contain, and the entries the
metadata document must carry. Every violation is reported; validation
never stops at the first problem.

The command exits with a non-zero status when the dataset root does
not exist or the dataset does not satisfy the convention.

# Examples

Validate an Uppsala dataset and print the report:
  mammosctl validate uppsala ./my-dataset

Write the report to a JSON file:
  mammosctl validate uppsala ./my-dataset -o report.json -f json

Resolve ontology labels against a remote vocabulary service:
  mammosctl validate uppsala ./my-dataset --vocabulary-service https://vocab.mammos.eu`,
		Commands: []*cli.Command{
			{
				Name:      "uppsala",
				Usage:     "Validate a dataset against the Uppsala convention",
				ArgsUsage: "PATH",
				Flags: []cli.Flag{
					outputFlag,
					formatFlag,
					vocabularyFlag,
					vocabularyServiceFlag,
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runValidate(ctx, cmd, uppsala.Convention())
				},
			},
		},
	}
}

func runValidate(ctx context.Context, cmd *cli.Command, conv *dataset.Convention) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one dataset path argument, got %d", cmd.Args().Len())
	}
	basePath := cmd.Args().First()

	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	resolver, err := buildResolver(cmd)
	if err != nil {
		return err
	}

	composer := dataset.New(
		dataset.WithLogger(slog.Default()),
		dataset.WithResolver(resolver),
	)

	start := time.Now()
	result, err := composer.Validate(ctx, basePath, conv)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	report := dataset.NewReport(conv, version, result, time.Since(start))

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, report); err != nil {
		return fmt.Errorf("failed to serialize validation report: %w", err)
	}

	slog.Info("validation completed",
		"convention", conv.Name,
		"valid", report.Valid,
		"errors", report.Summary.Errors,
		"warnings", report.Summary.Warnings,
		"duration", report.Summary.Duration)

	if !report.Valid {
		return fmt.Errorf("dataset does not satisfy the %s convention: %d error(s)",
			conv.Name, report.Summary.Errors)
	}
	return nil
}

// buildResolver picks the vocabulary source: a remote service when
// --vocabulary-service is set, a concept list file when --vocabulary
// is set, otherwise the built-in vocabulary.
func buildResolver(cmd *cli.Command) (ontology.Resolver, error) {
	if base := cmd.String("vocabulary-service"); base != "" {
		slog.Debug("using vocabulary service", "url", base)
		return ontology.NewClient(base), nil
	}
	if path := cmd.String("vocabulary"); path != "" {
		slog.Debug("loading vocabulary file", "path", path)
		v, err := ontology.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary from %q: %w", path, err)
		}
		return v, nil
	}
	return ontology.Default(), nil
}
