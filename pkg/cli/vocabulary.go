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

	"github.com/mammos-project/mammos-gate/pkg/dataset"
	"github.com/mammos-project/mammos-gate/pkg/header"
	"github.com/mammos-project/mammos-gate/pkg/ontology"
	"github.com/mammos-project/mammos-gate/pkg/serializer"
)

// vocabularyResource is the serializable form of the active vocabulary.
type vocabularyResource struct {
	header.Header `json:",inline" yaml:",inline"`

	Concepts []ontology.Concept `json:"concepts" yaml:"concepts"`
}

func vocabularyCmd() *cli.Command {
	return &cli.Command{
		Name:  "vocabulary",
		Usage: "Print the ontology vocabulary used for metadata checks",
		Description: `Print the controlled vocabulary of ontology concepts.

Without flags this is the built-in vocabulary. With --vocabulary the
concept list file is loaded and printed instead, which is useful for
checking a custom vocabulary before using it in validation.

# Examples

Print the built-in vocabulary:
  mammosctl vocabulary

Check a custom concept list file:
  mammosctl vocabulary --vocabulary ./concepts.yaml -f table`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			vocabularyFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			vocab := ontology.Default()
			if path := cmd.String("vocabulary"); path != "" {
				loaded, err := ontology.Load(path)
				if err != nil {
					return fmt.Errorf("failed to load vocabulary from %q: %w", path, err)
				}
				vocab = loaded
			}

			resource := &vocabularyResource{Concepts: vocab.Concepts()}
			resource.Init(header.KindVocabulary, dataset.APIVersion, version)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if closer, ok := ser.(serializer.Closer); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}
			}()

			return ser.Serialize(ctx, resource)
		},
	}
}
