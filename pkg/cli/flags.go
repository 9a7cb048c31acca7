/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mammos-project/mammos-gate/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the report to a file instead of stdout",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Report format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}

	vocabularyFlag = &cli.StringFlag{
		Name:  "vocabulary",
		Usage: "Path or URL of a concept list file overriding the built-in vocabulary",
	}

	vocabularyServiceFlag = &cli.StringFlag{
		Name:    "vocabulary-service",
		Usage:   "Base URL of a vocabulary service to resolve ontology labels against",
		Sources: cli.EnvVars("MAMMOS_VOCABULARY_URL"),
	}
)
