/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the mammosctl command line interface.
//
// The CLI wires the dataset composer, the convention definitions, and
// the vocabulary resolvers into user-facing commands:
//
//	validate uppsala PATH  - validate a dataset against the Uppsala convention
//	vocabulary             - print the active ontology vocabulary
//
// Global flags control logging; per-command flags select the report
// destination and format and the vocabulary source.
package cli
