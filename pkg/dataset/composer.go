/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mammos-project/mammos-gate/pkg/errors"
	"github.com/mammos-project/mammos-gate/pkg/metadata"
	"github.com/mammos-project/mammos-gate/pkg/ontology"
	"github.com/mammos-project/mammos-gate/pkg/validator"
)

// Composer walks a convention tree, evaluating each directory and
// folding the per-directory results into a single dataset verdict.
type Composer struct {
	log      *slog.Logger
	eval     *validator.Validator
	resolver ontology.Resolver
}

// Option is a functional option for configuring Composer instances.
type Option func(*Composer)

// WithLogger returns an Option that sets the diagnostics sink passed
// through to the directory evaluator and the metadata checker.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		c.log = logger
	}
}

// WithResolver returns an Option that sets the vocabulary resolver
// used by the metadata content check. Defaults to the built-in
// vocabulary.
func WithResolver(resolver ontology.Resolver) Option {
	return func(c *Composer) {
		c.resolver = resolver
	}
}

// New creates a new Composer with the provided options.
func New(opts ...Option) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.resolver == nil {
		c.resolver = ontology.Default()
	}
	c.eval = validator.New(validator.WithLogger(c.log))
	return c
}

// Walk evaluates node and, conditionally, its children. A child is
// descended into only when the parent evaluation recognized its
// directory, so structurally absent subtrees produce exactly one
// missing-directory finding instead of a cascade.
func (c *Composer) Walk(root string, node *Node) (*validator.Result, error) {
	result, err := c.eval.Evaluate(root, node.Dir, node.Rules)
	if err != nil {
		return nil, err
	}

	for _, child := range node.Children {
		if !result.Dirs.Has(child.Dir) {
			continue
		}
		childResult, err := c.Walk(root, child)
		if err != nil {
			return nil, err
		}
		result, err = validator.Combine(result, childResult)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Validate checks a dataset against a convention: the directory tree
// walk first, then the metadata content check when the walk recognized
// the metadata document. A missing dataset root is a hard NOT_FOUND
// failure, distinct from a dataset that is present but incomplete.
func (c *Composer) Validate(ctx context.Context, basePath string, conv *Convention) (*validator.Result, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument, "cannot resolve dataset path", err)
	}

	c.log.Info("reading dataset", "convention", conv.Name, "path", abs)

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		c.log.Error("dataset root does not exist", "path", abs)
		return nil, errors.Newf(errors.ErrCodeNotFound, "dataset root %q does not exist", abs)
	}

	result, err := c.Walk(abs, conv.Tree)
	if err != nil {
		return nil, err
	}

	if conv.Metadata.File != "" && result.Files.Has(conv.Metadata.File) {
		result, err = validator.Combine(result, c.checkMetadata(ctx, abs, conv))
		if err != nil {
			return nil, err
		}
	}

	if result.OK {
		c.log.Info("dataset contains all required files", "path", abs)
	} else {
		c.log.Error("dataset is incomplete", "path", abs)
	}

	return result, nil
}

// checkMetadata parses the metadata document and runs the content
// check. Parse failures are soft: they fail the verdict but never
// abort the validation pass.
func (c *Composer) checkMetadata(ctx context.Context, root string, conv *Convention) *validator.Result {
	res := validator.Identity(root)

	file := filepath.Join(root, filepath.FromSlash(conv.Metadata.File))
	doc, err := metadata.ParseFile(file)
	if err != nil {
		c.log.Error("cannot parse metadata document", "file", file, "error", err)
		res.OK = false
		res.Findings = append(res.Findings, validator.Finding{
			Severity: validator.SeverityError,
			Rule:     validator.RuleMetadata,
			Path:     conv.Metadata.File,
			Message:  "metadata document cannot be parsed",
		})
		return res
	}

	checker := metadata.NewChecker(c.resolver, metadata.WithLogger(c.log))
	ok, findings := checker.Check(ctx, doc, conv.Metadata.Entries)
	res.OK = ok
	res.Findings = findings
	return res
}
