/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mammos-project/mammos-gate/pkg/ontology"
	"github.com/mammos-project/mammos-gate/pkg/validator"
)

// Checker verifies metadata document content against a convention's
// required entries.
type Checker struct {
	log      *slog.Logger
	resolver ontology.Resolver
}

// CheckerOption is a functional option for configuring Checker instances.
type CheckerOption func(*Checker)

// WithLogger returns a CheckerOption that sets the diagnostics sink.
func WithLogger(logger *slog.Logger) CheckerOption {
	return func(c *Checker) {
		c.log = logger
	}
}

// NewChecker creates a Checker using the given vocabulary resolver.
func NewChecker(resolver ontology.Resolver, opts ...CheckerOption) *Checker {
	c := &Checker{resolver: resolver}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// Check verifies that the document contains exactly the entries named
// in want, each carrying the expected ontology label, and nothing
// else. Every problem is logged individually and returned as a
// finding; the check never stops at the first violation. The boolean
// is true only when no findings were produced.
//
// Extra entries are determined by set difference over the document's
// entry names, so the document needs no self-describing schema.
func (c *Checker) Check(ctx context.Context, doc *Document, want map[string]string) (bool, []validator.Finding) {
	var findings []validator.Finding
	fail := func(name, message string) {
		findings = append(findings, validator.Finding{
			Severity: validator.SeverityError,
			Rule:     validator.RuleMetadata,
			Path:     name,
			Message:  message,
		})
	}

	required := make([]string, 0, len(want))
	for name := range want {
		required = append(required, name)
	}
	sort.Strings(required)

	for _, name := range required {
		entry, ok := doc.Get(name)
		if !ok {
			c.log.Error("missing metadata entry", "entry", name)
			fail(name, "required metadata entry not found")
			continue
		}

		concept, err := c.resolver.Resolve(ctx, entry.Label)
		if err != nil {
			c.log.Error("cannot resolve ontology label", "entry", name, "label", entry.Label, "error", err)
			fail(name, fmt.Sprintf("ontology label %q cannot be resolved", entry.Label))
			continue
		}

		if concept.Label != want[name] {
			c.log.Error("wrong ontology label",
				"entry", name, "label", concept.Label, "expected", want[name])
			fail(name, fmt.Sprintf("entry has label %q, expected %q", concept.Label, want[name]))
			continue
		}

		c.log.Debug("found metadata entry", "entry", name, "label", concept.Label, "iri", concept.IRI)
	}

	for _, name := range doc.Names() {
		if _, ok := want[name]; !ok {
			c.log.Error("unexpected metadata entry", "entry", name)
			fail(name, "metadata entry not allowed")
		}
	}

	return len(findings) == 0, findings
}
