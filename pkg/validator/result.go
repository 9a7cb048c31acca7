// Copyright (c) 2026, The MaMMoS Project.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import "github.com/mammos-project/mammos-gate/pkg/errors"

// Severity classifies a finding.
type Severity string

const (
	// SeverityError marks a finding that definitely violates the
	// convention (missing required element, failed choice or pair rule).
	SeverityError Severity = "error"

	// SeverityWarning marks a finding for content outside the declared
	// rules (unexpected files and directories). Warnings still fail the
	// verdict under the closed-world policy.
	SeverityWarning Severity = "warning"
)

// Rule identifies the rule category a finding belongs to.
type Rule string

const (
	RuleRequiredFile   Rule = "required-file"
	RuleChoiceGroup    Rule = "choice-group"
	RulePrefixPair     Rule = "prefix-pair"
	RuleUnexpectedFile Rule = "unexpected-file"
	RuleRequiredDir    Rule = "required-dir"
	RuleUnexpectedDir  Rule = "unexpected-dir"
	RuleMetadata       Rule = "metadata"
)

// Finding records a single convention violation. Findings are soft:
// they are reported through the Result, never raised as errors.
type Finding struct {
	// Severity is the finding classification.
	Severity Severity `json:"severity" yaml:"severity"`

	// Rule is the rule category that produced the finding.
	Rule Rule `json:"rule" yaml:"rule"`

	// Path is the root-relative path the finding refers to.
	Path string `json:"path" yaml:"path"`

	// Message describes the violation.
	Message string `json:"message" yaml:"message"`
}

// Result is the outcome of evaluating one or more directories of a
// single dataset. Results are immutable once produced: Combine builds
// a fresh Result rather than mutating either operand, so results may
// be merged in any order.
type Result struct {
	// Root is the absolute dataset root path all recognized paths are
	// relative to.
	Root string

	// OK is true when every evaluated rule was satisfied and no
	// unexpected content was found.
	OK bool

	// Files holds the root-relative paths of every file matched by a
	// declared rule. Unexpected files never appear here.
	Files Set

	// Dirs holds the root-relative paths of every subdirectory matched
	// by a required or optional subdirectory rule.
	Dirs Set

	// Findings lists every rule violation encountered, in evaluation
	// order within a directory.
	Findings []Finding
}

// Identity returns the neutral element for Combine: a passing result
// with empty recognized sets. It equals the evaluation of an empty
// rule set against an empty directory.
func Identity(root string) *Result {
	return &Result{
		Root:  root,
		OK:    true,
		Files: NewSet(),
		Dirs:  NewSet(),
	}
}

// Combine merges two results of the same dataset root. Verdicts are
// ANDed, recognized sets are unioned, and findings concatenated. The
// operation is associative and commutative up to finding order.
// Combining results of different roots is a hard failure.
func Combine(a, b *Result) (*Result, error) {
	if a.Root != b.Root {
		return nil, errors.NewWithContext(
			errors.ErrCodeRootMismatch,
			"cannot combine results from different dataset roots",
			map[string]any{"a": a.Root, "b": b.Root},
		)
	}

	findings := make([]Finding, 0, len(a.Findings)+len(b.Findings))
	findings = append(findings, a.Findings...)
	findings = append(findings, b.Findings...)

	return &Result{
		Root:     a.Root,
		OK:       a.OK && b.OK,
		Files:    a.Files.Union(b.Files),
		Dirs:     a.Dirs.Union(b.Dirs),
		Findings: findings,
	}, nil
}
