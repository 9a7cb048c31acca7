/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mammos-project/mammos-gate/pkg/errors"
)

// Validator evaluates directory rule sets against on-disk content.
type Validator struct {
	log *slog.Logger
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithLogger returns an Option that sets the diagnostics sink used for
// rule findings. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.log = logger
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	if v.log == nil {
		v.log = slog.Default()
	}
	return v
}

// Evaluate inspects the immediate contents of root/dir once and checks
// them against the rule set. The root must be absolute; dir is
// interpreted relative to it ("." for the root itself).
//
// Rule violations never produce an error: each one is logged and folded
// into Result.OK. Evaluation always covers every rule so all findings
// of a directory surface in a single pass. Only malformed input (a
// relative root) or an unreadable directory is a hard failure.
func (v *Validator) Evaluate(root, dir string, rules RuleSet) (*Result, error) {
	if !filepath.IsAbs(root) {
		return nil, errors.Newf(errors.ErrCodeInvalidArgument, "root %q must be absolute", root)
	}

	target := filepath.Join(root, filepath.FromSlash(dir))
	v.log.Info("processing directory", "dir", target)

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, fmt.Sprintf("cannot list directory %q", target), err)
	}

	foundFiles := NewSet()
	foundDirs := NewSet()
	for _, entry := range entries {
		if entry.IsDir() {
			foundDirs.Add(entry.Name())
		} else {
			foundFiles.Add(entry.Name())
		}
	}

	v.log.Debug("directory contents", "files", foundFiles.Sorted(), "dirs", foundDirs.Sorted())

	ev := &evaluation{
		log:       v.log,
		dir:       dir,
		remaining: foundFiles,
		result: &Result{
			Root:  root,
			OK:    true,
			Files: NewSet(),
			Dirs:  NewSet(),
		},
	}

	ev.requiredFiles(rules.RequiredFiles)
	ev.optionalFiles(rules.OptionalFiles)
	for _, group := range rules.ChoiceGroups {
		ev.choiceGroup(group)
	}
	for _, pair := range rules.PrefixPairs {
		ev.prefixPair(pair)
	}
	ev.unexpectedFiles()
	ev.directories(foundDirs, rules.RequiredDirs, rules.OptionalDirs)

	return ev.result, nil
}

// evaluation carries the working state of a single directory check.
// Each rule step removes the names it claimed from remaining so later
// steps never re-match them.
type evaluation struct {
	log       *slog.Logger
	dir       string
	remaining Set
	result    *Result
}

// rel converts a name in the evaluated directory to a root-relative
// slash-separated path.
func (ev *evaluation) rel(name string) string {
	return path.Join(filepath.ToSlash(ev.dir), name)
}

func (ev *evaluation) collectFiles(names Set) {
	for name := range names {
		ev.result.Files.Add(ev.rel(name))
	}
}

func (ev *evaluation) fail(severity Severity, rule Rule, name, message string) {
	ev.result.OK = false
	ev.result.Findings = append(ev.result.Findings, Finding{
		Severity: severity,
		Rule:     rule,
		Path:     ev.rel(name),
		Message:  message,
	})
}

func (ev *evaluation) requiredFiles(required Set) {
	found := required.Intersect(ev.remaining)
	for _, name := range found.Sorted() {
		ev.log.Debug("found required file", "file", name)
	}
	ev.collectFiles(found)

	for _, name := range required.Diff(ev.remaining).Sorted() {
		ev.log.Error("missing required file", "file", name, "dir", ev.dir)
		ev.fail(SeverityError, RuleRequiredFile, name, "required file not found")
	}

	ev.remaining = ev.remaining.Diff(required)
}

func (ev *evaluation) optionalFiles(optional Set) {
	found := optional.Intersect(ev.remaining)
	for _, name := range found.Sorted() {
		ev.log.Debug("found optional file", "file", name)
	}
	ev.collectFiles(found)

	for _, name := range optional.Diff(ev.remaining).Sorted() {
		ev.log.Debug("optional file not present", "file", name)
	}

	ev.remaining = ev.remaining.Diff(found)
}

func (ev *evaluation) choiceGroup(group Set) {
	found := group.Intersect(ev.remaining)
	switch found.Len() {
	case 0:
		ev.log.Error("missing file from choices", "choices", group.Sorted(), "dir", ev.dir)
		ev.fail(SeverityError, RuleChoiceGroup, "",
			fmt.Sprintf("none of %v present", group.Sorted()))
	case 1:
		name := found.Sorted()[0]
		ev.log.Debug("found file from choices", "file", name, "choices", group.Sorted())
		ev.collectFiles(found)
	default:
		ev.log.Error("multiple files from choices", "found", found.Sorted(), "choices", group.Sorted(), "dir", ev.dir)
		ev.fail(SeverityError, RuleChoiceGroup, "",
			fmt.Sprintf("found %v, only one of %v is allowed", found.Sorted(), group.Sorted()))
	}
	ev.remaining = ev.remaining.Diff(found)
}

func (ev *evaluation) prefixPair(pair PrefixPair) {
	suffixesA := NewSet()
	suffixesB := NewSet()
	for name := range ev.remaining {
		if strings.HasPrefix(name, pair.A) {
			suffixesA.Add(strings.TrimPrefix(name, pair.A))
		}
		if strings.HasPrefix(name, pair.B) {
			suffixesB.Add(strings.TrimPrefix(name, pair.B))
		}
	}

	matched := suffixesA.Intersect(suffixesB)
	for _, suffix := range matched.Sorted() {
		ev.log.Debug("found file pair", "a", pair.A+suffix, "b", pair.B+suffix)
		ev.result.Files.Add(ev.rel(pair.A+suffix), ev.rel(pair.B+suffix))
	}

	// A declared pair rule with no data at all is a failure, not a
	// vacuous pass.
	if matched.Len() == 0 {
		ev.log.Error("no matching file pairs", "prefixes", []string{pair.A, pair.B}, "dir", ev.dir)
		ev.fail(SeverityError, RulePrefixPair, "",
			fmt.Sprintf("no file pairs for prefixes %q and %q", pair.A, pair.B))
	}

	for _, suffix := range suffixesA.Diff(suffixesB).Sorted() {
		ev.log.Error("unpaired file", "found", pair.A+suffix, "missing", pair.B+suffix)
		ev.fail(SeverityError, RulePrefixPair, pair.A+suffix,
			fmt.Sprintf("found %q but not %q", pair.A+suffix, pair.B+suffix))
	}
	for _, suffix := range suffixesB.Diff(suffixesA).Sorted() {
		ev.log.Error("unpaired file", "found", pair.B+suffix, "missing", pair.A+suffix)
		ev.fail(SeverityError, RulePrefixPair, pair.B+suffix,
			fmt.Sprintf("found %q but not %q", pair.B+suffix, pair.A+suffix))
	}

	for suffix := range suffixesA {
		ev.remaining.Remove(pair.A + suffix)
	}
	for suffix := range suffixesB {
		ev.remaining.Remove(pair.B + suffix)
	}
}

func (ev *evaluation) unexpectedFiles() {
	for _, name := range ev.remaining.Sorted() {
		ev.log.Warn("unexpected file", "file", name, "dir", ev.dir)
		ev.fail(SeverityWarning, RuleUnexpectedFile, name, "file not covered by any rule")
	}
}

func (ev *evaluation) directories(found, required, optional Set) {
	reqFound := required.Intersect(found)
	for _, name := range reqFound.Sorted() {
		ev.log.Debug("found required subdirectory", "dir", name)
		ev.result.Dirs.Add(ev.rel(name))
	}
	for _, name := range required.Diff(found).Sorted() {
		ev.log.Error("missing required subdirectory", "dir", name, "in", ev.dir)
		ev.fail(SeverityError, RuleRequiredDir, name, "required subdirectory not found")
	}
	found = found.Diff(reqFound)

	optFound := optional.Intersect(found)
	for _, name := range optFound.Sorted() {
		ev.log.Debug("found optional subdirectory", "dir", name)
		ev.result.Dirs.Add(ev.rel(name))
	}
	found = found.Diff(optFound)

	for _, name := range found.Sorted() {
		ev.log.Warn("unexpected subdirectory", "dir", name, "in", ev.dir)
		ev.fail(SeverityWarning, RuleUnexpectedDir, name, "subdirectory not covered by any rule")
	}
}
