// Package dataset composes per-directory rule evaluations into whole
// dataset validations.
//
// A Convention is a statically declared tree of directory nodes, each
// carrying the rule set for its immediate contents, plus the metadata
// content rule for the dataset's structured metadata document. The
// Composer walks the tree depth-first, descending into a subdirectory
// only when its parent's evaluation recognized it, and folds every
// per-directory result into one verdict via the validator package's
// combine operation. When the walk recognized the metadata document,
// its content is checked against the convention's required entries and
// the outcome folded into the same verdict.
//
// Concrete conventions live in subpackages (see dataset/uppsala).
package dataset
