// Package metadata parses dataset metadata documents and checks their
// content against a convention's required entries.
//
// A metadata document (intrinsic_properties.yaml in the uppsala
// convention) is a flat YAML mapping from entry names to a value, a
// unit, and an ontology label. The Checker confirms that exactly the
// required entries are present with the expected labels, resolving
// each label through an ontology.Resolver so unknown vocabulary is
// reported separately from mismatched labels.
package metadata
