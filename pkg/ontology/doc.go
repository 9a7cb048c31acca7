// Package ontology resolves controlled-vocabulary labels used in
// dataset metadata documents.
//
// The Resolver interface is the only thing the validation core needs:
// given a label, confirm it is a known ontology concept. Three
// implementations are provided:
//
//   - Default(): the built-in vocabulary of MaMMoS magnetic-material
//     concepts, sufficient for offline validation.
//   - Load(path): a vocabulary read from a local or remote concept
//     list file.
//   - NewClient(url): lookups against a remote vocabulary service,
//     with per-label caching, request deduplication, and rate
//     limiting.
//
// An unknown label is reported as an UNKNOWN_LABEL structured error so
// callers can distinguish it from a missing metadata entry or a label
// that resolves but does not match the expected concept.
package ontology
