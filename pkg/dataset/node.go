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

package dataset

import "github.com/mammos-project/mammos-gate/pkg/validator"

// Node is one directory of a convention tree: its root-relative path,
// the rule set governing its immediate contents, and the child
// directories that are themselves validated. A child is only descended
// into when the parent's rule set recognized it, so a missing optional
// subtree is skipped rather than reported twice.
type Node struct {
	// Dir is the slash-separated path relative to the dataset root,
	// "." for the root itself.
	Dir string

	// Rules governs the immediate contents of Dir.
	Rules validator.RuleSet

	// Children are the subdirectories of Dir with their own rule sets.
	// Each child's Dir must equal path.Join of the parent Dir and the
	// subdirectory name declared in the parent's rules.
	Children []*Node
}

// MetadataRule names the structured metadata document of a convention
// and the entries it must contain.
type MetadataRule struct {
	// File is the root-relative path of the metadata document.
	File string

	// Entries maps each required entry name to its expected ontology
	// label. Entries beyond these are not allowed.
	Entries map[string]string
}

// Convention is a complete, hand-authored dataset convention: a name,
// a directory tree of rule sets, and the metadata content rule.
type Convention struct {
	// Name identifies the convention (e.g. "uppsala").
	Name string

	// Tree is the root node of the directory convention.
	Tree *Node

	// Metadata describes the required metadata document content. The
	// content check only runs when Tree validation recognized the
	// metadata file.
	Metadata MetadataRule
}
