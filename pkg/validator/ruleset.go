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

// PrefixPair declares two filename prefixes that must appear with
// matching suffixes. For the pair ("green.inp-", "out-") the files
// green.inp-0 and out-0 form a matched pair; a suffix present behind
// only one prefix is an error, and at least one matched pair must
// exist for the rule to hold.
type PrefixPair struct {
	A string
	B string
}

// RuleSet is the declarative description of the allowed contents of a
// single directory. Any file or directory found on disk that is not
// claimed by one of the rules is unexpected and fails the directory
// (closed-world policy).
type RuleSet struct {
	// RequiredFiles must all be present.
	RequiredFiles Set

	// OptionalFiles may be present or absent.
	OptionalFiles Set

	// ChoiceGroups each require exactly one of their members to be
	// present. Zero or more than one match fails the group.
	ChoiceGroups []Set

	// PrefixPairs each require suffix-matched files behind both
	// prefixes, with at least one matched pair per declared rule.
	PrefixPairs []PrefixPair

	// RequiredDirs must all exist as subdirectories.
	RequiredDirs Set

	// OptionalDirs may be present or absent.
	OptionalDirs Set
}

// IsEmpty reports whether the rule set declares no rules at all.
// Evaluating an empty rule set against an empty directory yields the
// identity result.
func (rs RuleSet) IsEmpty() bool {
	return rs.RequiredFiles.Len() == 0 &&
		rs.OptionalFiles.Len() == 0 &&
		len(rs.ChoiceGroups) == 0 &&
		len(rs.PrefixPairs) == 0 &&
		rs.RequiredDirs.Len() == 0 &&
		rs.OptionalDirs.Len() == 0
}
