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

// Package validator provides rule-based validation of single directories
// and a composable result type for whole-dataset verdicts.
//
// # Overview
//
// A RuleSet declares, for one directory, which files are required,
// optional, chosen from a group, or paired by filename prefix, and
// which subdirectories are required or optional. Evaluate lists the
// directory once and checks its immediate contents against the rules.
// Anything on disk not claimed by a rule is unexpected and fails the
// directory: the convention is closed-world.
//
// # Rule Precedence
//
// Rules claim files in a fixed order, and each step removes the names
// it claimed so later steps never re-match them:
//
//  1. Required files
//  2. Optional files
//  3. Choice groups (exactly one member each)
//  4. Prefix pairs (suffix-matched files behind both prefixes)
//  5. Unexpected remainder
//
// Subdirectories follow the required/optional/unexpected pattern only.
//
// # Results
//
// Each evaluation yields a fresh Result: the boolean verdict, the
// root-relative paths recognized by declared rules, and the list of
// findings. Results of the same dataset root combine with Combine,
// which ANDs verdicts and unions recognized sets. Combine is
// associative and commutative with Identity as its neutral element,
// so per-directory results may be folded in any order.
//
// # Error Handling
//
// Rule violations are soft: they are logged through the injected
// *slog.Logger and reported via Result.OK, and evaluation always runs
// to completion so a dataset author sees every defect in one pass.
// Hard failures (relative root, unreadable directory, combining
// across roots) are returned as structured errors.
//
// # Usage
//
//	v := validator.New(validator.WithLogger(logger))
//	res, err := v.Evaluate(root, "rspt/Jij", validator.RuleSet{
//	    RequiredFiles: validator.NewSet("data"),
//	    PrefixPairs:   []validator.PrefixPair{{A: "green.inp-", B: "out-"}},
//	})
//	if err != nil {
//	    return err
//	}
//	if !res.OK {
//	    // dataset directory violates the convention
//	}
package validator
