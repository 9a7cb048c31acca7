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

// Package errors provides structured error types for the dataset gate.
//
// Errors in this codebase fall into two tiers. Hard failures (bad
// arguments, unreadable paths, combining results across dataset roots)
// are returned as StructuredError values with a machine-readable code.
// Dataset-quality findings (a missing required file, an unexpected
// directory, a mismatched ontology label) are never errors: they are
// logged and folded into the boolean validation verdict.
//
// Usage:
//
//	if !filepath.IsAbs(root) {
//	    return errors.Newf(errors.ErrCodeInvalidArgument, "root %q must be absolute", root)
//	}
//
// Callers can classify errors without string matching:
//
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // dataset root does not exist
//	}
package errors
