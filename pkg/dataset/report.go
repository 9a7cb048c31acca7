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

import (
	"time"

	"github.com/mammos-project/mammos-gate/pkg/header"
	"github.com/mammos-project/mammos-gate/pkg/validator"
)

const (
	// APIVersion is the API version for validation reports.
	APIVersion = "gate.mammos.eu/v1alpha1"
)

// Summary contains aggregate statistics about a validation run.
type Summary struct {
	// Errors is the count of error findings.
	Errors int `json:"errors" yaml:"errors"`

	// Warnings is the count of warning findings.
	Warnings int `json:"warnings" yaml:"warnings"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report is the serializable outcome of one dataset validation.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Dataset is the absolute path of the validated dataset root.
	Dataset string `json:"dataset" yaml:"dataset"`

	// Convention is the name of the convention the dataset was checked
	// against.
	Convention string `json:"convention" yaml:"convention"`

	// Valid is the overall verdict.
	Valid bool `json:"valid" yaml:"valid"`

	// Summary contains aggregate finding counts.
	Summary Summary `json:"summary" yaml:"summary"`

	// RecognizedFiles lists every file matched by a declared rule,
	// root-relative and sorted.
	RecognizedFiles []string `json:"recognizedFiles" yaml:"recognizedFiles"`

	// RecognizedDirs lists every recognized subdirectory, root-relative
	// and sorted.
	RecognizedDirs []string `json:"recognizedDirs" yaml:"recognizedDirs"`

	// Findings lists every rule violation.
	Findings []validator.Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// NewReport builds a Report from a validation result.
func NewReport(conv *Convention, version string, result *validator.Result, duration time.Duration) *Report {
	r := &Report{
		Dataset:         result.Root,
		Convention:      conv.Name,
		Valid:           result.OK,
		RecognizedFiles: result.Files.Sorted(),
		RecognizedDirs:  result.Dirs.Sorted(),
		Findings:        result.Findings,
	}
	r.Init(header.KindValidationReport, APIVersion, version)

	r.Summary.Duration = duration
	for _, f := range result.Findings {
		switch f.Severity {
		case validator.SeverityError:
			r.Summary.Errors++
		case validator.SeverityWarning:
			r.Summary.Warnings++
		}
	}

	return r
}
