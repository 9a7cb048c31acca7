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

// Package uppsala declares the Uppsala dataset convention: the
// directory tree, file rules, and metadata entries a submitted dataset
// must carry before ingestion.
package uppsala

import (
	"github.com/mammos-project/mammos-gate/pkg/dataset"
	"github.com/mammos-project/mammos-gate/pkg/validator"
)

// Name is the convention identifier used in reports and CLI output.
const Name = "uppsala"

// MetadataFile is the root-level metadata document of the convention.
const MetadataFile = "intrinsic_properties.yaml"

// Convention returns the Uppsala dataset convention. The returned
// value is freshly built on every call so callers may modify it.
func Convention() *dataset.Convention {
	return &dataset.Convention{
		Name: Name,
		Tree: root(),
		Metadata: dataset.MetadataRule{
			File: MetadataFile,
			Entries: map[string]string{
				"Js":  "SpontaneousMagneticPolarisation",
				"MAE": "MagnetocrystallineAnisotropyEnergy",
				"Tc":  "CurieTemperature",
			},
		},
	}
}

func root() *dataset.Node {
	return &dataset.Node{
		Dir: ".",
		Rules: validator.RuleSet{
			RequiredFiles: validator.NewSet(MetadataFile, "structure.cif"),
			OptionalFiles: validator.NewSet("README.md"),
			RequiredDirs:  validator.NewSet("rspt", "uppasd"),
		},
		Children: []*dataset.Node{
			rspt(),
			uppasd(),
		},
	}
}

// uppasd holds the atomistic spin dynamics run: the Monte Carlo
// inputs live one level down in mc.
func uppasd() *dataset.Node {
	return &dataset.Node{
		Dir: "uppasd",
		Rules: validator.RuleSet{
			OptionalFiles: validator.NewSet("README.md"),
			RequiredDirs:  validator.NewSet("mc"),
		},
		Children: []*dataset.Node{
			{
				Dir: "uppasd/mc",
				Rules: validator.RuleSet{
					RequiredFiles: validator.NewSet(
						"jfile",
						"momfile",
						"posfile",
						"inpsd.dat",
						"M(T)",
					),
					OptionalFiles: validator.NewSet("README.md"),
				},
			},
		},
	}
}

// rspt holds the electronic structure calculations: common inputs,
// the ground state runs per quantization axis, and the exchange
// coupling run.
func rspt() *dataset.Node {
	return &dataset.Node{
		Dir: "rspt",
		Rules: validator.RuleSet{
			OptionalFiles: validator.NewSet("README.md"),
			RequiredDirs:  validator.NewSet("common_rspt_input", "gs_x", "gs_z", "Jij"),
			OptionalDirs:  validator.NewSet("gs_y"),
		},
		Children: []*dataset.Node{
			{
				Dir: "rspt/common_rspt_input",
				Rules: validator.RuleSet{
					RequiredFiles: validator.NewSet(
						"atomdens",
						"kmap",
						"spts",
						"symcof",
						"symt.inp",
					),
				},
			},
			groundState("rspt/gs_x"),
			groundState("rspt/gs_y"),
			groundState("rspt/gs_z"),
			{
				Dir: "rspt/Jij",
				Rules: validator.RuleSet{
					RequiredFiles: validator.NewSet("data"),
					PrefixPairs: []validator.PrefixPair{
						{A: "green.inp-", B: "out-"},
					},
				},
			},
		},
	}
}

// groundState is the rule set shared by the gs_x, gs_y, and gs_z runs.
func groundState(dir string) *dataset.Node {
	return &dataset.Node{
		Dir: dir,
		Rules: validator.RuleSet{
			RequiredFiles: validator.NewSet("data", "out_last"),
			ChoiceGroups: []validator.Set{
				validator.NewSet("hist", "out_MF"),
			},
		},
	}
}
