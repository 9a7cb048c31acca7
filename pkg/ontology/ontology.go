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

package ontology

import (
	"context"
	"sort"

	"github.com/mammos-project/mammos-gate/pkg/errors"
)

// Concept is a controlled-vocabulary term: the label used in metadata
// documents and the IRI identifying it in the ontology.
type Concept struct {
	Label string `json:"label" yaml:"label"`
	IRI   string `json:"iri" yaml:"iri"`
}

// Resolver confirms that ontology labels are known to the vocabulary.
// An unknown label is reported as an UNKNOWN_LABEL structured error,
// distinct from a missing entry or a label mismatch.
type Resolver interface {
	Resolve(ctx context.Context, label string) (*Concept, error)
}

// Vocabulary is an in-memory Resolver backed by a fixed concept list.
type Vocabulary struct {
	concepts map[string]Concept
}

// NewVocabulary creates a Vocabulary from the given concepts.
func NewVocabulary(concepts ...Concept) *Vocabulary {
	v := &Vocabulary{concepts: make(map[string]Concept, len(concepts))}
	for _, c := range concepts {
		v.concepts[c.Label] = c
	}
	return v
}

// Resolve implements Resolver.
func (v *Vocabulary) Resolve(_ context.Context, label string) (*Concept, error) {
	if c, ok := v.concepts[label]; ok {
		return &c, nil
	}
	return nil, errors.Newf(errors.ErrCodeUnknownLabel, "label %q is not in the vocabulary", label)
}

// Concepts returns the concepts sorted by label.
func (v *Vocabulary) Concepts() []Concept {
	out := make([]Concept, 0, len(v.concepts))
	for _, c := range v.concepts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Len returns the number of concepts in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.concepts)
}

// Default returns the built-in vocabulary of magnetic-material
// concepts used by MaMMoS metadata documents.
func Default() *Vocabulary {
	return NewVocabulary(
		Concept{Label: "SpontaneousMagneticPolarisation", IRI: "https://w3id.org/emmo/domain/magnetic-material#SpontaneousMagneticPolarisation"},
		Concept{Label: "MagnetocrystallineAnisotropyEnergy", IRI: "https://w3id.org/emmo/domain/magnetic-material#MagnetocrystallineAnisotropyEnergy"},
		Concept{Label: "CurieTemperature", IRI: "https://w3id.org/emmo/domain/magnetic-material#CurieTemperature"},
		Concept{Label: "SpontaneousMagnetization", IRI: "https://w3id.org/emmo/domain/magnetic-material#SpontaneousMagnetization"},
		Concept{Label: "ExchangeStiffnessConstant", IRI: "https://w3id.org/emmo/domain/magnetic-material#ExchangeStiffnessConstant"},
		Concept{Label: "UniaxialAnisotropyConstant", IRI: "https://w3id.org/emmo/domain/magnetic-material#UniaxialAnisotropyConstant"},
		Concept{Label: "RemanentMagneticPolarisation", IRI: "https://w3id.org/emmo/domain/magnetic-material#RemanentMagneticPolarisation"},
		Concept{Label: "Coercivity", IRI: "https://w3id.org/emmo/domain/magnetic-material#Coercivity"},
		Concept{Label: "MaximumEnergyProduct", IRI: "https://w3id.org/emmo/domain/magnetic-material#MaximumEnergyProduct"},
	)
}
