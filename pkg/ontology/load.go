/*
Copyright © 2026 The MaMMoS Project
SPDX-License-Identifier: Apache-2.0
*/

package ontology

import (
	"github.com/mammos-project/mammos-gate/pkg/errors"
	"github.com/mammos-project/mammos-gate/pkg/serializer"
)

// Load builds a Vocabulary from a concept list file. The path may be a
// local file or an HTTP/HTTPS URL; format is detected from the
// extension (YAML or JSON). The file holds a flat list of concepts:
//
//	- label: CurieTemperature
//	  iri: https://w3id.org/emmo/domain/magnetic-material#CurieTemperature
//	- label: SpontaneousMagneticPolarisation
//	  iri: https://w3id.org/emmo/domain/magnetic-material#SpontaneousMagneticPolarisation
func Load(path string) (*Vocabulary, error) {
	concepts, err := serializer.FromFile[[]Concept](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, "cannot load vocabulary file", err)
	}
	return NewVocabulary(*concepts...), nil
}
