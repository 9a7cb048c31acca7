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

package metadata

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mammos-project/mammos-gate/pkg/errors"
)

// Entry is one named value of a metadata document: a numeric value,
// its unit, and the ontology label identifying what the value means.
type Entry struct {
	Value float64 `yaml:"value" json:"value"`
	Unit  string  `yaml:"unit" json:"unit"`
	Label string  `yaml:"ontology_label" json:"ontology_label"`
}

// Document is a parsed metadata document: a flat mapping of entry
// names to entries.
type Document struct {
	entries map[string]Entry
}

// Parse reads a metadata document from YAML bytes. The document is a
// top-level mapping:
//
//	Js:
//	  value: 1.75
//	  unit: T
//	  ontology_label: SpontaneousMagneticPolarisation
func Parse(data []byte) (*Document, error) {
	entries := make(map[string]Entry)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument, "metadata document is not valid YAML", err)
	}
	return &Document{entries: entries}, nil
}

// ParseFile reads a metadata document from a file.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, "cannot read metadata document", err)
	}
	return Parse(data)
}

// Names returns the entry names in lexicographic order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the entry with the given name.
func (d *Document) Get(name string) (Entry, bool) {
	e, ok := d.entries[name]
	return e, ok
}

// Label returns the ontology label of the named entry, or the empty
// string when the entry does not exist.
func (d *Document) Label(name string) string {
	return d.entries[name].Label
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.entries)
}
