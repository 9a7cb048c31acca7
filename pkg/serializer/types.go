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

// Package serializer provides utilities for reading and writing
// structured data in various formats.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable default
//   - Table: flattened key/value view for terminals (write-only)
//
// Usage:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// Reading supports local files and HTTP/HTTPS URLs with the format
// detected from the file extension:
//
//	vocab, err := serializer.FromFile[[]ontology.Concept]("vocabulary.yaml")
package serializer

import "context"

// Serializer is an interface for serializing structured data.
// Implementations serialize to formats such as JSON, YAML, or a
// flattened table.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
