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

package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file
// extension. Matching is case-insensitive; unknown extensions default
// to YAML.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	default:
		slog.Warn("unknown file extension, defaulting to YAML", "filePath", filePath)
		return FormatYAML
	}
}

// Reader deserializes structured data from an io.Reader source.
// Table format is write-only and not supported here.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader for the given format and source. If the
// input implements io.Closer it is closed by Reader.Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader creates a Reader for a local file path or an
// HTTP/HTTPS URL. Call Close to release the underlying source.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	source, err := openSource(filePath)
	if err != nil {
		return nil, err
	}
	return NewReader(format, source)
}

// NewFileReaderAuto creates a Reader with the format detected from the
// file extension.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	return NewFileReader(FormatFromPath(filePath), filePath)
}

// Deserialize reads from the source and unmarshals into v, which must
// be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil || r.input == nil {
		return fmt.Errorf("reader has no input source")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader. Safe to call
// multiple times and on nil readers.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// FromFile loads and deserializes a file in one call, detecting the
// format from the extension. The path may be local or an HTTP/HTTPS
// URL.
func FromFile[T any](filePath string) (*T, error) {
	reader, err := NewFileReaderAuto(filePath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	v := new(T)
	if err := reader.Deserialize(v); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", filePath, err)
	}
	return v, nil
}

// FromBytes deserializes raw bytes in the given format.
func FromBytes[T any](format Format, data []byte) (*T, error) {
	reader, err := NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	v := new(T)
	if err := reader.Deserialize(v); err != nil {
		return nil, err
	}
	return v, nil
}
