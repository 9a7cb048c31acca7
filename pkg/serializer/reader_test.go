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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"report.json", FormatJSON},
		{"report.JSON", FormatJSON},
		{"vocab.yaml", FormatYAML},
		{"vocab.yml", FormatYAML},
		{"data.txt", FormatYAML},
		{"", FormatYAML},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatFromPath(tc.path))
		})
	}
}

func TestNewReaderRejectsTable(t *testing.T) {
	_, err := NewReader(FormatTable, nil)
	require.Error(t, err)
}

func TestNewReaderRejectsUnknown(t *testing.T) {
	_, err := NewReader(Format("xml"), nil)
	require.Error(t, err)
}

func TestFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: rspt\ncount: 4\n"), 0o600))

	got, err := FromFile[sample](path)
	require.NoError(t, err)
	assert.Equal(t, "rspt", got.Name)
	assert.Equal(t, 4, got.Count)
}

func TestFromFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"mc","count":7}`), 0o600))

	got, err := FromFile[sample](path)
	require.NoError(t, err)
	assert.Equal(t, "mc", got.Name)
	assert.Equal(t, 7, got.Count)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile[sample](filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed\n"), 0o600))

	_, err := FromFile[sample](path)
	require.Error(t, err)
}

func TestFromFileHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, HTTPReaderUserAgent, r.Header.Get("User-Agent"))
		w.Write([]byte("name: remote\ncount: 9\n"))
	}))
	defer srv.Close()

	got, err := FromFile[sample](srv.URL + "/sample.yaml")
	require.NoError(t, err)
	assert.Equal(t, "remote", got.Name)
	assert.Equal(t, 9, got.Count)
}

func TestHTTPReaderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewHTTPReader().Read(srv.URL + "/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPReaderEmptyURL(t *testing.T) {
	_, err := NewHTTPReader().Read("")
	require.Error(t, err)
}

func TestFromBytes(t *testing.T) {
	got, err := FromBytes[sample](FormatJSON, []byte(`{"name":"jfile"}`))
	require.NoError(t, err)
	assert.Equal(t, "jfile", got.Name)
}

func TestReaderCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\n"), 0o600))

	r, err := NewFileReaderAuto(path)
	require.NoError(t, err)
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())

	var nilReader *Reader
	assert.NoError(t, nilReader.Close())
}
