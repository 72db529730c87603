// Copyright (c) 2026, NVIDIA CORPORATION.  All rights reserved.
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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{"json lowercase", "config.json", FormatJSON},
		{"json uppercase", "CONFIG.JSON", FormatJSON},
		{"yaml extension", "config.yaml", FormatYAML},
		{"yml extension", "config.yml", FormatYAML},
		{"no extension", "config", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFromPath(tt.path))
		})
	}
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestNewReaderUnknownFormat(t *testing.T) {
	_, err := NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewFileReader(Format("xml"), "x.xml")
	assert.Error(t, err)
}

func TestDeserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		want    testConfig
		wantErr bool
	}{
		{"json", FormatJSON, `{"name":"a","value":1}`, testConfig{"a", 1}, false},
		{"yaml", FormatYAML, "name: b\nvalue: 2\n", testConfig{"b", 2}, false},
		{"empty yaml", FormatYAML, "", testConfig{}, false},
		{"json unknown field", FormatJSON, `{"name":"a","extra":true}`, testConfig{}, true},
		{"yaml unknown field", FormatYAML, "name: a\nextra: true\n", testConfig{}, true},
		{"invalid json", FormatJSON, `{`, testConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)

			var got testConfig
			err = r.Deserialize(&got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, r.Close())
		})
	}
}

func TestDeserializeNilReader(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&testConfig{}))
	assert.NoError(t, r.Close())
}

func TestNewFileReaderAuto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\nvalue: 7\n"), 0o600))

	r, err := NewFileReaderAuto(path)
	require.NoError(t, err)
	defer r.Close()

	var got testConfig
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, testConfig{"file", 7}, got)

	_, err = NewFileReaderAuto(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusAccepted, testConfig{Name: "ok", Value: 3})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got testConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, testConfig{"ok", 3}, got)
}

func TestRespondJSONEncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
