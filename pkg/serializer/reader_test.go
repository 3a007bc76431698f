// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

type doc struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.json":    FormatJSON,
		"a.YAML":    FormatYAML,
		"a.yml":     FormatYAML,
		"a.txt":     FormatTable,
		"a.unknown": FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestNewReader_Table(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	require.Error(t, err)
	_, err = NewReader(Format("xml"), strings.NewReader(""))
	require.Error(t, err)
}

func TestReader_Deserialize(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: soup\nitems: [a, b]\n"))
	require.NoError(t, err)
	defer r.Close()

	var d doc
	require.NoError(t, r.Deserialize(&d))
	assert.Equal(t, doc{Name: "soup", Items: []string{"a", "b"}}, d)

	var nilReader *Reader
	require.Error(t, nilReader.Deserialize(&d))
	require.NoError(t, nilReader.Close())
}

func TestFromFile_Local(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "d.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"j","items":["x"]}`), 0o600))

	d, err := FromFile[doc](jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "j", d.Name)

	_, err = FromFile[doc](filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: [unterminated"), 0o600))
	_, err = FromFile[doc](bad)
	require.Error(t, err)
}

func TestFromFile_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, HttpReaderUserAgent, r.Header.Get("User-Agent"))
		if r.URL.Path != "/catalog.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("name: remote\n"))
	}))
	defer srv.Close()

	d, err := FromFile[doc](srv.URL + "/catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, "remote", d.Name)

	_, err = FromFile[doc](srv.URL + "/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFromFileWithContext_ReaderOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "recipebook/test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"name":"remote"}`))
	}))
	defer srv.Close()

	d, err := FromFileWithContext[doc](context.Background(), srv.URL+"/catalog.json",
		WithUserAgent("recipebook/test"), WithTotalTimeout(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, "remote", d.Name)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = FromFileWithContext[doc](ctx, srv.URL+"/catalog.json")
	assert.Error(t, err)
}

func TestFromConfigMap(t *testing.T) {
	k := fake.NewClientset(
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "catalog", Namespace: "web"},
			Data: map[string]string{
				"README":       "ignored",
				"catalog.yaml": "name: from-cm\n",
			},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "empty", Namespace: "web"},
			Data:       map[string]string{"README": "nothing"},
		},
	)

	d, err := fromConfigMap[doc](context.Background(), k, "web", "catalog")
	require.NoError(t, err)
	assert.Equal(t, "from-cm", d.Name)

	_, err = fromConfigMap[doc](context.Background(), k, "web", "empty")
	require.Error(t, err)

	_, err = fromConfigMap[doc](context.Background(), k, "web", "missing")
	require.Error(t, err)
}
