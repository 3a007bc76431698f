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

package display

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"

	"github.com/NVIDIA/recipebook/pkg/oci"
)

const fragment = `<article class="recipe-card">x</article>`

func TestWriterTarget(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&WriterTarget{W: &buf}).Replace(context.Background(), fragment))
	assert.Equal(t, fragment, buf.String())
}

func TestFileTarget_Paths(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "directory", path: filepath.Join(dir, "out"), want: filepath.Join(dir, "out", PageFileName)},
		{name: "html file", path: filepath.Join(dir, "page.HTML"), want: filepath.Join(dir, "page.HTML")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &FileTarget{Path: tt.path}
			require.NoError(t, target.Replace(context.Background(), fragment))

			data, err := os.ReadFile(tt.want)
			require.NoError(t, err)
			assert.Contains(t, string(data), fragment)
		})
	}
}

func TestFileTarget_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	target := &FileTarget{Path: dir}
	ctx := context.Background()

	require.NoError(t, target.Replace(ctx, "<p>first</p>"))
	require.NoError(t, target.Replace(ctx, "<p>second</p>"))

	data, err := os.ReadFile(filepath.Join(dir, PageFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "first")
	assert.Contains(t, string(data), "second")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestConfigMapTarget(t *testing.T) {
	k := fake.NewClientset()
	target := &ConfigMapTarget{Namespace: "web", Name: "recipes", Title: "Menu", Client: k}

	require.NoError(t, target.Replace(context.Background(), fragment))

	cm, err := k.CoreV1().ConfigMaps("web").Get(context.Background(), "recipes", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Contains(t, cm.Data[PageFileName], fragment)
	assert.Contains(t, cm.Data[PageFileName], "<title>Menu</title>")
	assert.Equal(t, "page", cm.Labels["app.kubernetes.io/component"])
}

func TestOCITarget(t *testing.T) {
	ref, err := oci.ParseReference("oci://localhost:5000/recipes")
	require.NoError(t, err)

	store := memory.New()
	target := &OCITarget{Reference: ref, Store: store}
	ctx := context.Background()

	require.NoError(t, target.Replace(ctx, fragment))
	require.NotNil(t, target.Result)
	assert.Equal(t, "localhost:5000/recipes:latest", target.Result.Reference)

	desc, err := store.Resolve(ctx, oci.DefaultTag)
	require.NoError(t, err)
	raw, err := content.FetchAll(ctx, store, desc)
	require.NoError(t, err)

	var manifest ociv1.Manifest
	require.NoError(t, json.Unmarshal(raw, &manifest))
	assert.Equal(t, oci.ArtifactType, manifest.ArtifactType)
	assert.Equal(t, DefaultTitle, manifest.Annotations["org.opencontainers.image.title"])
}

func TestOCITarget_RequiresReference(t *testing.T) {
	require.Error(t, (&OCITarget{}).Replace(context.Background(), fragment))
}

func TestNewTarget(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		check   func(t *testing.T, target Target)
		wantErr bool
	}{
		{
			name: "stdout",
			uri:  "",
			check: func(t *testing.T, target Target) {
				_, ok := target.(*WriterTarget)
				assert.True(t, ok)
			},
		},
		{
			name: "dash",
			uri:  "-",
			check: func(t *testing.T, target Target) {
				_, ok := target.(*WriterTarget)
				assert.True(t, ok)
			},
		},
		{
			name: "configmap",
			uri:  "cm://web/recipes",
			check: func(t *testing.T, target Target) {
				cm, ok := target.(*ConfigMapTarget)
				require.True(t, ok)
				assert.Equal(t, "web", cm.Namespace)
				assert.Equal(t, "recipes", cm.Name)
				assert.Equal(t, "Menu", cm.Title)
			},
		},
		{
			name: "oci",
			uri:  "oci://ghcr.io/nvidia/recipes:v1",
			check: func(t *testing.T, target Target) {
				o, ok := target.(*OCITarget)
				require.True(t, ok)
				assert.Equal(t, "v1", o.Reference.Tag)
				assert.True(t, o.PlainHTTP)
			},
		},
		{
			name: "file",
			uri:  "site/index.html",
			check: func(t *testing.T, target Target) {
				f, ok := target.(*FileTarget)
				require.True(t, ok)
				assert.Equal(t, "site/index.html", f.Path)
			},
		},
		{name: "bad configmap", uri: "cm://web", wantErr: true},
		{name: "bad oci", uri: "oci://ghcr.io/UPPER:v1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := NewTarget(tt.uri, WithTitle("Menu"), WithPlainHTTP(true))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, target)
		})
	}
}
