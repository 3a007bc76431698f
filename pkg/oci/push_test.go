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

package oci

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"
)

func TestStripProtocol(t *testing.T) {
	tests := map[string]string{
		"https://ghcr.io":       "ghcr.io",
		"http://localhost:5000": "localhost:5000",
		"registry.example.com":  "registry.example.com",
	}
	for in, want := range tests {
		if got := stripProtocol(in); got != want {
			t.Errorf("stripProtocol(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPush_Validation(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name string
		opts PushOptions
	}{
		{name: "empty tag", opts: PushOptions{SourceDir: dir, Registry: "ghcr.io", Repository: "r"}},
		{name: "empty source", opts: PushOptions{Registry: "ghcr.io", Repository: "r", Tag: "v1"}},
		{name: "missing source", opts: PushOptions{SourceDir: filepath.Join(dir, "nope"), Registry: "ghcr.io", Repository: "r", Tag: "v1"}},
		{name: "invalid repository", opts: PushOptions{SourceDir: dir, Registry: "ghcr.io", Repository: "UPPER", Tag: "v1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Push(ctx, tt.opts)
			require.Error(t, err)
		})
	}
}

func TestPush_ToMemoryStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o600))

	store := memory.New()
	res, err := Push(ctx, PushOptions{
		SourceDir:   dir,
		Registry:    "https://localhost:5000",
		Repository:  "recipes",
		Tag:         "v1",
		Annotations: map[string]string{ociv1.AnnotationTitle: "Recipes"},
		Target:      store,
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:5000/recipes:v1", res.Reference)

	desc, err := store.Resolve(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, res.Digest, desc.Digest.String())

	raw, err := content.FetchAll(ctx, store, desc)
	require.NoError(t, err)

	var manifest ociv1.Manifest
	require.NoError(t, json.Unmarshal(raw, &manifest))
	assert.Equal(t, ArtifactType, manifest.ArtifactType)
	require.Len(t, manifest.Layers, 1)
	assert.Equal(t, ociv1.MediaTypeImageLayerGzip, manifest.Layers[0].MediaType)
	assert.Equal(t, "Recipes", manifest.Annotations[ociv1.AnnotationTitle])
}
