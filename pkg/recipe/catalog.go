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

package recipe

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/NVIDIA/recipebook/pkg/errors"
	"github.com/NVIDIA/recipebook/pkg/serializer"
)

// CatalogKind is the kind value for recipe catalog files.
const CatalogKind = "recipeCatalog"

// CatalogAPIVersion is the API version for recipe catalog files.
const CatalogAPIVersion = "recipebook.nvidia.com/v1alpha1"

// Catalog is the on-disk representation of a recipe data set.
//
// Example:
//
//	kind: recipeCatalog
//	apiVersion: recipebook.nvidia.com/v1alpha1
//	metadata:
//	  name: weeknight
//	recipes:
//	  - id: 1
//	    name: Chicken Stir-Fry
//	    cuisine: Asian
//	    difficulty: Easy
//	    time: 15
//	    ingredients: [chicken breast, soy sauce]
//	    instructions: Stir-fry everything.
type Catalog struct {
	Kind       string `json:"kind" yaml:"kind"`
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
	Metadata   struct {
		Name string `json:"name" yaml:"name"`
	} `json:"metadata" yaml:"metadata"`
	Recipes []Recipe `json:"recipes" yaml:"recipes"`
}

// LoadCatalog reads a catalog from a file path, HTTP(S) URL or ConfigMap URI
// and returns its validated recipes. An empty path returns the built-in
// sample data set. The options apply to HTTP(S) downloads only.
func LoadCatalog(ctx context.Context, path string, options ...serializer.HttpReaderOption) ([]Recipe, error) {
	if path == "" {
		return Recipes(), nil
	}

	c, err := serializer.FromFileWithContext[Catalog](ctx, path, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	recipes, err := c.Validate()
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded recipe catalog",
		"path", path,
		"name", c.Metadata.Name,
		"count", len(recipes))

	return recipes, nil
}

// Validate checks the catalog header and every record, normalizing
// difficulty labels to their canonical form. It returns a deep copy.
func (c *Catalog) Validate() ([]Recipe, error) {
	if c.Kind != "" && c.Kind != CatalogKind {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid kind %q, expected %q", c.Kind, CatalogKind))
	}
	if c.APIVersion != "" && c.APIVersion != CatalogAPIVersion {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid apiVersion %q, expected %q", c.APIVersion, CatalogAPIVersion))
	}

	recipes := CloneAll(c.Recipes)
	seen := make(map[int]string, len(recipes))
	for i := range recipes {
		r := &recipes[i]
		if prev, ok := seen[r.ID]; ok {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("duplicate recipe id %d", r.ID),
				map[string]any{"first": prev, "second": r.Name})
		}
		seen[r.ID] = r.Name

		if r.Difficulty != "" && !r.Difficulty.IsValid() {
			if d, err := ParseDifficulty(string(r.Difficulty)); err == nil {
				r.Difficulty = d
			}
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}
