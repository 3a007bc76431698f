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
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/NVIDIA/recipebook/pkg/errors"
)

// Recipe is one dish. Values are treated as immutable once loaded.
type Recipe struct {
	ID           int        `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Cuisine      string     `json:"cuisine" yaml:"cuisine"`
	Difficulty   Difficulty `json:"difficulty" yaml:"difficulty"`
	Time         int        `json:"time" yaml:"time"`
	Ingredients  []string   `json:"ingredients" yaml:"ingredients"`
	Instructions string     `json:"instructions" yaml:"instructions"`
}

// Clone returns a copy of r that shares no backing arrays with it.
func (r Recipe) Clone() Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	return r
}

// Validate checks the record-level invariants enforced at load time.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"recipe name cannot be empty", map[string]any{"id": r.ID})
	}
	if !r.Difficulty.IsValid() {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("recipe %q has invalid difficulty %q", r.Name, r.Difficulty),
			map[string]any{"id": r.ID, "supported": SupportedDifficulties()})
	}
	if r.Time < 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("recipe %q has negative time %d", r.Name, r.Time),
			map[string]any{"id": r.ID})
	}
	return nil
}

// CloneAll deep-copies a recipe slice.
func CloneAll(recipes []Recipe) []Recipe {
	if recipes == nil {
		return nil
	}
	out := make([]Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out
}

var sample = []Recipe{
	{
		ID:         1,
		Name:       "Spaghetti Carbonara",
		Cuisine:    "Italian",
		Difficulty: DifficultyMedium,
		Time:       25,
		Ingredients: []string{
			"spaghetti", "eggs", "pecorino romano", "guanciale", "black pepper",
		},
		Instructions: "Cook pasta. Crisp the guanciale. Toss the pasta off the heat with eggs and cheese, loosening with pasta water.",
	},
	{
		ID:         2,
		Name:       "Chicken Stir-Fry",
		Cuisine:    "Asian",
		Difficulty: DifficultyEasy,
		Time:       15,
		Ingredients: []string{
			"chicken breast", "bell pepper", "broccoli", "soy sauce", "garlic", "ginger",
		},
		Instructions: "Slice the chicken and vegetables. Stir-fry the chicken until golden, add vegetables, finish with soy sauce.",
	},
	{
		ID:         3,
		Name:       "Vegetable Soup",
		Cuisine:    "American",
		Difficulty: DifficultyEasy,
		Time:       30,
		Ingredients: []string{
			"carrots", "celery", "onion", "potatoes", "vegetable broth", "thyme",
		},
		Instructions: "Sweat the onion, carrots and celery. Add potatoes and broth, then simmer until tender.",
	},
	{
		ID:         4,
		Name:       "Beef Wellington",
		Cuisine:    "British",
		Difficulty: DifficultyHard,
		Time:       120,
		Ingredients: []string{
			"beef tenderloin", "puff pastry", "mushrooms", "prosciutto", "egg yolk", "dijon mustard",
		},
		Instructions: "Sear the beef and brush with mustard. Wrap in duxelles and prosciutto, then pastry. Bake until the pastry is golden.",
	},
}

// Recipes returns the built-in sample data set in its source order.
// Every call returns a fresh deep copy.
func Recipes() []Recipe {
	return CloneAll(sample)
}
