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

import "github.com/NVIDIA/recipebook/pkg/recipe"

// Card is the display-agnostic view of one recipe.
type Card struct {
	Name          string   `json:"name" yaml:"name"`
	Cuisine       string   `json:"cuisine" yaml:"cuisine"`
	Difficulty    string   `json:"difficulty" yaml:"difficulty"`
	DifficultyKey string   `json:"difficultyKey" yaml:"difficultyKey"`
	Time          int      `json:"time" yaml:"time"`
	Ingredients   []string `json:"ingredients" yaml:"ingredients"`
	Instructions  string   `json:"instructions" yaml:"instructions"`
}

// NewCard maps a recipe to its card. DifficultyKey is the lowercased
// difficulty, used as a styling hook.
func NewCard(r recipe.Recipe) Card {
	ingredients := make([]string, len(r.Ingredients))
	copy(ingredients, r.Ingredients)

	return Card{
		Name:          r.Name,
		Cuisine:       r.Cuisine,
		Difficulty:    r.Difficulty.String(),
		DifficultyKey: r.Difficulty.Key(),
		Time:          r.Time,
		Ingredients:   ingredients,
		Instructions:  r.Instructions,
	}
}

// Render maps recipes to cards in order. The result is never nil.
func Render(recipes []recipe.Recipe) []Card {
	cards := make([]Card, 0, len(recipes))
	for _, r := range recipes {
		cards = append(cards, NewCard(r))
	}
	return cards
}
