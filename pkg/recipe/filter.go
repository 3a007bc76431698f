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

import "strings"

// Predicate reports whether a recipe should be kept.
type Predicate func(Recipe) bool

// ByDifficulty matches recipes whose difficulty equals level exactly.
func ByDifficulty(level Difficulty) Predicate {
	return func(r Recipe) bool {
		return r.Difficulty == level
	}
}

// ByMaxTime matches recipes that take at most minutes.
func ByMaxTime(minutes int) Predicate {
	return func(r Recipe) bool {
		return r.Time <= minutes
	}
}

// ByCuisine matches recipes whose cuisine equals cuisine exactly.
func ByCuisine(cuisine string) Predicate {
	return func(r Recipe) bool {
		return r.Cuisine == cuisine
	}
}

// Search matches recipes whose name or any ingredient contains query,
// ignoring case. The query is not trimmed; an empty query matches everything.
func Search(query string) Predicate {
	q := strings.ToLower(query)
	return func(r Recipe) bool {
		if strings.Contains(strings.ToLower(r.Name), q) {
			return true
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), q) {
				return true
			}
		}
		return false
	}
}

// Compose returns the logical AND of preds, evaluated left to right and
// stopping at the first false. With no predicates it matches everything.
func Compose(preds ...Predicate) Predicate {
	return func(r Recipe) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Filter returns a new slice holding the recipes that satisfy pred, in input order.
func Filter(recipes []Recipe, pred Predicate) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
