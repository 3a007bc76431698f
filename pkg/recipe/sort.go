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
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	apperrors "github.com/NVIDIA/recipebook/pkg/errors"
)

// Comparator orders two recipes, returning a negative number when a sorts
// before b, zero when they tie, and a positive number otherwise.
type Comparator func(a, b Recipe) int

// SortBy returns an ascending comparator for p. Text properties are
// collated using the root locale; numeric properties compare by value.
// Unknown properties are rejected.
//
// The returned comparator is not safe for concurrent use.
func SortBy(p Property) (Comparator, error) {
	return SortByLocale(p, language.Und)
}

// SortByLocale is SortBy with an explicit collation locale for text properties.
func SortByLocale(p Property, tag language.Tag) (Comparator, error) {
	if !p.IsValid() {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid sort property: %q", p),
			map[string]any{"supported": SupportedProperties()})
	}

	if p.IsText() {
		text := textValue(p)
		col := collate.New(tag)
		return func(a, b Recipe) int {
			return col.CompareString(text(a), text(b))
		}, nil
	}

	num := numericValue(p)
	return func(a, b Recipe) int {
		return cmp.Compare(num(a), num(b))
	}, nil
}

func textValue(p Property) func(Recipe) string {
	switch p {
	case PropertyCuisine:
		return func(r Recipe) string { return r.Cuisine }
	case PropertyDifficulty:
		return func(r Recipe) string { return string(r.Difficulty) }
	case PropertyInstructions:
		return func(r Recipe) string { return r.Instructions }
	default:
		return func(r Recipe) string { return r.Name }
	}
}

func numericValue(p Property) func(Recipe) int {
	if p == PropertyID {
		return func(r Recipe) int { return r.ID }
	}
	return func(r Recipe) int { return r.Time }
}

// Sorted returns a stably sorted copy of recipes; equal keys keep input order.
func Sorted(recipes []Recipe, c Comparator) []Recipe {
	out := slices.Clone(recipes)
	slices.SortStableFunc(out, c)
	return out
}
