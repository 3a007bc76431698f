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
	"strings"

	apperrors "github.com/NVIDIA/recipebook/pkg/errors"
)

// Difficulty is the closed set of difficulty levels a recipe may carry.
type Difficulty string

// Difficulty constants.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// IsValid reports whether d is one of the canonical difficulty levels.
// The comparison is exact; "easy" is not valid.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// String returns the difficulty label.
func (d Difficulty) String() string {
	return string(d)
}

// Key returns the lowercased difficulty used as a styling key.
func (d Difficulty) Key() string {
	return strings.ToLower(string(d))
}

// ParseDifficulty parses user input into a canonical Difficulty.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid difficulty: %q", s),
			map[string]any{"supported": SupportedDifficulties()})
	}
}

// SupportedDifficulties returns the difficulty labels in ascending order of effort.
func SupportedDifficulties() []string {
	return []string{
		string(DifficultyEasy),
		string(DifficultyMedium),
		string(DifficultyHard),
	}
}

// Property names a sortable recipe attribute.
type Property string

// Property constants. Ingredients are not sortable.
const (
	PropertyID           Property = "id"
	PropertyName         Property = "name"
	PropertyCuisine      Property = "cuisine"
	PropertyDifficulty   Property = "difficulty"
	PropertyTime         Property = "time"
	PropertyInstructions Property = "instructions"
)

// DefaultSortProperty is used when Options.SortProperty is empty.
const DefaultSortProperty = PropertyName

// IsValid reports whether p names a sortable attribute.
func (p Property) IsValid() bool {
	switch p {
	case PropertyID, PropertyName, PropertyCuisine, PropertyDifficulty,
		PropertyTime, PropertyInstructions:
		return true
	default:
		return false
	}
}

// IsText reports whether p is ordered by collation rather than numerically.
func (p Property) IsText() bool {
	switch p {
	case PropertyName, PropertyCuisine, PropertyDifficulty, PropertyInstructions:
		return true
	default:
		return false
	}
}

// String returns the property name.
func (p Property) String() string {
	return string(p)
}

// ParseProperty parses a property name. Matching is case-insensitive and an
// empty string resolves to DefaultSortProperty.
func ParseProperty(s string) (Property, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return DefaultSortProperty, nil
	}
	p := Property(v)
	if !p.IsValid() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid sort property: %q", s),
			map[string]any{"supported": SupportedProperties()})
	}
	return p, nil
}

// SupportedProperties returns all sortable property names sorted alphabetically.
func SupportedProperties() []string {
	return []string{
		string(PropertyCuisine),
		string(PropertyDifficulty),
		string(PropertyID),
		string(PropertyInstructions),
		string(PropertyName),
		string(PropertyTime),
	}
}
