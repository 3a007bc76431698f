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

// Options selects and orders recipes. A nil field means "no filter on this
// dimension"; a non-nil zero value (MaxTime of 0, say) is a real filter.
type Options struct {
	// Difficulty keeps recipes with exactly this difficulty.
	Difficulty *Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`

	// MaxTime keeps recipes taking at most this many minutes.
	MaxTime *int `json:"maxTime,omitempty" yaml:"maxTime,omitempty"`

	// Cuisine keeps recipes with exactly this cuisine label.
	Cuisine *string `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`

	// SortProperty orders the result ascending. Empty means DefaultSortProperty.
	SortProperty Property `json:"sortProperty,omitempty" yaml:"sortProperty,omitempty"`
}

// Validate rejects option values that cannot select anything meaningful.
func (o Options) Validate() error {
	if o.Difficulty != nil && !o.Difficulty.IsValid() {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid difficulty: %q", *o.Difficulty),
			map[string]any{"supported": SupportedDifficulties()})
	}
	if o.MaxTime != nil && *o.MaxTime < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid maxTime: %d (must be >= 0)", *o.MaxTime))
	}
	if o.SortProperty != "" && !o.SortProperty.IsValid() {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid sort property: %q", o.SortProperty),
			map[string]any{"supported": SupportedProperties()})
	}
	return nil
}

// SortKey returns the effective sort property.
func (o Options) SortKey() Property {
	if o.SortProperty == "" {
		return DefaultSortProperty
	}
	return o.SortProperty
}

// Predicates returns the active filters in difficulty, time, cuisine order.
func (o Options) Predicates() []Predicate {
	var preds []Predicate
	if o.Difficulty != nil {
		preds = append(preds, ByDifficulty(*o.Difficulty))
	}
	if o.MaxTime != nil {
		preds = append(preds, ByMaxTime(*o.MaxTime))
	}
	if o.Cuisine != nil {
		preds = append(preds, ByCuisine(*o.Cuisine))
	}
	return preds
}

// String returns a human-readable representation of the options.
func (o Options) String() string {
	parts := []string{}
	if o.Difficulty != nil {
		parts = append(parts, fmt.Sprintf("difficulty=%s", *o.Difficulty))
	}
	if o.MaxTime != nil {
		parts = append(parts, fmt.Sprintf("maxTime=%d", *o.MaxTime))
	}
	if o.Cuisine != nil {
		parts = append(parts, fmt.Sprintf("cuisine=%s", *o.Cuisine))
	}
	parts = append(parts, fmt.Sprintf("sort=%s", o.SortKey()))
	return fmt.Sprintf("options(%s)", strings.Join(parts, ", "))
}

// Query filters data by the active options and sorts the result stably by
// the sort property. data is never modified; the result is a new slice.
func Query(data []Recipe, opts Options) ([]Recipe, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c, err := SortBy(opts.SortKey())
	if err != nil {
		return nil, err
	}

	stages := make([]func([]Recipe) []Recipe, 0, 2)
	if preds := opts.Predicates(); len(preds) > 0 {
		stages = append(stages, FilterStage(Compose(preds...)))
	}
	stages = append(stages, SortStage(c))

	return Pipe(data, stages...), nil
}
