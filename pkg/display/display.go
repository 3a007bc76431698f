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
	"context"
	"log/slog"
	"time"

	apperrors "github.com/NVIDIA/recipebook/pkg/errors"
	"github.com/NVIDIA/recipebook/pkg/recipe"
)

// Display filters and sorts data by opts, renders the result, and replaces
// the target's content with the markup. Invalid options fail before the
// target is touched.
func Display(ctx context.Context, data []recipe.Recipe, opts recipe.Options, target Target) error {
	if target == nil {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "display target is required")
	}

	markup, count, err := Build(data, opts)
	if err != nil {
		return err
	}

	if err := target.Replace(ctx, markup); err != nil {
		targetWrites.WithLabelValues(outcomeError).Inc()
		return err
	}
	targetWrites.WithLabelValues(outcomeOK).Inc()

	slog.Debug("recipes displayed", "options", opts.String(), "count", count)
	return nil
}

// Build runs the query and returns the rendered markup and the number of
// recipes it contains.
func Build(data []recipe.Recipe, opts recipe.Options) (string, int, error) {
	start := time.Now()

	cards, err := Cards(data, opts)
	if err != nil {
		return "", 0, err
	}

	markup, err := Markup(cards)
	if err != nil {
		return "", 0, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to render recipes", err)
	}

	renderDuration.Observe(time.Since(start).Seconds())
	return markup, len(cards), nil
}

// Cards runs the query and maps the result to cards.
func Cards(data []recipe.Recipe, opts recipe.Options) ([]Card, error) {
	res, err := recipe.Query(data, opts)
	if err != nil {
		queriesTotal.WithLabelValues(outcomeInvalid).Inc()
		return nil, err
	}
	queriesTotal.WithLabelValues(outcomeOK).Inc()
	resultSize.Observe(float64(len(res)))
	return Render(res), nil
}
