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
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/recipebook/pkg/defaults"
	"github.com/NVIDIA/recipebook/pkg/recipe"
	"github.com/NVIDIA/recipebook/pkg/serializer"
	"github.com/NVIDIA/recipebook/pkg/server"
)

// Handler serves recipe queries over HTTP against a read-only catalog.
type Handler struct {
	data []recipe.Recipe
}

// NewHandler creates a handler over a private copy of data.
func NewHandler(data []recipe.Recipe) *Handler {
	return &Handler{data: recipe.CloneAll(data)}
}

// HandleRecipes returns the ordered cards as JSON. GET reads options from
// the query string; POST reads them from a JSON or YAML body. The q key
// narrows results with a case-insensitive search in both cases.
func (h *Handler) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	var opts *recipe.Options
	var q string
	var err error

	switch r.Method {
	case http.MethodGet:
		opts, err = recipe.ParseOptionsFromRequest(r)
		q = r.URL.Query().Get(recipe.ParamQuery)
	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
		defer body.Close()
		opts, q, err = recipe.ParseSearchFromBody(body, r.Header.Get("Content-Type"))
	default:
		server.WriteMethodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe options", nil)
		return
	}

	cards, err := Cards(h.searched(q), *opts)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to query recipes", nil)
		return
	}

	slog.Debug("recipes queried",
		"requestID", server.RequestIDFromContext(r.Context()),
		"options", opts.String(),
		"query", q,
		"count", len(cards),
	)

	h.setCacheHeaders(w)
	serializer.RespondJSON(w, http.StatusOK, cards)
}

// HandleRecipesHTML returns the markup fragment for the same query keys as
// HandleRecipes. The response body is the display target.
func (h *Handler) HandleRecipesHTML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	opts, err := recipe.ParseOptionsFromRequest(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe options", nil)
		return
	}

	markup, _, err := Build(h.searched(r.URL.Query().Get(recipe.ParamQuery)), *opts)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to render recipes", nil)
		return
	}

	h.setCacheHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := (&WriterTarget{W: w}).Replace(r.Context(), markup); err != nil {
		targetWrites.WithLabelValues(outcomeError).Inc()
		slog.Warn("response write failed", "error", err)
		return
	}
	targetWrites.WithLabelValues(outcomeOK).Inc()
}

// searched applies the search query, if any, ahead of the option filters.
func (h *Handler) searched(q string) []recipe.Recipe {
	if q == "" {
		return h.data
	}
	return recipe.Filter(h.data, recipe.Search(q))
}

func (h *Handler) setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.RecipeCacheTTL.Seconds())))
}
