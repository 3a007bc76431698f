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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/recipebook/pkg/recipe"
	"github.com/NVIDIA/recipebook/pkg/server"
)

func decodeCards(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var cards []Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Name)
	}
	return names
}

func TestHandleRecipes_GET(t *testing.T) {
	h := NewHandler(recipe.Recipes())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "all by name", query: "", want: []string{"Beef Wellington", "Chicken Stir-Fry", "Spaghetti Carbonara", "Vegetable Soup"}},
		{name: "easy by time", query: "?difficulty=Easy&sortProperty=time", want: []string{"Chicken Stir-Fry", "Vegetable Soup"}},
		{name: "lowercase difficulty", query: "?difficulty=easy&sortProperty=time", want: []string{"Chicken Stir-Fry", "Vegetable Soup"}},
		{name: "max time zero", query: "?maxTime=0", want: []string{}},
		{name: "empty value is absent", query: "?cuisine=&maxTime=", want: []string{"Beef Wellington", "Chicken Stir-Fry", "Spaghetti Carbonara", "Vegetable Soup"}},
		{name: "search", query: "?q=CHICKEN", want: []string{"Chicken Stir-Fry"}},
		{name: "search with filter", query: "?q=pastry&cuisine=Italian", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.HandleRecipes(w, httptest.NewRequest(http.MethodGet, "/v1/recipes"+tt.query, nil))

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("Cache-Control"))
			assert.Equal(t, tt.want, decodeCards(t, w))
		})
	}
}

func TestHandleRecipes_InvalidOptions(t *testing.T) {
	h := NewHandler(recipe.Recipes())

	for _, query := range []string{"?sortProperty=rating", "?difficulty=Extreme", "?maxTime=abc", "?maxTime=-1"} {
		t.Run(query, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.HandleRecipes(w, httptest.NewRequest(http.MethodGet, "/v1/recipes"+query, nil))

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "INVALID_REQUEST", resp.Code)
		})
	}
}

func TestHandleRecipes_POST(t *testing.T) {
	h := NewHandler(recipe.Recipes())

	tests := []struct {
		name        string
		contentType string
		body        string
		want        []string
	}{
		{name: "json", contentType: "application/json", body: `{"maxTime": 25, "sortProperty": "time"}`, want: []string{"Chicken Stir-Fry", "Spaghetti Carbonara"}},
		{name: "yaml", contentType: "application/x-yaml", body: "cuisine: British\n", want: []string{"Beef Wellington"}},
		{name: "json search", contentType: "application/json", body: `{"q": "chicken"}`, want: []string{"Chicken Stir-Fry"}},
		{name: "yaml search with filter", contentType: "application/yaml", body: "q: e\nmaxTime: 25\nsortProperty: time\n", want: []string{"Chicken Stir-Fry", "Spaghetti Carbonara"}},
		{name: "empty search matches all", contentType: "application/json", body: `{"q": "", "difficulty": "Easy"}`, want: []string{"Chicken Stir-Fry", "Vegetable Soup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/recipes", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			h.HandleRecipes(w, req)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.want, decodeCards(t, w))
		})
	}

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/recipes", strings.NewReader("{"))
		w := httptest.NewRecorder()
		h.HandleRecipes(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleRecipes_MethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(recipe.Recipes()).HandleRecipes(w, httptest.NewRequest(http.MethodDelete, "/v1/recipes", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, POST", w.Header().Get("Allow"))
}

func TestHandleRecipesHTML(t *testing.T) {
	h := NewHandler(recipe.Recipes())

	w := httptest.NewRecorder()
	h.HandleRecipesHTML(w, httptest.NewRequest(http.MethodGet, "/v1/recipes/html?difficulty=Hard", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, 1, strings.Count(w.Body.String(), "<article"))
	assert.Contains(t, w.Body.String(), "Beef Wellington")

	w = httptest.NewRecorder()
	h.HandleRecipesHTML(w, httptest.NewRequest(http.MethodGet, "/v1/recipes/html?sortProperty=nope", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.HandleRecipesHTML(w, httptest.NewRequest(http.MethodPost, "/v1/recipes/html", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNewHandler_CopiesData(t *testing.T) {
	data := recipe.Recipes()
	h := NewHandler(data)
	data[0].Name = "Mutated"

	w := httptest.NewRecorder()
	h.HandleRecipes(w, httptest.NewRequest(http.MethodGet, "/v1/recipes?cuisine=Italian", nil))
	assert.Equal(t, []string{"Spaghetti Carbonara"}, decodeCards(t, w))
}
