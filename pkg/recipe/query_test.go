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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	apperrors "github.com/NVIDIA/recipebook/pkg/errors"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "no options sorts by name",
			opts: Options{},
			want: []string{"Beef Wellington", "Chicken Stir-Fry", "Spaghetti Carbonara", "Vegetable Soup"},
		},
		{
			name: "easy sorted by time",
			opts: Options{Difficulty: ptr.To(DifficultyEasy), SortProperty: PropertyTime},
			want: []string{"Chicken Stir-Fry", "Vegetable Soup"},
		},
		{
			name: "max time",
			opts: Options{MaxTime: ptr.To(25), SortProperty: PropertyTime},
			want: []string{"Chicken Stir-Fry", "Spaghetti Carbonara"},
		},
		{
			name: "max time zero is a filter",
			opts: Options{MaxTime: ptr.To(0)},
			want: []string{},
		},
		{
			name: "cuisine",
			opts: Options{Cuisine: ptr.To("British")},
			want: []string{"Beef Wellington"},
		},
		{
			name: "empty cuisine is a filter",
			opts: Options{Cuisine: ptr.To("")},
			want: []string{},
		},
		{
			name: "all filters",
			opts: Options{
				Difficulty: ptr.To(DifficultyEasy),
				MaxTime:    ptr.To(30),
				Cuisine:    ptr.To("American"),
			},
			want: []string{"Vegetable Soup"},
		},
		{
			name: "sort by id",
			opts: Options{SortProperty: PropertyID},
			want: []string{"Spaghetti Carbonara", "Chicken Stir-Fry", "Vegetable Soup", "Beef Wellington"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Query(Recipes(), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestQueryEasyByTimeValues(t *testing.T) {
	got, err := Query(Recipes(), Options{Difficulty: ptr.To(DifficultyEasy), SortProperty: PropertyTime})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 15, got[0].Time)
	assert.Equal(t, 30, got[1].Time)
}

func TestQueryMaxTimeZeroKeepsZeroMinuteRecipes(t *testing.T) {
	data := append(Recipes(), Recipe{
		ID: 5, Name: "Sliced Apple", Cuisine: "Any", Difficulty: DifficultyEasy, Time: 0,
	})

	got, err := Query(data, Options{MaxTime: ptr.To(0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sliced Apple"}, names(got))
}

func TestQueryDoesNotReorderSource(t *testing.T) {
	data := Recipes()
	before := names(data)

	_, err := Query(data, Options{SortProperty: PropertyTime})
	require.NoError(t, err)
	_, err = Query(data, Options{SortProperty: PropertyName})
	require.NoError(t, err)

	assert.Equal(t, before, names(data))
}

func TestQueryValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"lowercase difficulty", Options{Difficulty: ptr.To(Difficulty("easy"))}},
		{"unknown difficulty", Options{Difficulty: ptr.To(Difficulty("Expert"))}},
		{"negative max time", Options{MaxTime: ptr.To(-5)}},
		{"unknown sort property", Options{SortProperty: "rating"}},
		{"ingredients sort property", Options{SortProperty: "ingredients"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Query(Recipes(), tt.opts)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
		})
	}
}

func TestOptionsString(t *testing.T) {
	assert.Equal(t, "options(sort=name)", Options{}.String())

	o := Options{
		Difficulty:   ptr.To(DifficultyHard),
		MaxTime:      ptr.To(0),
		Cuisine:      ptr.To("British"),
		SortProperty: PropertyTime,
	}
	assert.Equal(t, "options(difficulty=Hard, maxTime=0, cuisine=British, sort=time)", o.String())
}

func TestOptionsPredicatesOrder(t *testing.T) {
	o := Options{MaxTime: ptr.To(10), Cuisine: ptr.To("x"), Difficulty: ptr.To(DifficultyEasy)}
	assert.Len(t, o.Predicates(), 3)
	assert.Empty(t, Options{}.Predicates())
}
