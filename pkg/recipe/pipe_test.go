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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipe(t *testing.T) {
	got := Pipe(5,
		func(x int) int { return x + 1 },
		func(x int) int { return x * 2 },
	)
	assert.Equal(t, 12, got)
}

func TestPipeNoFunctions(t *testing.T) {
	assert.Equal(t, "seed", Pipe("seed"))
}

func TestPipeLeftToRight(t *testing.T) {
	got := Pipe("a",
		func(s string) string { return s + "b" },
		func(s string) string { return s + "c" },
		strings.ToUpper,
	)
	assert.Equal(t, "ABC", got)
}

func TestPipePropagatesPanic(t *testing.T) {
	assert.Panics(t, func() {
		Pipe(1, func(int) int { panic("boom") })
	})
}

func TestPipeRecipeStages(t *testing.T) {
	byTime, err := SortBy(PropertyTime)
	require.NoError(t, err)

	got := Pipe(Recipes(),
		FilterStage(Search("e")),
		SortStage(byTime),
	)

	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Time, got[i].Time)
	}
}
