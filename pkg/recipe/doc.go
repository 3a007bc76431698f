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

// Package recipe holds the recipe model and the pure transformations over it.
//
// # Data
//
// Recipes returns the built-in sample data set; LoadCatalog reads an
// alternative set from YAML/JSON files, URLs or ConfigMaps. Neither the
// sample nor a loaded catalog is mutated after load.
//
// # Predicates and combinators
//
//	easy := recipe.ByDifficulty(recipe.DifficultyEasy)
//	quick := recipe.ByMaxTime(20)
//	both := recipe.Compose(easy, quick)
//	hits := recipe.Filter(recipe.Recipes(), both)
//
// Pipe threads a value through unary functions from left to right:
//
//	byTime, _ := recipe.SortBy(recipe.PropertyTime)
//	out := recipe.Pipe(recipe.Recipes(),
//		recipe.FilterStage(recipe.Search("chicken")),
//		recipe.SortStage(byTime),
//	)
//
// # Query
//
// Query applies Options (difficulty, maxTime, cuisine, sortProperty) the
// same way. Options fields are pointers: nil means no filter, so a MaxTime
// of zero selects only zero-minute recipes. Unknown difficulty or sort
// property values fail with an INVALID_REQUEST error instead of being ignored.
//
// Sorting is always stable and never reorders the input slice.
package recipe
