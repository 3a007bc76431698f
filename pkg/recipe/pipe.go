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

// Pipe applies fns to value from left to right and returns the final result.
// A panic in any stage propagates to the caller.
//
//	n := Pipe(5,
//		func(x int) int { return x + 1 },
//		func(x int) int { return x * 2 },
//	) // 12
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// FilterStage adapts Filter into a Pipe stage.
func FilterStage(pred Predicate) func([]Recipe) []Recipe {
	return func(recipes []Recipe) []Recipe {
		return Filter(recipes, pred)
	}
}

// SortStage adapts Sorted into a Pipe stage.
func SortStage(c Comparator) func([]Recipe) []Recipe {
	return func(recipes []Recipe) []Recipe {
		return Sorted(recipes, c)
	}
}
