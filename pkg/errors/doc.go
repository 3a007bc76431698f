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

// Package errors provides structured error types for recipebook.
//
// Errors carry an ErrorCode so callers (the HTTP API in particular) can map
// failures to responses without string matching:
//
//	if _, err := recipe.SortBy("rating"); err != nil {
//	    switch errors.CodeOf(err) {
//	    case errors.ErrCodeInvalidRequest:
//	        // reject the request
//	    }
//	}
//
// StructuredError implements Unwrap so the standard library errors.Is and
// errors.As continue to work through wrapped causes.
package errors
