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

// Package display turns query results into cards and HTML, and publishes
// the HTML to a target.
//
// Rendering is split in two. Render maps recipes to Cards, a plain
// structure with no presentation concerns that also backs the JSON API and
// the CLI's table output. Markup turns cards into an HTML fragment with
// html/template, so every recipe field is escaped.
//
// Display is the full pipeline:
//
//	err := display.Display(ctx, recipe.Recipes(), opts, target)
//
// It queries, renders, and then calls target.Replace exactly once. Invalid
// options fail before the target is touched.
//
// # Targets
//
// NewTarget picks an implementation from a URI:
//
//   - "" or "-": WriterTarget on stdout, fragment only
//   - a path: FileTarget, a standalone page written atomically
//   - cm://namespace/name: ConfigMapTarget, page under key index.html
//   - oci://registry/repository[:tag]: OCITarget, page pushed with ORAS
//
// Standalone pages place the fragment inside the element with id
// "recipe-container".
//
// # HTTP
//
// Handler serves GET/POST /v1/recipes as JSON cards and GET
// /v1/recipes/html as a fragment. Query counts, result sizes, and render
// latency are exported as Prometheus metrics.
package display
