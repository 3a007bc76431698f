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

// Package api wires the recipe HTTP API onto pkg/server.
//
// Usage:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        os.Exit(1)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/recipes      - ordered recipe cards as JSON
//   - POST /v1/recipes      - same, options in a JSON or YAML body
//   - GET  /v1/recipes/html - ordered recipes as an HTML fragment
//
// System endpoints:
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//   - GET /        - route index
//
// # Query Parameters
//
//   - difficulty: Easy, Medium, or Hard (case-insensitive)
//   - maxTime: maximum minutes, inclusive; 0 is a valid filter
//   - cuisine: exact cuisine label
//   - sortProperty: id, name, cuisine, difficulty, time, instructions
//   - q: case-insensitive search over names and ingredients
//
// Empty values are ignored. Invalid values return 400 with an
// ErrorResponse body.
//
// Example:
//
//	curl -s "http://localhost:8080/v1/recipes?difficulty=Easy&sortProperty=time"
//
// # Environment
//
//   - PORT: listen port (default 8080)
//   - LOG_LEVEL: debug, info, warn, error
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget
//   - RECIPEBOOK_DATA: catalog file, URL, or cm://namespace/name
package api
