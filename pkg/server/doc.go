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

// Package server provides the HTTP server shared by recipebook binaries.
//
// # Architecture
//
// A Server registers system endpoints and caller-supplied handlers on one
// mux:
//
//   - GET /health: liveness probe
//   - GET /ready: readiness probe, 503 until Start and during shutdown
//   - GET /metrics: Prometheus exposition
//   - GET /: route index, unless a "/" handler is supplied
//
// Supplied handlers run behind a middleware chain, outermost first:
//
//	metrics → version → requestID → panicRecovery → rateLimit → logging
//
// Rate limiting uses a token bucket from golang.org/x/time/rate. Request IDs
// are UUIDs taken from X-Request-Id when valid and generated otherwise.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("recipebookd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/recipes": h.HandleRecipes,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run stops on SIGINT or SIGTERM and drains connections within the shutdown
// timeout.
//
// # Configuration
//
// Environment variables:
//
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default 30)
//
// # Errors
//
// Every error body is an ErrorResponse carrying the code, message, request
// ID, and whether the client may retry. WriteErrorFromErr derives the status
// from a pkg/errors StructuredError.
package server
