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

// Package logging provides structured logging utilities for recipebook.
//
// It wraps log/slog with a JSON handler on stderr, attaches module and
// version attributes to every record, and reads the default level from
// the LOG_LEVEL environment variable. Debug level adds source locations.
//
// Usage:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("recipebookd", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// Explicit level (the CLI uses this after parsing --log-level):
//
//	logging.SetDefaultStructuredLoggerWithLevel("recipebook", version, "debug")
//
// Supported levels (case-insensitive): debug, info (default), warn/warning, error.
package logging
