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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/NVIDIA/recipebook/pkg/display"
	"github.com/NVIDIA/recipebook/pkg/logging"
	"github.com/NVIDIA/recipebook/pkg/recipe"
	"github.com/NVIDIA/recipebook/pkg/serializer"
	"github.com/NVIDIA/recipebook/pkg/server"
)

const (
	name           = "recipebookd"
	versionDefault = "dev"

	// EnvVarData names the catalog to serve: a file path, URL, or cm:// URI.
	// Unset serves the built-in sample recipes.
	EnvVarData = "RECIPEBOOK_DATA"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/recipebook/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Config selects what Run serves.
type Config struct {
	// Version is reported by the root route and logs.
	Version string
	// DataPath is the recipe catalog; empty means the built-in sample.
	DataPath string
	// Port overrides the PORT environment variable when non-zero.
	Port int
}

// Serve starts the API server configured from the environment and blocks
// until shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if err := Run(context.Background(), Config{
		Version:  version,
		DataPath: os.Getenv(EnvVarData),
	}); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// Run loads the catalog and serves it until ctx is canceled or the process
// receives SIGINT or SIGTERM.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Version == "" {
		cfg.Version = versionDefault
	}
	data, err := recipe.LoadCatalog(ctx, cfg.DataPath,
		serializer.WithUserAgent(fmt.Sprintf("%s/%s", name, cfg.Version)))
	if err != nil {
		return fmt.Errorf("failed to load recipe catalog: %w", err)
	}
	slog.Info("catalog loaded", "source", sourceName(cfg.DataPath), "recipes", len(data))

	opts := []server.Option{}
	if cfg.Port != 0 {
		opts = append(opts, server.WithPort(cfg.Port))
	}
	return NewServer(data, cfg.Version, opts...).Run(ctx)
}

// NewServer wires the recipe routes into a server.
func NewServer(data []recipe.Recipe, ver string, opts ...server.Option) *server.Server {
	if ver == "" {
		ver = versionDefault
	}
	base := []server.Option{
		server.WithName(name),
		server.WithVersion(ver),
		server.WithHandler(Routes(display.NewHandler(data))),
	}
	return server.New(append(base, opts...)...)
}

// Routes returns the API routes served by h.
func Routes(h *display.Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/recipes":      h.HandleRecipes,
		"/v1/recipes/html": h.HandleRecipesHTML,
	}
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
