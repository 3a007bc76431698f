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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recipebook/pkg/defaults"
	"github.com/NVIDIA/recipebook/pkg/logging"
)

const (
	name           = "recipebook"
	versionDefault = "dev"

	// EnvVarData names the recipe catalog, shared with the API server.
	EnvVarData = "RECIPEBOOK_DATA"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with os.Args and exits non-zero on error.
// SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Usage:                 "Filter, sort, search, and render recipes",
		EnableShellCompletion: true,
		Description: `recipebook queries a recipe catalog and renders the result.

The catalog defaults to a built-in sample set. Use --data (or RECIPEBOOK_DATA)
to load a catalog from a file, an HTTP(S) URL, or a ConfigMap (cm://namespace/name).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Recipe catalog: file path, HTTP/HTTPS URL, or ConfigMap URI (cm://namespace/name)",
				Sources: cli.EnvVars(EnvVarData),
			},
			&cli.DurationFlag{
				Name:  "data-timeout",
				Value: defaults.HTTPClientTimeout,
				Usage: "Total timeout for downloading an HTTP/HTTPS catalog",
			},
			&cli.BoolFlag{
				Name:  "data-insecure-tls",
				Usage: "Skip TLS verification when downloading an HTTPS catalog",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			listCmd(),
			searchCmd(),
			renderCmd(),
			serveCmd(),
		},
	}
}
