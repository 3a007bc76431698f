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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recipebook/pkg/api"
	"github.com/NVIDIA/recipebook/pkg/display"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Render matching recipes as HTML",
		Description: `Render recipes matching the given filters as HTML and publish the result.

Output destinations:
  (none) or -                        HTML fragment on stdout
  ./site or ./site/index.html        standalone page written to a file
  cm://namespace/name                standalone page in a ConfigMap (key index.html)
  oci://registry/repository[:tag]    standalone page pushed as an OCI artifact

Examples:
  recipebook render --difficulty easy --output ./site
  recipebook render --output oci://localhost:5000/recipes:dev --plain-http`,
		Flags: append(filterFlags(),
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "Destination: file path, directory, cm://namespace/name, or oci://registry/repository[:tag]",
			},
			&cli.StringFlag{
				Name:  "title",
				Value: display.DefaultTitle,
				Usage: "Title of the standalone page",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS when pushing to an OCI registry",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS verification when pushing to an OCI registry",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := optionsFromCmd(cmd)
			if err != nil {
				return err
			}
			data, err := loadData(ctx, cmd)
			if err != nil {
				return err
			}

			target, err := display.NewTarget(cmd.String(flagOutput),
				display.WithTitle(cmd.String("title")),
				display.WithPlainHTTP(cmd.Bool("plain-http")),
				display.WithInsecureTLS(cmd.Bool("insecure-tls")),
				display.WithStdout(cmd.Root().Writer),
			)
			if err != nil {
				return err
			}

			if err := display.Display(ctx, data, opts, target); err != nil {
				return err
			}

			if o, ok := target.(*display.OCITarget); ok && o.Result != nil {
				fmt.Fprintf(cmd.Root().ErrWriter, "pushed %s@%s\n", o.Result.Reference, o.Result.Digest)
			}
			return nil
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the recipe HTTP API",
		Description: `Serve the recipe API on /v1/recipes and /v1/recipes/html, with health,
readiness, and Prometheus metrics endpoints. Stops gracefully on SIGINT or SIGTERM.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "Listen port",
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Run(ctx, api.Config{
				Version:  version,
				DataPath: cmd.String("data"),
				Port:     cmd.Int("port"),
			})
		},
	}
}
