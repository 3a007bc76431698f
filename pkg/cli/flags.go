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
	"strings"

	"github.com/urfave/cli/v3"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/recipebook/pkg/recipe"
	"github.com/NVIDIA/recipebook/pkg/serializer"
)

const (
	flagDifficulty = "difficulty"
	flagMaxTime    = "max-time"
	flagCuisine    = "cuisine"
	flagSort       = "sort"
	flagFormat     = "format"
	flagOutput     = "output"
)

func sortFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagSort,
		Aliases: []string{"s"},
		Value:   string(recipe.DefaultSortProperty),
		Usage: fmt.Sprintf("Property to sort by, ascending (supported values: %s)",
			strings.Join(recipe.SupportedProperties(), ", ")),
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatTable),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "Output destination: file path or ConfigMap URI (cm://namespace/name). Default: stdout",
	}
}

// filterFlags returns the filter and sort flags. Flags hold parse state, so
// every command gets its own instances.
func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name: flagDifficulty,
			Usage: fmt.Sprintf("Keep recipes with this difficulty (supported values: %s)",
				strings.Join(recipe.SupportedDifficulties(), ", ")),
		},
		&cli.IntFlag{
			Name:  flagMaxTime,
			Usage: "Keep recipes taking at most this many minutes (0 is a valid limit)",
		},
		&cli.StringFlag{
			Name:  flagCuisine,
			Usage: "Keep recipes with exactly this cuisine",
		},
		sortFlag(),
	}
}

// optionsFromCmd builds query options from flags. Only flags the user set
// become filters.
func optionsFromCmd(cmd *cli.Command) (recipe.Options, error) {
	var opts recipe.Options

	if cmd.IsSet(flagDifficulty) {
		d, err := recipe.ParseDifficulty(cmd.String(flagDifficulty))
		if err != nil {
			return opts, err
		}
		opts.Difficulty = ptr.To(d)
	}
	if cmd.IsSet(flagMaxTime) {
		opts.MaxTime = ptr.To(cmd.Int(flagMaxTime))
	}
	if cmd.IsSet(flagCuisine) {
		opts.Cuisine = ptr.To(cmd.String(flagCuisine))
	}

	p, err := recipe.ParseProperty(cmd.String(flagSort))
	if err != nil {
		return opts, err
	}
	opts.SortProperty = p

	return opts, opts.Validate()
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(cmd.String(flagFormat)))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			cmd.String(flagFormat), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// loadData loads the catalog named by --data.
func loadData(ctx context.Context, cmd *cli.Command) ([]recipe.Recipe, error) {
	data, err := recipe.LoadCatalog(ctx, cmd.String("data"),
		serializer.WithUserAgent(fmt.Sprintf("%s/%s", name, version)),
		serializer.WithTotalTimeout(cmd.Duration("data-timeout")),
		serializer.WithInsecureSkipVerify(cmd.Bool("data-insecure-tls")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}
	return data, nil
}

// newSerializer writes to --output when set, otherwise to the command's writer.
func newSerializer(cmd *cli.Command, format serializer.Format) serializer.Serializer {
	if out := cmd.String(flagOutput); out != "" {
		return serializer.NewFileWriterOrStdout(format, out)
	}
	return serializer.NewWriter(format, cmd.Root().Writer)
}

func closeSerializer(ser serializer.Serializer) {
	if closer, ok := ser.(serializer.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}
}
