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

	"github.com/NVIDIA/recipebook/pkg/display"
	"github.com/NVIDIA/recipebook/pkg/recipe"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		Aliases:               []string{"ls"},
		EnableShellCompletion: true,
		Usage:                 "List recipes matching the given filters",
		Description: `List recipes, optionally filtered by difficulty, maximum time, and cuisine,
sorted ascending by a recipe property.

Filters are combined with AND. A filter applies only when its flag is given,
so --max-time 0 keeps only recipes that take no time at all.

Examples:
  recipebook list --difficulty easy --sort time
  recipebook list --cuisine Italian --format yaml --output italian.yaml`,
		Flags: append(filterFlags(), formatFlag(), outputFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			opts, err := optionsFromCmd(cmd)
			if err != nil {
				return err
			}
			data, err := loadData(ctx, cmd)
			if err != nil {
				return err
			}

			cards, err := display.Cards(data, opts)
			if err != nil {
				return err
			}

			ser := newSerializer(cmd, format)
			defer closeSerializer(ser)
			return ser.Serialize(ctx, cards)
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "search",
		EnableShellCompletion: true,
		Usage:                 "Search recipe names and ingredients",
		ArgsUsage:             "[query]",
		Description: `Search recipes whose name or any ingredient contains the query,
ignoring case. An empty or omitted query matches every recipe.

Examples:
  recipebook search chicken
  recipebook search "puff pastry" --format json`,
		Flags: []cli.Flag{sortFlag(), formatFlag(), outputFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return fmt.Errorf("search takes at most one query argument, got %d (quote multi-word queries)", cmd.Args().Len())
			}
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			p, err := recipe.ParseProperty(cmd.String(flagSort))
			if err != nil {
				return err
			}
			c, err := recipe.SortBy(p)
			if err != nil {
				return err
			}
			data, err := loadData(ctx, cmd)
			if err != nil {
				return err
			}

			res := recipe.Pipe(data,
				recipe.FilterStage(recipe.Search(cmd.Args().First())),
				recipe.SortStage(c),
			)

			ser := newSerializer(cmd, format)
			defer closeSerializer(ser)
			return ser.Serialize(ctx, display.Render(res))
		},
	}
}
