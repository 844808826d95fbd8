/*
Copyright © 2026 HModding
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/HModding/semver/pkg/semver"
)

// SortResult is the output of the sort command.
type SortResult struct {
	Count    int      `json:"count" yaml:"count"`
	Versions []string `json:"versions" yaml:"versions"`
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort versions in ascending precedence order",
		ArgsUsage:             "[VERSION ...]",
		Description: `Sort semantic versions by precedence, lowest first. The sort is stable
and keeps each version exactly as written, so "v2.0.0" stays "v2.0.0".
Any invalid version fails the whole command.

# Examples

  semver sort 1.2.0 1.0.0 1.1.0
  semver sort --input versions.txt --format json`,
		Flags: []cli.Flag{
			inputFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			versions, err := collectVersions(cmd)
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				return fmt.Errorf("no versions provided")
			}

			sorted, err := semver.Sort(versions)
			if err != nil {
				return fmt.Errorf("failed to sort versions: %w", err)
			}

			slog.Debug("sorted versions", "count", len(sorted))

			return serializeResult(ctx, cmd, outFormat, SortResult{
				Count:    len(sorted),
				Versions: sorted,
			})
		},
	}
}
