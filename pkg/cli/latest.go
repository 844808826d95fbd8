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

// PickResult is the output of the latest and oldest commands.
type PickResult struct {
	Count   int    `json:"count" yaml:"count"`
	Version string `json:"version" yaml:"version"`
}

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "latest",
		EnableShellCompletion: true,
		Usage:                 "Pick the version with the highest precedence",
		ArgsUsage:             "[VERSION ...]",
		Description: `Pick the highest-precedence version from the input. When several inputs
tie (build metadata differs, or a "v" prefix), the first one given wins.

# Examples

  semver latest 1.4.0 2.0.0-rc.1 1.9.9
  semver latest --input versions.txt`,
		Flags: []cli.Flag{
			inputFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return pickAction(ctx, cmd, "latest", semver.Max)
		},
	}
}

func oldestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "oldest",
		EnableShellCompletion: true,
		Usage:                 "Pick the version with the lowest precedence",
		ArgsUsage:             "[VERSION ...]",
		Description: `Pick the lowest-precedence version from the input. When several inputs
tie, the first one given wins.

# Examples

  semver oldest 1.4.0 1.0.0-alpha 1.0.0
  semver oldest --input versions.txt --format table`,
		Flags: []cli.Flag{
			inputFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return pickAction(ctx, cmd, "oldest", semver.Min)
		},
	}
}

func pickAction(ctx context.Context, cmd *cli.Command, mode string, pick func([]string) (string, error)) error {
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

	picked, err := pick(versions)
	if err != nil {
		return fmt.Errorf("failed to pick %s version: %w", mode, err)
	}

	slog.Debug("picked version", "mode", mode, "version", picked, "count", len(versions))

	return serializeResult(ctx, cmd, outFormat, PickResult{
		Count:   len(versions),
		Version: picked,
	})
}
