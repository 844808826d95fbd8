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

// CompareResult is the output of the compare command.
type CompareResult struct {
	A      string `json:"a" yaml:"a"`
	B      string `json:"b" yaml:"b"`
	Result int    `json:"result" yaml:"result"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare the precedence of two versions",
		ArgsUsage:             "VERSION_A VERSION_B",
		Description: `Compare two semantic versions and report their precedence:
  -1  A has lower precedence than B
   0  A and B have equal precedence
   1  A has higher precedence than B

Build metadata never affects the result, and an optional leading "v" is
ignored, so "v1.0.0+x" and "1.0.0+y" compare equal.

# Examples

  semver compare 1.0.0 2.0.0
  semver compare 1.0.0-beta.2 1.0.0-beta.11 --format json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("compare requires exactly two versions, got %d", len(args))
			}

			result, err := semver.Compare(args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to compare versions: %w", err)
			}

			slog.Debug("compared versions", "a", args[0], "b", args[1], "result", result)

			return serializeResult(ctx, cmd, outFormat, CompareResult{
				A:      args[0],
				B:      args[1],
				Result: result,
			})
		},
	}
}
