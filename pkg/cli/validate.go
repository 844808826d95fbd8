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

// ValidationResult reports the outcome for one input string.
type ValidationResult struct {
	Input string `json:"input" yaml:"input"`
	Valid bool   `json:"valid" yaml:"valid"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ValidationSummary aggregates the per-input results.
type ValidationSummary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// ValidationReport is the output of the validate command.
type ValidationReport struct {
	Results []ValidationResult `json:"results" yaml:"results"`
	Summary ValidationSummary  `json:"summary" yaml:"summary"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check whether inputs are valid semantic versions",
		ArgsUsage:             "[VERSION ...]",
		Description: `Check each input against the full semantic version grammar
MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD] and report per-input results.

Unlike the ordering commands, invalid inputs do not abort the run; each
is reported with the reason it was rejected.

# Examples

Validate arguments:
  semver validate 1.0.0 01.0.0 1.0.0-rc.1

Fail the command if any input is invalid (useful for CI/CD):
  semver validate --input versions.txt --fail-on-error`,
		Flags: []cli.Flag{
			inputFlag,
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any input is invalid",
			},
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

			report := ValidationReport{
				Results: make([]ValidationResult, 0, len(versions)),
			}
			for _, input := range versions {
				result := ValidationResult{Input: input}
				if _, err := semver.Parse(input); err != nil {
					result.Error = err.Error()
					report.Summary.Invalid++
				} else {
					result.Valid = true
					report.Summary.Valid++
				}
				report.Results = append(report.Results, result)
			}
			report.Summary.Total = len(report.Results)

			slog.Info("validation completed",
				"total", report.Summary.Total,
				"valid", report.Summary.Valid,
				"invalid", report.Summary.Invalid)

			if err := serializeResult(ctx, cmd, outFormat, report); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && report.Summary.Invalid > 0 {
				return fmt.Errorf("validation failed: %d input(s) did not parse", report.Summary.Invalid)
			}
			return nil
		},
	}
}
