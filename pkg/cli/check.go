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

	"github.com/HModding/semver/pkg/constraint"
)

// CheckResult reports the outcome for one candidate version.
type CheckResult struct {
	Version   string `json:"version" yaml:"version"`
	Satisfied bool   `json:"satisfied" yaml:"satisfied"`
}

// CheckSummary aggregates the per-candidate results.
type CheckSummary struct {
	Total       int `json:"total" yaml:"total"`
	Satisfied   int `json:"satisfied" yaml:"satisfied"`
	Unsatisfied int `json:"unsatisfied" yaml:"unsatisfied"`
}

// CheckReport is the output of the check command.
type CheckReport struct {
	Constraint string        `json:"constraint" yaml:"constraint"`
	Results    []CheckResult `json:"results" yaml:"results"`
	Summary    CheckSummary  `json:"summary" yaml:"summary"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Evaluate versions against a constraint expression",
		ArgsUsage:             "[VERSION ...]",
		Description: `Evaluate candidate versions against a constraint expression using full
semantic version precedence.

# Supported Operators

  ">= 1.32.4"  - greater than or equal
  "<= 1.33.0"  - less than or equal
  "> 1.30.0"   - greater than
  "< 2.0.0"    - less than
  "== 1.2.3"   - equal precedence
  "!= 1.4.0"   - unequal precedence
  "1.2.3"      - equal precedence (no operator)

# Examples

Check one candidate:
  semver check --constraint ">= 1.32.4" 1.33.0

Gate a release list in CI:
  semver check -c "< 2.0.0" --input releases.txt --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "constraint",
				Aliases:  []string{"c"},
				Required: true,
				Usage:    "Constraint expression the candidates are checked against",
			},
			inputFlag,
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any candidate fails the constraint",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			expr := cmd.String("constraint")
			parsed, err := constraint.Parse(expr)
			if err != nil {
				return fmt.Errorf("failed to parse constraint %q: %w", expr, err)
			}

			versions, err := collectVersions(cmd)
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				return fmt.Errorf("no versions provided")
			}

			report := CheckReport{
				Constraint: parsed.String(),
				Results:    make([]CheckResult, 0, len(versions)),
			}
			for _, candidate := range versions {
				ok, err := parsed.Evaluate(candidate)
				if err != nil {
					return fmt.Errorf("failed to evaluate %q: %w", candidate, err)
				}
				if ok {
					report.Summary.Satisfied++
				} else {
					report.Summary.Unsatisfied++
				}
				report.Results = append(report.Results, CheckResult{
					Version:   candidate,
					Satisfied: ok,
				})
			}
			report.Summary.Total = len(report.Results)

			slog.Info("constraint check completed",
				"constraint", report.Constraint,
				"total", report.Summary.Total,
				"satisfied", report.Summary.Satisfied,
				"unsatisfied", report.Summary.Unsatisfied)

			if err := serializeResult(ctx, cmd, outFormat, report); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && report.Summary.Unsatisfied > 0 {
				return fmt.Errorf("constraint check failed: %d candidate(s) did not satisfy %q",
					report.Summary.Unsatisfied, report.Constraint)
			}
			return nil
		},
	}
}
