/*
Copyright © 2026 HModding
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/HModding/semver/pkg/logging"
)

const name = "semver"

// overridden during build with ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Parse, compare, and order semantic versions",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Before: func(ctx context.Context, _ *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLogger(name, version)
			return ctx, nil
		},
		Commands: []*cli.Command{
			compareCmd(),
			sortCmd(),
			latestCmd(),
			oldestCmd(),
			validateCmd(),
			checkCmd(),
		},
	}
}

// Run executes the CLI with the given arguments. It is called by
// main.main() and handles SIGINT/SIGTERM by canceling the command context.
func Run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd().Run(ctx, args)
}
