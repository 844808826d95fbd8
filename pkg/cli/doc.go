/*
Copyright © 2026 HModding
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the semver tool.
//
// # Overview
//
// The semver CLI exposes the version engine for scripting and CI use:
// comparing versions, ordering release lists, picking the newest or oldest
// release, validating version strings, and gating candidates against
// constraint expressions.
//
// # Commands
//
// compare - Compare the precedence of two versions:
//
//	semver compare 1.0.0-beta.2 1.0.0-beta.11
//
// sort - Order versions ascending:
//
//	semver sort 1.2.0 1.0.0 1.1.0 [--input FILE]
//
// latest / oldest - Pick the extreme of a list:
//
//	semver latest --input releases.txt
//
// validate - Per-input grammar check:
//
//	semver validate 1.0.0 01.0.0 --fail-on-error
//
// check - Constraint evaluation:
//
//	semver check --constraint ">= 1.32.4" 1.33.0 1.30.2
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--input, -f    File with one version per line (list commands)
//
// # Exit Codes
//
//	0  Success
//	1  Invalid input, failed constraint with --fail-on-error, or
//	   execution failure
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/semver - parsing and precedence ordering
//   - pkg/constraint - constraint expression evaluation
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/HModding/semver/pkg/cli.version=1.0.0'"
package cli
