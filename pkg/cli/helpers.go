/*
Copyright © 2026 HModding
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/HModding/semver/pkg/errors"
	"github.com/HModding/semver/pkg/serializer"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Value:   string(serializer.FormatYAML),
	Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
}

var inputFlag = &cli.StringFlag{
	Name:    "input",
	Aliases: []string{"f"},
	Usage: `Path to a file with one version per line. Blank lines and lines
	starting with # are skipped. File entries come before positional arguments.`,
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// collectVersions gathers the version list a command operates on: the
// --input file first (when given), then positional arguments.
func collectVersions(cmd *cli.Command) ([]string, error) {
	var versions []string

	if path := cmd.String("input"); path != "" {
		fromFile, err := readVersionsFile(path)
		if err != nil {
			return nil, err
		}
		versions = append(versions, fromFile...)
	}

	versions = append(versions, cmd.Args().Slice()...)
	return versions, nil
}

func readVersionsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithContext(
			errors.ErrCodeNotFound,
			"failed to open version list",
			err,
			map[string]any{"path": path},
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close version list", "path", path, "error", err)
		}
	}()

	var versions []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		versions = append(versions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, fmt.Sprintf("failed to read version list %q", path), err)
	}
	return versions, nil
}

// serializeResult writes the result to --output in --format, closing any
// file handle the writer holds.
func serializeResult(ctx context.Context, cmd *cli.Command, format serializer.Format, result any) error {
	writer := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := writer.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := writer.Serialize(ctx, result); err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	return nil
}
