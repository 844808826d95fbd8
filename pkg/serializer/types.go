// Copyright (c) 2026, HModding.  All rights reserved.
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

// Package serializer renders command results to various output formats.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable structured data
//   - Table: tabular output with flattened keys for terminal viewing
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // releases file handles for file-backed writers
//	if err := writer.Serialize(ctx, result); err != nil {
//	    slog.Error("serialize failed", "error", err)
//	}
package serializer

import "context"

// Serializer renders a result value to a configured destination.
// The context is accepted for interface consistency; the local writers do
// not block on it.
type Serializer interface {
	Serialize(ctx context.Context, result any) error
}

// Closer is an optional interface Serializers implement when they hold
// resources such as file handles.
type Closer interface {
	Close() error
}
