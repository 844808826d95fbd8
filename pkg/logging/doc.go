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

// Package logging wraps the standard library slog package with defaults
// shared by the semver CLI: structured JSON to stderr, module and version
// context on every record, LOG_LEVEL environment configuration, and source
// location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("semver", version)
//	    slog.Info("starting", "args", os.Args)
//	}
//
// Supported log levels (case-insensitive): debug, info, warn/warning,
// error. Unset or unknown levels default to info.
//
// The core semver package never logs; it is a pure library. Only the CLI
// and output plumbing use this package.
package logging
