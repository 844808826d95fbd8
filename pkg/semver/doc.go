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

// Package semver implements parsing and precedence ordering for semantic
// versions as defined by semver.org 2.0.0.
//
// # Overview
//
// The package has two failure surfaces by design:
//
//   - Parse and IsValid never panic. An invalid string yields an error
//     (or false), which makes probing validity cheap.
//   - Every operation that must produce an ordering (Compare, GT, Sort,
//     Max, ...) treats an invalid input as a hard error wrapping
//     ErrInvalidVersion, naming the offending string. A wrong order is
//     worse than a failure, so bad input is never skipped or coerced.
//
// # Usage
//
// Parse and compare:
//
//	a := semver.MustParse("1.2.3-beta.2")
//	b := semver.MustParse("v1.2.3")
//	a.LessThan(b) // true: a pre-release ranks below its release
//
// String-based operations:
//
//	ordered, err := semver.Sort([]string{"1.2.0", "1.0.0", "1.1.0"})
//	latest, err := semver.Max([]string{"1.0.0", "2.0.0-rc.1"})
//
// # Precedence
//
// Versions are ordered by major, minor, and patch numerically, then by the
// pre-release rule: a release outranks its pre-releases, numeric
// identifiers compare as integers and rank below alphanumeric ones,
// alphanumeric identifiers compare by code point, and a longer identifier
// list wins when all preceding identifiers are equal. Build metadata
// ("+..." suffixes) is parsed and preserved but never affects precedence.
//
// # Concurrency
//
// Everything here is a pure function over immutable values. All functions
// and methods are safe for concurrent use without synchronization.
//
// # Testing
//
// Besides the regular unit, fuzz, and benchmark tests, the package carries
// property-based tests for the ordering laws (antisymmetry, transitivity,
// permutation-preserving sort). They live behind the "property" build tag
// because they run hundreds of generated cases:
//
//	go test -tags property ./pkg/semver/...
//
// CI should run both the plain and the tagged suite.
package semver
