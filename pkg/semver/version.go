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

package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidVersion reports input that does not match the semantic version
// grammar. Every parse failure wraps this sentinel together with the
// offending input, so callers can match it with errors.Is and still see
// which string was rejected.
var ErrInvalidVersion = errors.New("invalid semantic version")

// versionPattern is the full semver 2.0.0 grammar, anchored at both ends.
// Numeric components reject leading zeros ("01.0.0" is invalid), and a
// purely numeric pre-release identifier rejects leading zeros as well
// ("1.0.0-01" is invalid). Build identifiers have no leading-zero rule.
var versionPattern = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[A-Za-z-][0-9A-Za-z-]*)(?:\.(?:0|[1-9]\d*|\d*[A-Za-z-][0-9A-Za-z-]*))*))?` +
		`(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

// Version represents a parsed semantic version. It is an immutable value:
// construct it with Parse (or MustParse) and treat the fields as read-only.
// Build metadata is preserved for round-tripping but never participates in
// precedence comparisons.
type Version struct {
	Major uint64 `json:"major" yaml:"major"`
	Minor uint64 `json:"minor" yaml:"minor"`
	Patch uint64 `json:"patch" yaml:"patch"`

	// Prerelease holds the dot-separated identifiers after "-".
	// An empty slice means a final release.
	Prerelease []string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`

	// Build holds the dot-separated identifiers after "+".
	Build []string `json:"build,omitempty" yaml:"build,omitempty"`

	// Raw is the normalized input: surrounding whitespace trimmed and the
	// optional leading "v" stripped.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Parse parses a semantic version string into a Version.
// Surrounding whitespace is trimmed and one optional leading "v" or "V" is
// stripped before matching. The remainder must match the full
// MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD] grammar; anything else fails with
// an error wrapping ErrInvalidVersion that names the rejected input.
// Parse never returns a partially populated Version.
func Parse(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	if len(raw) > 0 && (raw[0] == 'v' || raw[0] == 'V') {
		raw = raw[1:]
	}
	if raw == "" {
		return Version{}, fmt.Errorf("%w: empty input", ErrInvalidVersion)
	}

	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: major component out of range in %q", ErrInvalidVersion, s)
	}
	minor, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: minor component out of range in %q", ErrInvalidVersion, s)
	}
	patch, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		return Version{}, fmt.Errorf("%w: patch component out of range in %q", ErrInvalidVersion, s)
	}

	v := Version{
		Major: major,
		Minor: minor,
		Patch: patch,
		Raw:   raw,
	}
	if m[4] != "" {
		v.Prerelease = strings.Split(m[4], ".")
	}
	if m[5] != "" {
		v.Build = strings.Split(m[5], ".")
	}
	return v, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use Parse and handle the error explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("semver.MustParse: %v", err))
	}
	return v
}

// IsValid reports whether s parses as a semantic version.
// It is defined as Parse succeeding, so the two can never disagree.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String returns the canonical rendering of the version, including any
// pre-release and build identifiers but without a leading "v".
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.Prerelease, "."))
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(v.Build, "."))
	}
	return b.String()
}
