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

import "sort"

// The string-based operations below parse every input before producing any
// result. An input that fails to parse aborts the whole operation with an
// error wrapping ErrInvalidVersion; nothing is skipped or coerced, since a
// silently wrong ordering is worse than a hard failure.

// Compare parses both arguments and returns their precedence as
// -1, 0, or 1.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// GT reports whether a has strictly higher precedence than b.
func GT(a, b string) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GTE reports whether a has precedence equal to or higher than b.
func GTE(a, b string) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// LT reports whether a has strictly lower precedence than b.
func LT(a, b string) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LTE reports whether a has precedence equal to or lower than b.
func LTE(a, b string) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// EQ reports whether a and b have equal precedence.
func EQ(a, b string) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Sort returns a new slice with the given version strings in ascending
// precedence order. The sort is stable and the input slice is not modified.
// The returned slice carries the original strings, not re-rendered ones, so
// "v1.0.0" stays "v1.0.0".
func Sort(versions []string) ([]string, error) {
	type entry struct {
		raw    string
		parsed Version
	}

	entries := make([]entry, len(versions))
	for i, s := range versions {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		entries[i] = entry{raw: s, parsed: v}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].parsed.LessThan(entries[j].parsed)
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.raw
	}
	return out, nil
}

// Max returns the input string with the highest precedence, or "" when the
// input is empty. Ties keep the earliest-encountered element. Any invalid
// input fails the whole call.
func Max(versions []string) (string, error) {
	if len(versions) == 0 {
		return "", nil
	}
	best := versions[0]
	bestParsed, err := Parse(best)
	if err != nil {
		return "", err
	}
	for _, s := range versions[1:] {
		v, err := Parse(s)
		if err != nil {
			return "", err
		}
		if v.GreaterThan(bestParsed) {
			best, bestParsed = s, v
		}
	}
	return best, nil
}

// Min returns the input string with the lowest precedence, or "" when the
// input is empty. Ties keep the earliest-encountered element. Any invalid
// input fails the whole call.
func Min(versions []string) (string, error) {
	if len(versions) == 0 {
		return "", nil
	}
	best := versions[0]
	bestParsed, err := Parse(best)
	if err != nil {
		return "", err
	}
	for _, s := range versions[1:] {
		v, err := Parse(s)
		if err != nil {
			return "", err
		}
		if v.LessThan(bestParsed) {
			best, bestParsed = s, v
		}
	}
	return best, nil
}

// SortVersions returns a new slice with the given versions in ascending
// precedence order. The sort is stable and the input slice is not modified.
func SortVersions(versions []Version) []Version {
	out := make([]Version, len(versions))
	copy(out, versions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LessThan(out[j])
	})
	return out
}

// MaxVersion returns the version with the highest precedence and true, or a
// zero Version and false when the input is empty. Ties keep the
// earliest-encountered element.
func MaxVersion(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}
	best := versions[0]
	for _, v := range versions[1:] {
		if v.GreaterThan(best) {
			best = v
		}
	}
	return best, true
}

// MinVersion returns the version with the lowest precedence and true, or a
// zero Version and false when the input is empty. Ties keep the
// earliest-encountered element.
func MinVersion(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}
	best := versions[0]
	for _, v := range versions[1:] {
		if v.LessThan(best) {
			best = v
		}
	}
	return best, true
}
