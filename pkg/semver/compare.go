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
	"regexp"
	"strings"
)

var numericIdentifier = regexp.MustCompile(`^\d+$`)

// Compare returns -1 if v has lower precedence than other, 0 if they are
// equal, and 1 if v has higher precedence. Major, minor, and patch are
// compared numerically; ties fall through to the pre-release rule.
// Build metadata is ignored, so "1.0.0+x" and "1.0.0+y" compare equal.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return comparePrerelease(v.Prerelease, other.Prerelease)
}

// comparePrerelease orders two pre-release identifier lists.
// A release (empty list) outranks any pre-release with the same numeric
// components. Otherwise identifiers are compared position by position; when
// one list runs out with all preceding identifiers equal, the shorter list
// has lower precedence.
func comparePrerelease(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}

	for i := 0; i < len(a) || i < len(b); i++ {
		if i >= len(a) {
			return -1
		}
		if i >= len(b) {
			return 1
		}
		if a[i] == b[i] {
			continue
		}
		if d := compareIdentifier(a[i], b[i]); d != 0 {
			return d
		}
	}
	return 0
}

// compareIdentifier orders a single pair of pre-release identifiers.
// Numeric identifiers compare as integers and always rank below
// alphanumeric ones; alphanumeric identifiers compare by code point.
// Two numeric identifiers that differ as strings but are numerically equal
// ("01" vs "1") cannot come out of Parse, but the zero return keeps the
// position walk well defined if such values are built by hand.
func compareIdentifier(a, b string) int {
	aNumeric := numericIdentifier.MatchString(a)
	bNumeric := numericIdentifier.MatchString(b)

	switch {
	case aNumeric && bNumeric:
		return compareNumeric(a, b)
	case aNumeric:
		return -1
	case bNumeric:
		return 1
	}

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareNumeric orders two digit-only identifiers by integer value without
// converting them, so identifiers past the uint64 range keep their exact
// order. After stripping leading zeros a longer decimal is a larger one, and
// equal-width decimals order the same way their digit strings do.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Equal reports whether v and other have the same precedence.
// Build metadata is ignored, as in Compare.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// LessThan reports whether v has strictly lower precedence than other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan reports whether v has strictly higher precedence than other.
func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

// AtLeast reports whether v has precedence equal to or higher than other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

// AtMost reports whether v has precedence equal to or lower than other.
func (v Version) AtMost(other Version) bool {
	return v.Compare(other) <= 0
}
