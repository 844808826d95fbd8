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

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "major decides",
			a:    "1.0.0",
			b:    "2.0.0",
			want: -1,
		},
		{
			name: "minor decides",
			a:    "1.2.0",
			b:    "1.1.9",
			want: 1,
		},
		{
			name: "patch decides",
			a:    "1.1.1",
			b:    "1.1.2",
			want: -1,
		},
		{
			name: "equal releases",
			a:    "1.2.3",
			b:    "1.2.3",
			want: 0,
		},
		{
			name: "pre-release below release",
			a:    "1.0.0-alpha",
			b:    "1.0.0",
			want: -1,
		},
		{
			name: "release above pre-release",
			a:    "1.0.0",
			b:    "1.0.0-rc.1",
			want: 1,
		},
		{
			name: "shorter pre-release list loses on equal prefix",
			a:    "1.0.0-alpha",
			b:    "1.0.0-alpha.1",
			want: -1,
		},
		{
			name: "alphanumeric identifiers compare by code point",
			a:    "1.0.0-alpha",
			b:    "1.0.0-beta",
			want: -1,
		},
		{
			name: "numeric identifiers compare as integers",
			a:    "1.0.0-beta.2",
			b:    "1.0.0-beta.11",
			want: -1,
		},
		{
			name: "numeric always below alphanumeric",
			a:    "1.0.0-1",
			b:    "1.0.0-alpha",
			want: -1,
		},
		{
			name: "v prefix does not affect precedence",
			a:    "v1.0.0",
			b:    "1.0.0",
			want: 0,
		},
		{
			name: "build metadata ignored",
			a:    "1.0.0+x",
			b:    "1.0.0+y",
			want: 0,
		},
		{
			name: "build metadata ignored against bare release",
			a:    "1.0.0+build.7",
			b:    "1.0.0",
			want: 0,
		},
		{
			name: "full semver.org pre-release chain step",
			a:    "1.0.0-alpha.beta",
			b:    "1.0.0-beta",
			want: -1,
		},
		{
			name: "case matters in identifiers",
			a:    "1.0.0-Alpha",
			b:    "1.0.0-alpha",
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.a).Compare(MustParse(tt.b))
			if got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// The reversed comparison must mirror the result.
			if rev := MustParse(tt.b).Compare(MustParse(tt.a)); rev != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, rev, -tt.want)
			}
		})
	}
}

// The semver.org specification lists a canonical precedence chain; walking
// adjacent pairs covers every tie-break rule in one pass.
func TestComparePrecedenceChain(t *testing.T) {
	chain := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
		"2.0.0",
		"2.1.0",
		"2.1.1",
	}

	for i := 0; i < len(chain)-1; i++ {
		lo, hi := MustParse(chain[i]), MustParse(chain[i+1])
		if !lo.LessThan(hi) {
			t.Errorf("expected %q < %q", chain[i], chain[i+1])
		}
		if !hi.GreaterThan(lo) {
			t.Errorf("expected %q > %q", chain[i+1], chain[i])
		}
	}
}

func TestComparePredicates(t *testing.T) {
	a := MustParse("1.2.3")
	b := MustParse("1.2.4")

	if !a.LessThan(b) || a.GreaterThan(b) {
		t.Error("strict predicates disagree with Compare")
	}
	if !a.AtMost(b) || a.AtLeast(b) {
		t.Error("inclusive predicates disagree with Compare")
	}
	if !a.AtMost(a) || !a.AtLeast(a) || !a.Equal(a) {
		t.Error("inclusive predicates must hold reflexively")
	}
	if a.Equal(b) {
		t.Error("Equal(1.2.3, 1.2.4) = true")
	}
}

// Hand-built Versions can carry identifier lists Parse would reject. The
// comparator falls through to the next position when two numeric
// identifiers are numerically equal, so ordering stays defined.
func TestCompareMalformedNumericIdentifiers(t *testing.T) {
	a := Version{Major: 1, Prerelease: []string{"01", "2"}}
	b := Version{Major: 1, Prerelease: []string{"1", "3"}}

	if got := a.Compare(b); got != -1 {
		t.Errorf("Compare = %d, want -1 (decided by the second identifier)", got)
	}
}

// Numeric pre-release identifiers have no size limit in the grammar, so the
// ordering must stay exact past the uint64 range.
func TestCompareNumericPrereleaseBeyondUint64(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "adjacent values past uint64",
			a:    "1.0.0-18446744073709551616",
			b:    "1.0.0-18446744073709551617",
			want: -1,
		},
		{
			name: "huge equals itself",
			a:    "1.0.0-340282366920938463463374607431768211456",
			b:    "1.0.0-340282366920938463463374607431768211456",
			want: 0,
		},
		{
			name: "longer decimal is larger",
			a:    "1.0.0-99999999999999999999",
			b:    "1.0.0-100000000000000000000",
			want: -1,
		},
		{
			name: "huge numeric still ranks below alphanumeric",
			a:    "1.0.0-18446744073709551616",
			b:    "1.0.0-alpha",
			want: -1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := MustParse(tc.a)
			b := MustParse(tc.b)
			if got := a.Compare(b); got != tc.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if got := b.Compare(a); got != -tc.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tc.b, tc.a, got, -tc.want)
			}
		})
	}
}
