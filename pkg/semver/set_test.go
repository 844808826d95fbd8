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
	"strings"
	"testing"
)

func TestCompareStrings(t *testing.T) {
	got, err := Compare("1.0.0", "2.0.0")
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if got != -1 {
		t.Errorf("Compare(1.0.0, 2.0.0) = %d, want -1", got)
	}

	if _, err := Compare("1.0.0", "nope"); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("Compare with invalid input: error = %v, want ErrInvalidVersion", err)
	}
}

func TestRelationalWrappers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b string) (bool, error)
		a    string
		b    string
		want bool
	}{
		{"GT strict", GT, "2.0.0", "1.0.0", true},
		{"GT equal", GT, "1.0.0", "1.0.0", false},
		{"GTE equal", GTE, "1.0.0", "v1.0.0", true},
		{"GTE below", GTE, "1.0.0-rc.1", "1.0.0", false},
		{"LT strict", LT, "1.0.0-alpha", "1.0.0", true},
		{"LT above", LT, "1.0.1", "1.0.0", false},
		{"LTE equal", LTE, "1.0.0+a", "1.0.0+b", true},
		{"EQ build ignored", EQ, "1.0.0+x", "1.0.0+y", true},
		{"EQ different", EQ, "1.0.0", "1.0.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.a, tt.b)
			if err != nil {
				t.Fatalf("wrapper failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	for _, fn := range []func(a, b string) (bool, error){GT, GTE, LT, LTE, EQ} {
		if _, err := fn("1.0.0", "bad"); !errors.Is(err, ErrInvalidVersion) {
			t.Errorf("wrapper with invalid input: error = %v, want ErrInvalidVersion", err)
		}
	}
}

func TestSort(t *testing.T) {
	input := []string{"1.2.0", "1.0.0", "1.1.0"}
	got, err := Sort(input)
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}

	want := []string{"1.0.0", "1.1.0", "1.2.0"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort = %v, want %v", got, want)
		}
	}

	// Input order is untouched.
	if input[0] != "1.2.0" || input[1] != "1.0.0" || input[2] != "1.1.0" {
		t.Errorf("Sort mutated its input: %v", input)
	}
}

func TestSortPreservesOriginalStrings(t *testing.T) {
	got, err := Sort([]string{"v2.0.0", "1.0.0+build"})
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	if got[0] != "1.0.0+build" || got[1] != "v2.0.0" {
		t.Errorf("Sort = %v, want original spellings in order", got)
	}
}

func TestSortIsStable(t *testing.T) {
	// Equal precedence, distinct spellings: first-seen order must survive.
	got, err := Sort([]string{"1.0.0+b", "v1.0.0", "1.0.0+a", "0.9.0"})
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	want := []string{"0.9.0", "1.0.0+b", "v1.0.0", "1.0.0+a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort = %v, want %v", got, want)
		}
	}
}

func TestSortWithPrereleases(t *testing.T) {
	got, err := Sort([]string{"1.0.0", "1.0.0-rc.1", "1.0.0-alpha", "1.0.0-beta.11", "1.0.0-beta.2"})
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	want := []string{"1.0.0-alpha", "1.0.0-beta.2", "1.0.0-beta.11", "1.0.0-rc.1", "1.0.0"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sort = %v, want %v", got, want)
		}
	}
}

func TestSortFailsOnInvalidElement(t *testing.T) {
	_, err := Sort([]string{"1.0.0", "oops", "2.0.0"})
	if !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("Sort error = %v, want ErrInvalidVersion", err)
	}
	if !strings.Contains(err.Error(), `"oops"`) {
		t.Errorf("error %q does not name the offending element", err.Error())
	}
}

func TestMaxMin(t *testing.T) {
	versions := []string{"1.4.0", "2.0.0-rc.1", "1.9.9", "2.0.0-rc.1+other"}

	max, err := Max(versions)
	if err != nil {
		t.Fatalf("Max failed: %v", err)
	}
	// Strict reduction keeps the first of the tied rc.1 builds.
	if max != "2.0.0-rc.1" {
		t.Errorf("Max = %q, want %q", max, "2.0.0-rc.1")
	}

	min, err := Min(versions)
	if err != nil {
		t.Fatalf("Min failed: %v", err)
	}
	if min != "1.4.0" {
		t.Errorf("Min = %q, want %q", min, "1.4.0")
	}
}

func TestMaxMinEmptyInput(t *testing.T) {
	max, err := Max(nil)
	if err != nil || max != "" {
		t.Errorf("Max(nil) = (%q, %v), want (\"\", nil)", max, err)
	}
	min, err := Min([]string{})
	if err != nil || min != "" {
		t.Errorf("Min(empty) = (%q, %v), want (\"\", nil)", min, err)
	}
}

func TestMaxMinFailOnInvalidElement(t *testing.T) {
	if _, err := Max([]string{"2.0.0", "bad"}); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("Max error = %v, want ErrInvalidVersion", err)
	}
	if _, err := Min([]string{"bad", "2.0.0"}); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("Min error = %v, want ErrInvalidVersion", err)
	}
}

func TestSortVersions(t *testing.T) {
	input := []Version{MustParse("3.0.0"), MustParse("1.0.0"), MustParse("2.0.0")}
	got := SortVersions(input)

	if got[0].Major != 1 || got[1].Major != 2 || got[2].Major != 3 {
		t.Errorf("SortVersions order = %v", got)
	}
	if input[0].Major != 3 {
		t.Error("SortVersions mutated its input")
	}
}

func TestMaxMinVersion(t *testing.T) {
	if _, ok := MaxVersion(nil); ok {
		t.Error("MaxVersion(nil) reported a result")
	}
	if _, ok := MinVersion(nil); ok {
		t.Error("MinVersion(nil) reported a result")
	}

	versions := []Version{MustParse("1.0.0"), MustParse("1.5.0"), MustParse("1.2.0")}
	max, ok := MaxVersion(versions)
	if !ok || max.Minor != 5 {
		t.Errorf("MaxVersion = (%v, %v)", max, ok)
	}
	min, ok := MinVersion(versions)
	if !ok || min.Minor != 0 {
		t.Errorf("MinVersion = (%v, %v)", min, ok)
	}
}
