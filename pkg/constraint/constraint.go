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

package constraint

import (
	"strings"

	"github.com/HModding/semver/pkg/errors"
	"github.com/HModding/semver/pkg/semver"
)

// Operator represents a comparison operator in constraint expressions.
type Operator string

const (
	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="

	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorEQ represents "==" (equal precedence).
	OperatorEQ Operator = "=="

	// OperatorNE represents "!=" (unequal precedence).
	OperatorNE Operator = "!="
)

// Constraint is a parsed constraint expression: an operator and a bound
// version. A bare version with no operator means equal precedence.
type Constraint struct {
	// Operator is the comparison operator.
	Operator Operator

	// Version is the parsed bound the candidate is compared against.
	Version semver.Version

	// Raw is the bound version exactly as written in the expression.
	Raw string
}

// Parse parses a constraint value expression.
// Examples:
//   - ">= 1.32.4" -> at least 1.32.4
//   - "< 2.0.0"   -> below 2.0.0
//   - "v1.2.3"    -> exactly 1.2.3 by precedence
//
// The bound must be a full semantic version; whitespace around the
// operator and the bound is ignored.
func Parse(expr string) (*Constraint, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint expression cannot be empty")
	}

	c := &Constraint{Operator: OperatorEQ}

	// Scan operators longest first so ">" does not shadow ">=".
	operators := []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}
	for _, op := range operators {
		if strings.HasPrefix(expr, string(op)) {
			c.Operator = op
			expr = strings.TrimSpace(strings.TrimPrefix(expr, string(op)))
			break
		}
	}

	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint value cannot be empty after operator")
	}

	bound, err := semver.Parse(expr)
	if err != nil {
		return nil, errors.WrapWithContext(
			errors.ErrCodeInvalidRequest,
			"constraint bound is not a semantic version",
			err,
			map[string]any{"expression": expr},
		)
	}

	c.Version = bound
	c.Raw = expr
	return c, nil
}

// String renders the constraint in its canonical form.
func (c *Constraint) String() string {
	return string(c.Operator) + " " + c.Version.String()
}

// Evaluate reports whether the candidate version satisfies the constraint.
// The candidate must be a valid semantic version; an unparsable candidate
// is a hard error, never a silent false.
func (c *Constraint) Evaluate(candidate string) (bool, error) {
	v, err := semver.Parse(candidate)
	if err != nil {
		return false, err
	}

	cmp := v.Compare(c.Version)
	switch c.Operator {
	case OperatorGTE:
		return cmp >= 0, nil
	case OperatorLTE:
		return cmp <= 0, nil
	case OperatorGT:
		return cmp > 0, nil
	case OperatorLT:
		return cmp < 0, nil
	case OperatorEQ:
		return cmp == 0, nil
	case OperatorNE:
		return cmp != 0, nil
	default:
		return false, errors.NewWithContext(
			errors.ErrCodeInternal,
			"unknown constraint operator",
			map[string]any{"operator": string(c.Operator)},
		)
	}
}

// Check parses the expression and evaluates it against the candidate in
// one step.
func Check(expr, candidate string) (bool, error) {
	c, err := Parse(expr)
	if err != nil {
		return false, err
	}
	return c.Evaluate(candidate)
}
