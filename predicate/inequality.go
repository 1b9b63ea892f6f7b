/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package predicate

import (
	"fmt"

	"github.com/Comcast/gesturenet/core"
)

// Op is one of the numeric comparisons a matcher inequality variable
// name like "?<n" can carry after the leading "?".
type Op string

const (
	LT Op = "<"
	LE Op = "<="
	GT Op = ">"
	GE Op = ">="
	NE Op = "!="
)

// Inequality builds a core.Predicate comparing a named numeric field
// of a map-shaped payload against a fixed threshold, using the same
// operator vocabulary the pattern matcher's inequality variables
// support ("?<n", "?<=n", and so on). field is given without its
// leading "?", matching core.Unquestion's output.
//
// A payload that is not a map, or whose field is missing or not a
// number, does not match.
func Inequality(field string, op Op, threshold float64) (core.Predicate, error) {
	field = core.Unquestion(field)

	cmp, err := comparator(op)
	if err != nil {
		return nil, err
	}

	return func(payload interface{}) bool {
		m, is := payload.(map[string]interface{})
		if !is {
			return false
		}
		raw, found := m[field]
		if !found {
			return false
		}
		n, is := asFloat(raw)
		if !is {
			return false
		}
		return cmp(n, threshold)
	}, nil
}

func comparator(op Op) (func(x, y float64) bool, error) {
	switch op {
	case LT:
		return func(x, y float64) bool { return x < y }, nil
	case LE:
		return func(x, y float64) bool { return x <= y }, nil
	case GT:
		return func(x, y float64) bool { return x > y }, nil
	case GE:
		return func(x, y float64) bool { return x >= y }, nil
	case NE:
		return func(x, y float64) bool { return x != y }, nil
	default:
		return nil, fmt.Errorf("predicate: unknown inequality operator %q", op)
	}
}

func asFloat(x interface{}) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
