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
	"github.com/Comcast/gesturenet/core"
	"github.com/Comcast/gesturenet/match"
)

// Pattern builds a core.Predicate that accepts an Event payload when
// it structurally matches pat, using the same matcher the original
// message-processing engine used for branch patterns: string values
// beginning with "?" bind variables (a map key beginning with "?" is
// a matcher error, so no payload matches), a bare "?" is a wildcard, and
// (when m.Inequalities is set) a variable named like "?<n" admits any
// value satisfying the inequality against the bound value.
//
// pat and incoming payloads are first run through core.Canonicalize,
// so a caller may build pat directly from a YAML document (which
// decodes into map[interface{}]interface{}, not the
// map[string]interface{} the matcher expects) without any manual
// conversion.
//
// A payload that fails to canonicalize, or for which the matcher
// reports an error, does not match; any other payload is handed to
// the matcher, so a payload that is not map-shaped does not match a
// map pattern.
func Pattern(m *match.Matcher, pat interface{}) (core.Predicate, error) {
	if m == nil {
		m = match.DefaultMatcher
	}
	cpat, err := core.Canonicalize(pat)
	if err != nil {
		return nil, err
	}
	return func(payload interface{}) bool {
		fact, err := core.Canonicalize(payload)
		if err != nil {
			return false
		}
		bss, err := m.Match(cpat, fact, match.NewBindings())
		if err != nil {
			return false
		}
		return len(bss) > 0
	}, nil
}
