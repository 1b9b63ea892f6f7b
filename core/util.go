/* Copyright 2018 Comcast Cable Communications Management, LLC
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

package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Canonicalize round-trips x through JSON so that, e.g., a
// map[interface{}]interface{} produced by a YAML decoder becomes a
// map[string]interface{} that Predicate pattern matching can work
// with uniformly. Such maps (keys rendered with fmt.Sprint) are
// rewritten before encoding when x is one or when they sit directly
// in one; a map[interface{}]interface{} inside a slice is not
// rewritten, and Canonicalize returns json's encoding error for it.
func Canonicalize(x interface{}) (interface{}, error) {
	var err error

	var stringKeys func(v interface{}) interface{}
	stringKeys = func(v interface{}) interface{} {
		m, is := v.(map[interface{}]interface{})
		if !is {
			return v
		}
		sm := make(map[string]interface{}, len(m))
		for k, e := range m {
			sm[fmt.Sprint(k)] = stringKeys(e)
		}
		return sm
	}
	x = stringKeys(x)

	js, err := json.Marshal(&x)
	if err != nil {
		return nil, err
	}
	var y interface{}
	if err = json.Unmarshal(js, &y); err != nil {
		return nil, err
	}

	return y, nil
}

// Timestamp returns a string representing the current time in
// RFC3339Nano. Used by history sinks as the recorded time for an
// Event that arrives with no timestamp of its own.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Unquestion removes a leading question mark (if any) from an
// inequality variable name such as "?<n".
func Unquestion(p string) string {
	if strings.HasPrefix(p, "?") {
		return p[1:]
	}
	return p
}
