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

package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/predicate"
)

func TestInequalityGreaterThan(t *testing.T) {
	p, err := predicate.Inequality("?n", predicate.GT, 10)
	require.NoError(t, err)

	assert.True(t, p(map[string]interface{}{"n": 11}))
	assert.False(t, p(map[string]interface{}{"n": 10}))
	assert.False(t, p(map[string]interface{}{"n": 9}))
}

func TestInequalityMissingOrNonNumericFieldDoesNotMatch(t *testing.T) {
	p, err := predicate.Inequality("n", predicate.LE, 3)
	require.NoError(t, err)

	assert.False(t, p(map[string]interface{}{}))
	assert.False(t, p(map[string]interface{}{"n": "three"}))
	assert.False(t, p("not a map"))
}

func TestInequalityUnknownOperator(t *testing.T) {
	_, err := predicate.Inequality("n", predicate.Op("?"), 0)
	assert.Error(t, err)
}
