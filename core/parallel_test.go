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

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/core"
	"github.com/Comcast/gesturenet/sensor"
)

func TestParBothBranchesArmedFromTheStart(t *testing.T) {
	expr := core.Par(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	expr.Compile(m)

	assert.Equal(t, 1, m.SubscriberCount(featA))
	assert.Equal(t, 1, m.SubscriberCount(featB))
}

func TestParOrderDoesNotMatter(t *testing.T) {
	expr := core.Par(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featB, 0)
	publishInt(m, featA, 0)
	assert.Equal(t, 1, *fires)
}

func TestParDoesNotFireOnOneSideTwice(t *testing.T) {
	expr := core.Par(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featA, 0)
	publishInt(m, featA, 0) // re-armed left fires again; still waits on B
	assert.Equal(t, 0, *fires)

	publishInt(m, featB, 0)
	assert.Equal(t, 1, *fires, "both half-completed A tokens pair off in one batch, raising the Gesture once")
}

func TestParDebugAssertParallelDoesNotAffectLegitimateCompletion(t *testing.T) {
	core.DebugAssertParallel = true
	defer func() { core.DebugAssertParallel = false }()

	expr := core.Par(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	require.NotPanics(t, func() {
		publishInt(m, featA, 0)
		publishInt(m, featB, 0)
	})
	assert.Equal(t, 1, *fires, "enabling the assertion changes nothing about ordinary pairing")
}
