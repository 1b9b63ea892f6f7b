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

func TestChoiceBothBranchesArmedFromTheStart(t *testing.T) {
	expr := core.Choice(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	expr.Compile(m)

	assert.Equal(t, 1, m.SubscriberCount(featA))
	assert.Equal(t, 1, m.SubscriberCount(featB))
}

func TestChoiceLeftWinnerCancelsRight(t *testing.T) {
	expr := core.Choice(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featA, 0)
	assert.Equal(t, 1, *fires)
	assert.Equal(t, 0, m.SubscriberCount(featB), "the loser's partial progress is withdrawn")
}

func TestChoiceRightWinnerCancelsLeft(t *testing.T) {
	expr := core.Choice(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featB, 0)
	assert.Equal(t, 1, *fires)
	assert.Equal(t, 0, m.SubscriberCount(featA))
}

func TestChoiceRearmsAfterEachDecision(t *testing.T) {
	expr := core.Choice(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featA, 0)
	require.Equal(t, 1, *fires)
	require.Equal(t, 1, m.SubscriberCount(featA), "root re-arm gives the choice a fresh token")

	publishInt(m, featB, 0)
	assert.Equal(t, 2, *fires)
}

func TestChoiceNestedUnderSequence(t *testing.T) {
	expr := core.Seq(core.Choice(core.Ground(featA, nil), core.Ground(featB, nil)), core.Ground(featC, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featB, 0)
	assert.Equal(t, 0, *fires)
	publishInt(m, featC, 0)
	assert.Equal(t, 1, *fires)
}
