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

func TestIterRaisesGestureOnEveryRepetition(t *testing.T) {
	expr := core.Iter(core.Ground(featA, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featA, 0)
	publishInt(m, featA, 0)
	publishInt(m, featA, 0)
	assert.Equal(t, 3, *fires)
}

func TestIterNeverEmitsAnUpwardCompletion(t *testing.T) {
	expr := core.Seq(core.Iter(core.Ground(featA, nil)), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featA, 0)
	publishInt(m, featA, 0)
	assert.Equal(t, 0, m.SubscriberCount(featB), "Iter as a Sequence's left child stalls it: B is never armed")
	assert.Equal(t, 0, *fires)
}

func TestIterDisarmedAfterRemoval(t *testing.T) {
	expr := core.Iter(core.Ground(featA, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	rec.RemoveTokens(rec.AllTokens()...)
	assert.Equal(t, 0, m.SubscriberCount(featA), "with no tokens held, the ground node unsubscribes")

	publishInt(m, featA, 0)
	assert.Equal(t, 0, *fires, "no token was present to complete")
}

func TestIterAsChoiceOperandCanBeOutcompeted(t *testing.T) {
	expr := core.Choice(core.Iter(core.Ground(featA, nil)), core.Ground(featB, nil))
	m := sensor.NewMock()
	expr.Compile(m)

	publishInt(m, featA, 0)
	require.Equal(t, 1, m.SubscriberCount(featB), "B is still armed: Iter completing never counts as the Choice winning")

	publishInt(m, featB, 0)
	assert.Equal(t, 0, m.SubscriberCount(featA), "B winning withdraws Iter's partial progress")
}
