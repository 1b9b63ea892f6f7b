/* Copyright 2019 Comcast Cable Communications Management, LLC
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

package sensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/core"
	"github.com/Comcast/gesturenet/sensor"
)

func TestTraceForwardsEventsAndCancellation(t *testing.T) {
	m := sensor.NewMock()
	traced := sensor.NewTrace("gesturenet.sensor.test", m)

	var got core.Event
	seen := 0
	sub, err := traced.Subscribe("A", func(ev core.Event) {
		got = ev
		seen++
	})
	require.NoError(t, err)

	m.Publish(core.Event{Feature: "A", Payload: 7})
	assert.Equal(t, 1, seen)
	assert.Equal(t, 7, got.Payload)

	sub.Cancel()
	m.Publish(core.Event{Feature: "A", Payload: 8})
	assert.Equal(t, 1, seen, "no delivery after cancel")
	assert.Equal(t, 0, m.SubscriberCount("A"))
}
