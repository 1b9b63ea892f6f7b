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

// Package sensor provides core.Sensor adapters: a synchronous
// in-process mock for tests, and transports that bridge real event
// sources (MQTT, a cron schedule, a websocket) into the engine.
package sensor

import "github.com/Comcast/gesturenet/core"

// Mock is a synchronous, single-threaded core.Sensor, primarily
// intended for tests and for cmd/gesturesim. Publish delivers an
// Event to every handler subscribed for its Feature, in subscription
// order, on the calling goroutine — exactly the synchronous,
// single-threaded delivery model core.Sensor requires.
type Mock struct {
	subs map[core.Feature][]*mockSubscription
}

// NewMock creates an empty Mock sensor.
func NewMock() *Mock {
	return &Mock{subs: make(map[core.Feature][]*mockSubscription, 8)}
}

type mockSubscription struct {
	sensor  *Mock
	feature core.Feature
	handler func(core.Event)
	live    bool
}

func (s *mockSubscription) Cancel() {
	if !s.live {
		return
	}
	s.live = false
	subs := s.sensor.subs[s.feature]
	for i, other := range subs {
		if other == s {
			s.sensor.subs[s.feature] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

// Subscribe implements core.Sensor.
func (s *Mock) Subscribe(feature core.Feature, handler func(core.Event)) (core.Subscription, error) {
	sub := &mockSubscription{sensor: s, feature: feature, handler: handler, live: true}
	s.subs[feature] = append(s.subs[feature], sub)
	return sub, nil
}

// Publish delivers an event to every handler currently subscribed for
// its Feature. Handlers are called synchronously, in subscription
// order; a handler that cancels its own or another handler's
// subscription, or subscribes a new one, is tolerated because Publish
// iterates over a snapshot of the subscriber list taken before
// delivery begins.
func (s *Mock) Publish(ev core.Event) {
	subs := s.subs[ev.Feature]
	snapshot := make([]*mockSubscription, len(subs))
	copy(snapshot, subs)
	for _, sub := range snapshot {
		if sub.live {
			sub.handler(ev)
		}
	}
}

// SubscriberCount reports how many live subscriptions exist for
// feature. Exposed for tests that check the subscription-economy
// invariant from the sensor's side.
func (s *Mock) SubscriberCount(feature core.Feature) int {
	return len(s.subs[feature])
}
