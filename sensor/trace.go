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

package sensor

import (
	"golang.org/x/net/trace"

	"github.com/Comcast/gesturenet/core"
)

// Trace wraps another core.Sensor, recording one golang.org/x/net/trace
// event trace per live subscription: one Trace.LazyPrintf entry when
// the subscription is opened, one per Event delivered through it, and
// a Finish() when it's cancelled. Browsing /debug/requests on a
// process with this Sensor in its chain shows exactly which gesture
// ground nodes are currently armed and what they've seen, without
// adding any logging of its own to the underlying Sensor.
type Trace struct {
	family string
	Sensor core.Sensor
}

// NewTrace wraps next, tagging every trace event under family (the
// first argument to trace.New; conventionally a dotted package-style
// name such as "gesturenet.sensor").
func NewTrace(family string, next core.Sensor) *Trace {
	return &Trace{family: family, Sensor: next}
}

// Subscribe implements core.Sensor.
func (t *Trace) Subscribe(feature core.Feature, handler func(core.Event)) (core.Subscription, error) {
	tr := trace.New(t.family, string(feature))

	sub, err := t.Sensor.Subscribe(feature, func(ev core.Event) {
		tr.LazyPrintf("event: %+v", ev.Payload)
		handler(ev)
	})
	if err != nil {
		tr.LazyPrintf("subscribe failed: %s", err)
		tr.SetError()
		tr.Finish()
		return nil, err
	}

	tr.LazyPrintf("subscribed")
	return &traceSubscription{tr: tr, inner: sub}, nil
}

type traceSubscription struct {
	tr    trace.Trace
	inner core.Subscription
}

func (s *traceSubscription) Cancel() {
	s.inner.Cancel()
	s.tr.LazyPrintf("cancelled")
	s.tr.Finish()
}
