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
	"sync"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/Comcast/gesturenet/core"
)

// Timer is a core.Sensor whose Features are cron expressions (the
// five/six-field syntax github.com/gorhill/cronexpr parses, the same
// library the declarative scripts use to compute "next timer fire"
// timestamps). Subscribing to a Feature schedules a timer for that
// expression's next occurrence; the Event payload delivered on fire
// is the fire time, in RFC3339Nano, via core.Timestamp's format.
//
// Like MQTT's per-topic subscription, a given cron expression is only scheduled once
// no matter how many handlers subscribe to it, and the underlying
// timer is stopped once the last handler cancels.
type Timer struct {
	mu     sync.Mutex
	active map[core.Feature]*scheduledCron
}

type scheduledCron struct {
	expr     *cronexpr.Expression
	timer    *time.Timer
	handlers []*timerSubscription
	sensor   *Timer
	feature  core.Feature
}

type timerSubscription struct {
	sched *scheduledCron
	fn    func(core.Event)
	live  bool
}

// NewTimer creates an empty Timer sensor.
func NewTimer() *Timer {
	return &Timer{active: make(map[core.Feature]*scheduledCron, 8)}
}

// Subscribe implements core.Sensor. feature must be a valid cronexpr
// expression; an invalid one is reported as an error here rather than
// deferred to the first scheduling attempt.
func (t *Timer) Subscribe(feature core.Feature, handler func(core.Event)) (core.Subscription, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sched, have := t.active[feature]
	if !have {
		expr, err := cronexpr.Parse(string(feature))
		if err != nil {
			return nil, err
		}
		sched = &scheduledCron{expr: expr, sensor: t, feature: feature}
		t.active[feature] = sched
		t.arm(sched)
	}

	sub := &timerSubscription{sched: sched, fn: handler, live: true}
	sched.handlers = append(sched.handlers, sub)
	return sub, nil
}

// arm schedules sched's time.Timer for its next occurrence after now.
// Must be called with t.mu held.
func (t *Timer) arm(sched *scheduledCron) {
	next := sched.expr.Next(time.Now())
	sched.timer = time.AfterFunc(time.Until(next), func() { t.fire(sched, next) })
}

func (t *Timer) fire(sched *scheduledCron, at time.Time) {
	ev := core.Event{Feature: sched.feature, Payload: at.UTC().Format(time.RFC3339Nano)}

	t.mu.Lock()
	handlers := append([]*timerSubscription(nil), sched.handlers...)
	stillActive := t.active[sched.feature] == sched
	if stillActive {
		t.arm(sched)
	}
	t.mu.Unlock()

	for _, sub := range handlers {
		if sub.live {
			sub.fn(ev)
		}
	}
}

func (s *timerSubscription) Cancel() {
	sched := s.sched
	t := sched.sensor

	t.mu.Lock()
	defer t.mu.Unlock()

	if !s.live {
		return
	}
	s.live = false

	for i, other := range sched.handlers {
		if other == s {
			sched.handlers = append(sched.handlers[:i], sched.handlers[i+1:]...)
			break
		}
	}
	if len(sched.handlers) == 0 {
		sched.timer.Stop()
		delete(t.active, sched.feature)
	}
}
