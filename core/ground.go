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

package core

// groundExpr is the Ground(feature, predicate) variant.
type groundExpr struct {
	baseExpr
	feature   Feature
	predicate Predicate
}

// Ground builds a leaf expression that recognizes a single sensor
// Event: its Feature must match, and, if predicate is non-nil, the
// predicate must accept the Event's payload. A nil predicate always
// accepts.
func Ground(feature Feature, predicate Predicate) Expression {
	return &groundExpr{feature: feature, predicate: predicate}
}

func (e *groundExpr) compile(sensor Sensor) Network {
	net := newGroundNetwork(sensor, e.feature, e.predicate)
	net.OnCompletion(func(ts []Token) { e.gesture.raise() })
	return net
}

func (e *groundExpr) Compile(sensor Sensor) *Recognizer {
	return compileRoot(e.compile, &e.gesture, sensor)
}

// GroundNetwork is the compiled form of a Ground expression: the only
// Network variant that talks to a Sensor.
type GroundNetwork struct {
	feature   Feature
	predicate Predicate
	sensor    Sensor

	held map[Token]struct{}
	sub  Subscription

	completion completionFanout
}

func newGroundNetwork(sensor Sensor, feature Feature, predicate Predicate) *GroundNetwork {
	if predicate == nil {
		predicate = func(interface{}) bool { return true }
	}
	return &GroundNetwork{
		feature:   feature,
		predicate: predicate,
		sensor:    sensor,
		held:      make(map[Token]struct{}, 4),
	}
}

// Front is the singleton {self}.
func (g *GroundNetwork) Front() []*GroundNetwork {
	return []*GroundNetwork{g}
}

// Nodes is the singleton {self}: a Ground node has no descendants.
func (g *GroundNetwork) Nodes() []*GroundNetwork {
	return []*GroundNetwork{g}
}

// AddTokens adds each token to the held set; if the subscription was
// inactive, it subscribes now (invariant 2). If the subscription
// attempt fails, the held set is left exactly as it was before the
// call.
func (g *GroundNetwork) AddTokens(ts ...Token) error {
	if len(ts) == 0 {
		return nil
	}
	wasEmpty := len(g.held) == 0
	for _, t := range ts {
		g.held[t] = struct{}{}
	}
	if wasEmpty {
		sub, err := g.sensor.Subscribe(g.feature, g.handle)
		if err != nil {
			for _, t := range ts {
				delete(g.held, t)
			}
			return &SubscriptionError{Feature: g.feature, Err: err}
		}
		g.sub = sub
	}
	return nil
}

// RemoveTokens removes each token from the held set; if the held set
// becomes empty, it unsubscribes (invariant 2). Removing a token that
// isn't held is a silent no-op, so repeated calls with
// the same set are idempotent.
func (g *GroundNetwork) RemoveTokens(ts ...Token) {
	for _, t := range ts {
		delete(g.held, t)
	}
	if len(g.held) == 0 && g.sub != nil {
		g.sub.Cancel()
		g.sub = nil
	}
}

func (g *GroundNetwork) OnCompletion(fn func(ts []Token)) {
	g.completion.Subscribe(fn)
}

// handle is the sensor callback. The held set is
// swapped and the subscription dropped *before* the completion is
// emitted, so that a downstream AddTokens triggered synchronously by
// this very completion is not immediately torn down by this handler
// returning, and so a reentrant re-delivery of the same event cannot
// cause a double-fire.
func (g *GroundNetwork) handle(ev Event) {
	if ev.Feature != g.feature {
		return
	}
	if !g.predicate(ev.Payload) {
		return
	}

	ts := make([]Token, 0, len(g.held))
	for t := range g.held {
		ts = append(ts, t)
	}
	g.held = make(map[Token]struct{}, 4)
	if g.sub != nil {
		g.sub.Cancel()
		g.sub = nil
	}

	g.completion.Emit(ts)
}

// HasSubscription reports whether this node currently holds a live
// sensor subscription. Exposed for tests; not needed by the engine
// itself.
func (g *GroundNetwork) HasSubscription() bool {
	return g.sub != nil
}

// HeldCount reports how many tokens this node currently holds.
// Exposed for tests and diagnostics only.
func (g *GroundNetwork) HeldCount() int {
	return len(g.held)
}

// HeldTokens returns a snapshot of the tokens this node currently
// holds. Exposed for tests and diagnostics only.
func (g *GroundNetwork) HeldTokens() []Token {
	ts := make([]Token, 0, len(g.held))
	for t := range g.held {
		ts = append(ts, t)
	}
	return ts
}
