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

// Feature is a value from the finite, equality-comparable enumeration
// that a Sensor publishes events under.  The engine treats Feature as
// an opaque string; concrete sensor drivers define their own
// meaningful feature names.
type Feature string

// Event is a sensor event: a Feature tag plus an opaque payload that
// Predicates may inspect.
type Event struct {
	Feature Feature
	Payload interface{}
}

// Predicate is a pure function over an Event's payload.  A nil
// Predicate is treated as always-true.
type Predicate func(payload interface{}) bool

// Subscription is the handle returned by Sensor.Subscribe.  Cancel is
// idempotent.
type Subscription interface {
	Cancel()
}

// Sensor is the external event source the engine consumes.  A Sensor
// delivers Events for a given Feature to a handler until the returned
// Subscription is cancelled.
//
// Handler delivery must be synchronous and single-threaded from the
// engine's point of view: the engine performs no internal locking, so
// a Sensor that delivers from multiple goroutines must serialize those
// deliveries (e.g. through a single-consumer queue) before calling
// into the engine.
type Sensor interface {
	Subscribe(feature Feature, handler func(Event)) (Subscription, error)
}
