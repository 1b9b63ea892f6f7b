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

package history

import (
	"context"
	"time"
)

// Event is one recognized gesture, as recorded by a Sink.
type Event struct {
	// Gesture names the Source that fired, e.g. "swipe".
	Gesture string `json:"gesture"`

	// At is when the completion fired.
	At time.Time `json:"at"`

	// Payload is the payload of the sensor event that completed the
	// gesture, if the caller chose to capture one.
	Payload interface{} `json:"payload,omitempty"`
}

// Sink persists Events. A host wires one into a completion callback
// registered on a core.Recognizer or core.GroundNetwork.
type Sink interface {
	Record(ctx context.Context, ev Event) error
	Close() error
}
