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

// iterExpr is the Iter(body) variant: repeat body, forever, raising a
// Gesture event per repetition.
type iterExpr struct {
	baseExpr
	body Expression
}

// Iter builds an expression that repeats body indefinitely: every
// completion of body immediately feeds the same tokens back to
// body's own front, and raises this expression's Gesture event.
//
// Iter's compiled network never emits an upward completion — by
// design, an iteration never "finishes" at the network level; the
// enclosing composition decides when to stop it, via Recognizer.
// RemoveTokens or a Choice that out-competes it. A consequence
// documented rather than silently worked around: Iter
// composed as the left child of a Sequence will stall that Sequence
// forever, since Sequence waits for a completion that Iter never
// produces. A Parallel with an Iter operand likewise never completes.
// Put Iter as a Choice operand, or drive it directly from a
// Recognizer, instead.
func Iter(body Expression) Expression {
	return &iterExpr{body: body}
}

func (e *iterExpr) compile(sensor Sensor) Network {
	body := e.body.compile(sensor)

	it := &iterNetwork{body: body}
	it.front = body.Front
	it.children = []Network{body}

	body.OnCompletion(func(ts []Token) {
		_ = body.AddTokens(ts...)
		e.gesture.raise()
	})

	// it.completion is deliberately never Emit()-ed: Iter's own
	// completion is silent. A caller subscribing to it via
	// OnCompletion (e.g. a curious parent combinator) will simply
	// never be called, which is the documented behavior above, not a
	// missing wire-up.
	return it
}

func (e *iterExpr) Compile(sensor Sensor) *Recognizer {
	return compileRoot(e.compile, &e.gesture, sensor)
}

// iterNetwork is Iter's compiled form. Front equals the body's front.
type iterNetwork struct {
	operatorNetwork
	body Network
}
