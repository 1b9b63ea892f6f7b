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

// seqExpr is the Sequence(left, right) variant: "left, then right".
type seqExpr struct {
	baseExpr
	left, right Expression
}

// Seq builds an expression recognizing left followed by right: the
// tokens of each completion of left are added to right, and the
// combined gesture is recognized only once right, too, completes.
//
// Warning: if left never completes upward — e.g. left is an Iter,
// which by design never emits a completion — this
// Sequence will stall forever. This is documented behavior, not a bug;
// see core/iter.go.
func Seq(left, right Expression) Expression {
	return &seqExpr{left: left, right: right}
}

func (e *seqExpr) compile(sensor Sensor) Network {
	l := e.left.compile(sensor)
	r := e.right.compile(sensor)

	s := &seqNetwork{left: l, right: r}
	s.front = l.Front
	s.children = []Network{l, r}

	l.OnCompletion(func(ts []Token) {
		_ = r.AddTokens(ts...)
	})
	r.OnCompletion(func(ts []Token) {
		s.completion.Emit(ts)
	})
	s.OnCompletion(func(ts []Token) { e.gesture.raise() })

	return s
}

func (e *seqExpr) Compile(sensor Sensor) *Recognizer {
	return compileRoot(e.compile, &e.gesture, sensor)
}

// seqNetwork is Sequence's compiled form. Front equals the left
// side's front; AddTokens and RemoveTokens use
// operatorNetwork's defaults.
type seqNetwork struct {
	operatorNetwork
	left, right Network
}
