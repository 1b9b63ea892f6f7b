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

// choiceExpr is the Choice(left, right) variant: first branch to
// recognize wins.
type choiceExpr struct {
	baseExpr
	left, right Expression
}

// Choice builds an expression recognizing whichever of left or right
// completes first for a given token; the loser's partial progress for
// that token is cancelled.
func Choice(left, right Expression) Expression {
	return &choiceExpr{left: left, right: right}
}

func (e *choiceExpr) compile(sensor Sensor) Network {
	l := e.left.compile(sensor)
	r := e.right.compile(sensor)

	c := &choiceNetwork{left: l, right: r}
	c.front = unionFront(l, r)
	c.children = []Network{l, r}

	l.OnCompletion(func(ts []Token) {
		r.RemoveTokens(ts...)
		c.completion.Emit(ts)
	})
	r.OnCompletion(func(ts []Token) {
		l.RemoveTokens(ts...)
		c.completion.Emit(ts)
	})
	c.OnCompletion(func(ts []Token) { e.gesture.raise() })

	return c
}

func (e *choiceExpr) Compile(sensor Sensor) *Recognizer {
	return compileRoot(e.compile, &e.gesture, sensor)
}

// choiceNetwork is Choice's compiled form. Front is the union of both
// branches' fronts, exactly as for Parallel; the two combinators
// differ only in what happens on completion.
type choiceNetwork struct {
	operatorNetwork
	left, right Network
}
