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

// parExpr is the Parallel(left, right) variant: both sides must
// finish.
type parExpr struct {
	baseExpr
	left, right Expression
}

// Par builds an expression recognizing left and right both completing
// for the same token, in either order.
func Par(left, right Expression) Expression {
	return &parExpr{left: left, right: right}
}

func (e *parExpr) compile(sensor Sensor) Network {
	l := e.left.compile(sensor)
	r := e.right.compile(sensor)

	p := &parNetwork{left: l, right: r, half: make(map[Token]parSide, 8)}
	p.front = unionFront(l, r)
	p.children = []Network{l, r}

	l.OnCompletion(func(ts []Token) { p.sideCompleted(sideLeft, ts) })
	r.OnCompletion(func(ts []Token) { p.sideCompleted(sideRight, ts) })
	p.OnCompletion(func(ts []Token) { e.gesture.raise() })

	return p
}

func (e *parExpr) Compile(sensor Sensor) *Recognizer {
	return compileRoot(e.compile, &e.gesture, sensor)
}

type parSide int

const (
	sideLeft parSide = iota
	sideRight
)

// parNetwork is Parallel's compiled form. Front is the union of both
// branches' fronts. half tracks tokens that have completed on one
// branch but not yet the other.
type parNetwork struct {
	operatorNetwork
	left, right Network
	half        map[Token]parSide
}

// sideCompleted handles a completion batch from one branch: a token
// already in half (because the *other* branch completed it first) is
// removed from half and forwarded upward; otherwise it is recorded in
// half, pending the other branch.
//
// A token should never complete twice on the same branch by
// construction, but if it did, this logic (keyed
// purely on token identity, not on which branch put it in half) would
// toggle it in and out of half rather than detect the anomaly. That
// behavior is preserved; DebugAssertParallel adds an opt-in assertion
// rather than changing it.
func (p *parNetwork) sideCompleted(side parSide, ts []Token) {
	var out []Token
	for _, t := range ts {
		if origin, in := p.half[t]; in {
			if DebugAssertParallel && origin == side {
				panic("core: parallel token re-completed by the same branch before the other branch completed it")
			}
			delete(p.half, t)
			out = append(out, t)
		} else {
			p.half[t] = side
		}
	}
	if len(out) > 0 {
		p.completion.Emit(out)
	}
}
