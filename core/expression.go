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

// Expression is an immutable algebraic description of a gesture:
// a Ground term, or a Sequence, Parallel, Choice or
// Iter built from sub-expressions.
//
// Expression values are reusable: Compile may be called any number of
// times and yields an independent Recognizer each time.
//
// compile is the internal compilation entry point: it
// produces a Network whose completion is observable to the *parent*
// combinator, and is used when embedding an Expression inside
// Sequence, Parallel, Choice or Iter. It is unexported, so only the
// five variants defined in this package can implement Expression.
type Expression interface {
	compile(sensor Sensor) Network

	// Compile is the root compilation entry point: internal compile,
	// wrapped with the auto-refeed policy that keeps the returned
	// Recognizer continuously armed.
	Compile(sensor Sensor) *Recognizer

	// Gesture returns the broadcast that fires every time this
	// expression's compiled root network recognizes an instance of
	// the gesture.
	Gesture() *Gesture
}

// baseExpr is embedded by each of the five Expression variants to
// supply the Gesture broadcast without repeating it five times.
type baseExpr struct {
	gesture Gesture
}

func (b *baseExpr) Gesture() *Gesture {
	return &b.gesture
}

// Recognizer is a compiled, armed Expression: a live Network plus the
// wiring that keeps it armed.
type Recognizer struct {
	network Network
	gesture *Gesture
}

// Gesture returns the broadcast that fires on every recognized
// instance.
func (r *Recognizer) Gesture() *Gesture {
	return r.gesture
}

// RemoveTokens withdraws the given tokens from anywhere in the
// network. The only cancellation primitive provides.
func (r *Recognizer) RemoveTokens(ts ...Token) {
	r.network.RemoveTokens(ts...)
}

// AllTokens returns a snapshot of every token currently held anywhere
// in the network, across every Ground-term node regardless of depth.
// Exposed for diagnostics and for verifying the root-liveness
// property; the engine itself never needs this.
func (r *Recognizer) AllTokens() []Token {
	var out []Token
	for _, g := range r.network.Nodes() {
		out = append(out, g.HeldTokens()...)
	}
	return out
}

// Nodes returns every Ground-term node in the compiled network.
func (r *Recognizer) Nodes() []*GroundNetwork {
	return r.network.Nodes()
}

// compileRoot performs the root-wrapping that keeps a Recognizer
// continuously armed: it internally compiles the expression,
// subscribes every current front node's completion to a handler that
// injects one fresh token at the root, then injects one initial
// token.
//
// Every Expression variant's exported Compile method is a one-line
// call to this function; it is not itself exported because its
// signature (taking the internal compile function and gesture
// pointer explicitly) is an implementation detail shared across the
// five variants, not part of the public API.
func compileRoot(internalCompile func(Sensor) Network, gesture *Gesture, sensor Sensor) *Recognizer {
	net := internalCompile(sensor)

	for _, g := range net.Front() {
		g.OnCompletion(func(ts []Token) {
			// Error deliberately ignored: a failure here leaves the
			// ground node's held set unmodified and the network
			// remains consistent; there is no caller to report to
			// during an internal re-arm.
			_ = net.AddTokens(NewToken())
		})
	}

	_ = net.AddTokens(NewToken())

	return &Recognizer{network: net, gesture: gesture}
}
