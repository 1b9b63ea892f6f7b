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

// Network is the executable, compiled form of an Expression. A
// Network routes Tokens and emits completions; it owns its child
// Networks exclusively.
type Network interface {
	// Front returns the Ground-term nodes currently eligible to
	// accept fresh tokens.  It is a static, structural property
	// fixed at compile time, not a function of the tokens the
	// network currently holds.
	Front() []*GroundNetwork

	// AddTokens injects tokens at the front.
	AddTokens(ts ...Token) error

	// RemoveTokens withdraws tokens from the entire sub-network.
	// Idempotent: removing a token that isn't held is a no-op.
	RemoveTokens(ts ...Token)

	// OnCompletion subscribes fn to this network's completion
	// signal.
	OnCompletion(fn func(ts []Token))

	// Nodes returns every Ground-term descendant node, not just the
	// ones currently in Front(). Used for diagnostics and for
	// verifying the root-liveness and subscription-economy
	// properties; the engine itself
	// never needs the full set, only Front().
	Nodes() []*GroundNetwork
}

// operatorNetwork is the shared scaffold common to every non-Ground
// combinator. Sequence, Parallel, Choice and Iter embed it and
// override whatever they need beyond the defaults; front is supplied
// as a closure rather than an overridden method, since Go has no
// subclassing to hang a per-combinator Front() override from.
type operatorNetwork struct {
	front      func() []*GroundNetwork
	children   []Network
	completion completionFanout
}

func (o *operatorNetwork) Front() []*GroundNetwork {
	return o.front()
}

// AddTokens forwards the entire batch to every node in Front().
func (o *operatorNetwork) AddTokens(ts ...Token) error {
	var firstErr error
	for _, g := range o.Front() {
		if err := g.AddTokens(ts...); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RemoveTokens forwards to every direct child, not just the front,
// because a token may be waiting at any depth.
func (o *operatorNetwork) RemoveTokens(ts ...Token) {
	for _, c := range o.children {
		c.RemoveTokens(ts...)
	}
}

func (o *operatorNetwork) OnCompletion(fn func(ts []Token)) {
	o.completion.Subscribe(fn)
}

// Nodes concatenates every child's Nodes(), recursively reaching
// every Ground-term node in the sub-network regardless of depth.
func (o *operatorNetwork) Nodes() []*GroundNetwork {
	var out []*GroundNetwork
	for _, c := range o.children {
		out = append(out, c.Nodes()...)
	}
	return out
}

// unionFront concatenates the fronts of two child networks, for
// Parallel and Choice, both of which accept tokens at either branch.
func unionFront(l, r Network) func() []*GroundNetwork {
	return func() []*GroundNetwork {
		lf, rf := l.Front(), r.Front()
		out := make([]*GroundNetwork, 0, len(lf)+len(rf))
		out = append(out, lf...)
		out = append(out, rf...)
		return out
	}
}
