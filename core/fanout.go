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

// completionFanout is a one-producer, many-listener, fire-and-forget
// broadcast of a completion batch.  Subscribers are invoked
// synchronously, in subscription order, on whatever goroutine calls
// Emit.
//
// A plain callback list rather than a channel: a channel send/receive
// pair is a suspension point, and the engine's single-threaded,
// reentrant-by-construction propagation model forbids one anywhere in
// the completion-propagation chain.
type completionFanout struct {
	subs []func([]Token)
}

func (f *completionFanout) Subscribe(fn func([]Token)) {
	f.subs = append(f.subs, fn)
}

func (f *completionFanout) Emit(ts []Token) {
	for _, fn := range f.subs {
		fn(ts)
	}
}

// Gesture is the per-expression broadcast: fired whenever that
// expression's compiled root network recognizes an instance of the
// gesture.
type Gesture struct {
	subs []func()
}

// Subscribe registers fn to be called on every firing.
func (g *Gesture) Subscribe(fn func()) {
	g.subs = append(g.subs, fn)
}

func (g *Gesture) raise() {
	for _, fn := range g.subs {
		fn()
	}
}
