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


// Package core provides the gesture-recognition engine: a small
// combinator algebra over sensor features, compiled into an
// executable token-flow graph.
//
// The primary type is Expression, and the primary method is Compile.
// An Expression is one of five variants: a Ground term (one sensor
// feature plus an optional predicate), or a Sequence, Parallel,
// Choice, or Iter built from sub-expressions. Compiling an Expression
// against a Sensor produces a Recognizer: a live network of Tokens
// flowing between Ground nodes, re-armed automatically every time a
// front sub-gesture completes.
//
// A Token carries no payload. It is a thread of expectation: created
// when the network is armed or a sub-gesture completes, and retired
// when a combinator consumes it (Parallel pairing, Choice's losing
// branch) or a Ground node delivers it upward as part of a
// completion. Iter feeds its body's completed tokens back into the
// body, so they stay live.
//
// Ground nodes are the only nodes that talk to a Sensor. A Ground
// node holds a live subscription exactly when it holds at least one
// token; everything else is wiring between Ground nodes' completion
// signals.
//
// Compiling an Expression is pure and repeatable: the same Expression
// value can be compiled any number of times, yielding independent
// Recognizers with independent Tokens and subscriptions.
//
// See https://github.com/Comcast/sheens for the message-processing
// engine this package's combinator style is descended from.
package core
