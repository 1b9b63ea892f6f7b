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

// Package predicate builds core.Predicate values from declarative
// descriptions, so that a gestures.Source loaded from YAML or JSON
// never has to embed hand-written Go closures.
//
// Three constructors are provided: Pattern, for structural matching
// against a map-shaped payload; Script, for an ECMAScript function
// body returning a boolean; and Inequality, for a single numeric
// comparison against a named field.
package predicate
