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

// DebugAssertParallel enables a debug-only assertion in parNetwork: it
// panics if a Parallel combinator observes the same token complete
// twice on the same branch before the other branch has completed it.
// Off by default; tests that want to prove a branch never
// double-delivers can turn it on.
var DebugAssertParallel = false
