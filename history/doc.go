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

// Package history persists fired gesture completions, playing the
// durability role Comcast-sheens/sio's JSONStore plays for crew
// state: something a host attaches to a Recognizer's completion
// fanout so a record survives process restarts. Two Sinks are
// provided, storing the same Event shape on top of different
// third-party backends.
package history
