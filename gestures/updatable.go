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

package gestures

import (
	"sync/atomic"
	"unsafe"

	"github.com/Comcast/gesturenet/core"
)

// UpdatableSource holds a Source that can be swapped out at any time,
// the same atomic-pointer-swap trick Comcast-sheens/core's
// UpdatableSpec used to let a Spec be replaced without disturbing
// whatever was holding a reference to the old one.
//
// A gesture network already compiled from the old Source keeps
// running unaffected; UpdatableSource only changes what the *next*
// Build/Compile sees. Swapping in a new Source is not itself enough
// to make a running Recognizer pick it up — a host that wants live
// reload recompiles a fresh Recognizer from the new Source and
// migrates (or discards) the old one's in-flight tokens, since a
// Network has no API for grafting a new expression onto a live graph
// of held tokens.
type UpdatableSource struct {
	src unsafe.Pointer // *Source
}

// NewUpdatableSource makes one with the given initial Source, which
// can be replaced later via Set.
func NewUpdatableSource(src *Source) *UpdatableSource {
	return &UpdatableSource{src: unsafe.Pointer(src)}
}

// Set atomically replaces the underlying Source.
func (u *UpdatableSource) Set(src *Source) {
	atomic.StorePointer(&u.src, unsafe.Pointer(src))
}

// Get returns the currently-held Source.
func (u *UpdatableSource) Get() *Source {
	return (*Source)(atomic.LoadPointer(&u.src))
}

// Build compiles the currently-held Source, equivalent to
// Build(u.Get()) but safe to call concurrently with Set.
func (u *UpdatableSource) Build() (core.Expression, error) {
	return Build(u.Get())
}
