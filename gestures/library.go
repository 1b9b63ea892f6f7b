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
	"sync"

	"github.com/Comcast/gesturenet/core"
)

// Library is an in-memory registry of named Sources, playing the role
// Comcast-sheens/sio's Crew.Machines map plays for Machines: a
// mutex-guarded map a host process uses to look gestures up by name
// rather than threading Source values through every call site.
type Library struct {
	mu      sync.RWMutex
	sources map[string]*Source
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{sources: make(map[string]*Source, 8)}
}

// Set registers (or replaces) src under its own Name.
func (l *Library) Set(src *Source) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[src.Name] = src
}

// Get returns the Source registered under name, and whether one was
// found. The returned Source is a copy: callers can't mutate the
// Library's entry through it.
func (l *Library) Get(name string) (*Source, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	src, have := l.sources[name]
	if !have {
		return nil, false
	}
	return src.Copy(), true
}

// Delete removes the Source registered under name, if any.
func (l *Library) Delete(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sources, name)
}

// Names returns every currently-registered Source name.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.sources))
	for name := range l.sources {
		names = append(names, name)
	}
	return names
}

// Build looks up name and compiles it via Build, in one call.
func (l *Library) Build(name string) (core.Expression, error) {
	src, have := l.Get(name)
	if !have {
		return nil, &NotFoundError{Name: name}
	}
	return Build(src)
}
