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

import "github.com/google/uuid"

// Token is an opaque "thread of expectation" flowing through a
// gesture network.  A Token carries no payload; two Tokens compare
// equal (==) only if one is a copy of the other, since every NewToken
// call yields a distinct id.
//
// Tokens are backed by a random v4 UUID rather than, say, an
// atomically-incremented counter.  Either scheme gives fresh tokens
// that are distinct within a network's lifetime; a UUID also stays
// distinct across independently-compiled
// Recognizers, which makes Tokens safe to log and correlate across
// Recognizer instances.
type Token struct {
	id uuid.UUID
}

// NewToken creates a fresh Token, globally distinct from every other
// Token ever created.
func NewToken() Token {
	return Token{id: uuid.New()}
}

// String returns a short identifier, suitable for logging.
func (t Token) String() string {
	return t.id.String()
}
