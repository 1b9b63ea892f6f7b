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

package history

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/Comcast/gesturenet/core"
)

var eventsBucket = []byte("events")

// BoltSink persists Events to a single bbolt file, one key-value pair
// per Event. Keys are an 8-byte big-endian nanosecond timestamp
// followed by an 8-byte disambiguating sequence number, so a bucket
// scan naturally visits Events in the order they were recorded even
// when two land in the same nanosecond.
//
// Plays the role Comcast-sheens/sio's JSONStore plays for crew
// state — a small, unglamorous persistence facility a host attaches
// directly, without a generic storage abstraction layered on top.
type BoltSink struct {
	db  *bolt.DB
	seq uint64
}

// OpenBoltSink opens (creating if necessary) a bbolt file at path and
// ensures its events bucket exists.
func OpenBoltSink(path string) (*BoltSink, error) {
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("history: open bolt: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(eventsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create bucket: %w", err)
	}
	return &BoltSink{db: db}, nil
}

// Record writes ev under a fresh, monotonically increasing key.
func (s *BoltSink) Record(ctx context.Context, ev Event) error {
	if ev.At.IsZero() {
		at, err := time.Parse(time.RFC3339Nano, core.Timestamp())
		if err != nil {
			return fmt.Errorf("history: parse timestamp: %w", err)
		}
		ev.At = at
	}
	js, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("history: marshal event: %w", err)
	}

	key := make([]byte, 16)
	binary.BigEndian.PutUint64(key[:8], uint64(ev.At.UnixNano()))
	binary.BigEndian.PutUint64(key[8:], atomic.AddUint64(&s.seq, 1))

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(eventsBucket).Put(key, js)
	})
}

// Recent returns up to limit of the most recently recorded Events,
// newest first.
func (s *BoltSink) Recent(ctx context.Context, limit int) ([]Event, error) {
	var out []Event
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(eventsBucket).Cursor()
		for k, v := c.Last(); k != nil && len(out) < limit; k, v = c.Prev() {
			var ev Event
			if err := json.Unmarshal(v, &ev); err != nil {
				return fmt.Errorf("history: unmarshal event: %w", err)
			}
			out = append(out, ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Close closes the underlying bbolt file.
func (s *BoltSink) Close() error {
	return s.db.Close()
}
