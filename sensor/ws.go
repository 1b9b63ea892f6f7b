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

package sensor

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Comcast/gesturenet/core"
)

// featureField is the JSON object key a WS message uses to say which
// Feature it belongs to, since a single websocket connection carries
// one undifferentiated message stream rather than MQTT's per-topic
// framing.
const featureField = "feature"

// WS is a core.Sensor that reads JSON objects, one per websocket
// message, off a single websocket connection. Each decoded object must carry a
// "feature" string field naming the Feature it reports; the object
// itself (feature field included) is the Event payload.
//
// Unlike MQTT and Timer, there is exactly one read loop for the one
// underlying connection: demultiplexing by Feature happens in Go,
// after decode, not by asking the transport to subscribe/unsubscribe.
// Subscribe and Cancel therefore only ever touch the in-process
// handler registry; the connection itself is dialed in Dial and read
// in Run. WS never closes it: a caller of NewWS closes the
// *websocket.Conn it passed in, and Dial does not expose the
// connection it opens.
type WS struct {
	conn *websocket.Conn

	mu       sync.Mutex
	handlers map[core.Feature][]*wsSubscription
}

type wsSubscription struct {
	sensor  *WS
	feature core.Feature
	handler func(core.Event)
	live    bool
}

// Dial opens a websocket connection to url and wraps it as a WS
// sensor. Call Run to start delivering events from it.
func Dial(url string) (*WS, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return NewWS(conn), nil
}

// NewWS wraps an already-established websocket connection.
func NewWS(conn *websocket.Conn) *WS {
	return &WS{
		conn:     conn,
		handlers: make(map[core.Feature][]*wsSubscription, 8),
	}
}

// Subscribe implements core.Sensor.
func (w *WS) Subscribe(feature core.Feature, handler func(core.Event)) (core.Subscription, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	sub := &wsSubscription{sensor: w, feature: feature, handler: handler, live: true}
	w.handlers[feature] = append(w.handlers[feature], sub)
	return sub, nil
}

func (s *wsSubscription) Cancel() {
	s.sensor.mu.Lock()
	defer s.sensor.mu.Unlock()

	if !s.live {
		return
	}
	s.live = false

	subs := s.sensor.handlers[s.feature]
	for i, other := range subs {
		if other == s {
			s.sensor.handlers[s.feature] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

// Run reads messages until ctx is cancelled or the connection fails,
// dispatching each to the handlers currently registered for its
// feature field. A message missing or misusing the feature field, or
// that doesn't decode as JSON, is logged and dropped.
func (w *WS) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, raw, err := w.conn.ReadMessage()
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			continue
		}

		var msg map[string]interface{}
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("gesturenet/sensor: WS message did not decode as a JSON object: %s", err)
			continue
		}
		featureVal, have := msg[featureField]
		if !have {
			log.Printf("gesturenet/sensor: WS message missing %q field", featureField)
			continue
		}
		featureStr, is := featureVal.(string)
		if !is {
			log.Printf("gesturenet/sensor: WS message %q field is not a string", featureField)
			continue
		}

		feature := core.Feature(featureStr)
		ev := core.Event{Feature: feature, Payload: msg}

		w.mu.Lock()
		subs := append([]*wsSubscription(nil), w.handlers[feature]...)
		w.mu.Unlock()

		for _, sub := range subs {
			if sub.live {
				sub.handler(ev)
			}
		}
	}
}
