/* Copyright 2019 Comcast Cable Communications Management, LLC
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
	"encoding/json"
	"log"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Comcast/gesturenet/core"
)

// MQTT is a core.Sensor backed by an MQTT broker: a Feature is a
// topic name, and a message's JSON-decoded payload (falling back to
// the raw string if it doesn't parse as JSON) is delivered as the
// Event payload.
//
// Unlike Mock, MQTT subscribes to the broker lazily and per topic:
// the underlying paho subscription for a topic is only opened on the
// first Subscribe for that topic, and closed once the last handler
// for it cancels — mirroring the held-token-driven subscribe/cancel
// economy a GroundNetwork already enforces one layer up, so the
// broker never carries a subscription nobody in the gesture network
// is waiting on.
type MQTT struct {
	client mqtt.Client
	qos    byte

	mu       sync.Mutex
	handlers map[core.Feature][]*mqttSubscription
}

// NewMQTT wraps an already-connected paho Client. Connection
// management (broker address, credentials, TLS, reconnection) is the
// caller's concern, exactly as in cmd/sio's MQTTCouplings.Start.
func NewMQTT(client mqtt.Client, qos byte) *MQTT {
	return &MQTT{
		client:   client,
		qos:      qos,
		handlers: make(map[core.Feature][]*mqttSubscription, 8),
	}
}

type mqttSubscription struct {
	sensor  *MQTT
	feature core.Feature
	handler func(core.Event)
	live    bool
}

func (s *mqttSubscription) Cancel() {
	s.sensor.mu.Lock()
	defer s.sensor.mu.Unlock()

	if !s.live {
		return
	}
	s.live = false

	subs := s.sensor.handlers[s.feature]
	for i, other := range subs {
		if other == s {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(subs) == 0 {
		delete(s.sensor.handlers, s.feature)
		topic := string(s.feature)
		if t := s.sensor.client.Unsubscribe(topic); t.Wait() && t.Error() != nil {
			log.Printf("gesturenet/sensor: MQTT unsubscribe %q: %s", topic, t.Error())
		}
	} else {
		s.sensor.handlers[s.feature] = subs
	}
}

// Subscribe implements core.Sensor.
func (s *MQTT) Subscribe(feature core.Feature, handler func(core.Event)) (core.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &mqttSubscription{sensor: s, feature: feature, handler: handler, live: true}

	existing := s.handlers[feature]
	s.handlers[feature] = append(existing, sub)

	if len(existing) == 0 {
		topic := string(feature)
		if t := s.client.Subscribe(topic, s.qos, s.dispatch); t.Wait() && t.Error() != nil {
			s.handlers[feature] = existing
			return nil, t.Error()
		}
	}

	return sub, nil
}

// dispatch is the paho publish handler shared by every topic this
// Sensor has subscribed to: it decodes the payload and fans it out to
// every live handler currently registered for the message's topic.
func (s *MQTT) dispatch(_ mqtt.Client, msg mqtt.Message) {
	var payload interface{}
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		payload = string(msg.Payload())
	}

	feature := core.Feature(msg.Topic())
	ev := core.Event{Feature: feature, Payload: payload}

	s.mu.Lock()
	subs := append([]*mqttSubscription(nil), s.handlers[feature]...)
	s.mu.Unlock()

	for _, sub := range subs {
		if sub.live {
			sub.handler(ev)
		}
	}
}
