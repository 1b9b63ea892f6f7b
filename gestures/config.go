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

import "gopkg.in/yaml.v2"

// Config is process-level operational configuration: where to find a
// broker, where to listen, which cron schedules to run and where to
// record history. It plays the role
// Comcast-sheens/sio's *Conf structs (CrewConf and friends) play for
// a Crew — plain Go structs decoded with gopkg.in/yaml.v2, as
// distinct from Source's use of jsccast/yaml to decode gesture
// expression *data*.
type Config struct {
	// MQTTBroker is the broker URL for sensor.MQTT, e.g.
	// "tcp://localhost:1883".
	MQTTBroker string `yaml:"mqttBroker,omitempty"`
	MQTTTopics []string `yaml:"mqttTopics,omitempty"`

	// WSListenAddr is the listen address for the websocket bridge a
	// host exposes over sensor.WS.
	WSListenAddr string `yaml:"wsListenAddr,omitempty"`

	// Schedules names cron expressions a host wants sensor.Timer to
	// treat as Features at startup, keyed by a human-readable label.
	Schedules map[string]string `yaml:"schedules,omitempty"`

	// HistoryPath is the file a history.BoltSink or
	// history.SQLiteSink should open.
	HistoryPath string `yaml:"historyPath,omitempty"`
}

// LoadConfig decodes a Config from YAML bytes.
func LoadConfig(bs []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(bs, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Marshal encodes the Config back to YAML, for round-tripping or
// emitting a default config file.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
