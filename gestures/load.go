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
	"fmt"

	"github.com/jsccast/yaml"
)

// LoadSource decodes a Source from YAML (or JSON, which is a YAML
// subset) bytes, the same github.com/jsccast/yaml library
// Comcast-sheens/sio's Crew uses to decode a spec file into a
// sio.Spec. Gesture expression data travels over this library rather
// than gopkg.in/yaml.v2, which is reserved for Config.
func LoadSource(bs []byte) (*Source, error) {
	var src Source
	if err := yaml.Unmarshal(bs, &src); err != nil {
		return nil, fmt.Errorf("gestures: bad source: %w", err)
	}
	if src.Name == "" {
		return nil, fmt.Errorf("gestures: source has no name")
	}
	return &src, nil
}
