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

package docgen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/docgen"
	"github.com/Comcast/gesturenet/gestures"
)

func TestRenderSourceDotGroundTerm(t *testing.T) {
	var buf bytes.Buffer
	err := docgen.RenderSourceDot(&gestures.Source{
		Name: "tap",
		Root: &gestures.Node{Feature: "tap"},
	}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "digraph tap {")
	assert.Contains(t, out, `feature: tap`)
	assert.Contains(t, out, "}\n")
}

func TestRenderSourceDotSequenceHasTwoNodesAndAnEdge(t *testing.T) {
	var buf bytes.Buffer
	err := docgen.RenderSourceDot(&gestures.Source{
		Name: "double tap",
		Root: &gestures.Node{
			Seq: []*gestures.Node{
				{Feature: "tap"},
				{Feature: "tap"},
			},
		},
	}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "digraph double_tap {", "non-identifier characters are sanitized")
	assert.Contains(t, out, `label="seq"`)
	assert.Equal(t, 2, strings.Count(out, "feature: tap"))
}

func TestRenderSourceDotEmptyRoot(t *testing.T) {
	var buf bytes.Buffer
	err := docgen.RenderSourceDot(&gestures.Source{Name: "empty", Root: nil}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "(empty)")
}
