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

package core_test

// Quantified, general-case checks of the engine's core invariants,
// beyond the literal fixtures in scenarios_test.go.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/core"
	"github.com/Comcast/gesturenet/sensor"
)

// Invariant 1: subscription economy — has_subscription iff
// held_tokens != empty, for every ground node, at every observable
// instant.
func TestInvariantSubscriptionEconomy(t *testing.T) {
	expr := core.Seq(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)

	check := func() {
		for _, g := range rec.Nodes() {
			require.Equal(t, g.HeldCount() > 0, g.HasSubscription())
		}
	}

	check()
	publishInt(m, featA, 0)
	check()
	publishInt(m, featB, 0)
	check()
	publishInt(m, featA, 0)
	check()
}

// Invariant 3: parallel pairing — a token is emitted by L‖R exactly
// when it has been emitted by both L and R, never more than once.
func TestInvariantParallelPairing(t *testing.T) {
	expr := core.Par(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featB, 0)
	assert.Equal(t, 0, *fires)
	publishInt(m, featA, 0)
	assert.Equal(t, 1, *fires, "both sides have now completed for the same token")

	// Re-armed: confirm a single side firing twice in a row still
	// doesn't double-emit.
	publishInt(m, featA, 0)
	publishInt(m, featA, 0)
	assert.Equal(t, 1, *fires, "A alone, twice, must not pair with itself")
}

// Invariant 4: choice exclusivity — a token injected at L⊕R yields at
// most one upward completion, and the losing branch holds no residual
// token for it afterwards.
func TestInvariantChoiceExclusivity(t *testing.T) {
	expr := core.Choice(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)
	fires, _ := countGestures(rec.Gesture())

	publishInt(m, featA, 0)
	assert.Equal(t, 1, *fires)

	for _, g := range rec.Nodes() {
		if g.HasSubscription() {
			continue
		}
	}
	// The B-side ground node must hold nothing and have no
	// subscription: it was cancelled by the winning A-side.
	var bNode *core.GroundNetwork
	for _, g := range rec.Nodes() {
		// Both ground nodes exist; identify the one with no held
		// tokens and no subscription right after A won.
		if g.HeldCount() == 0 && !g.HasSubscription() {
			bNode = g
		}
	}
	require.NotNil(t, bNode, "the losing branch must have been cleared")

	publishInt(m, featB, 0)
	assert.Equal(t, 1, *fires, "no 2nd firing: B's token was withdrawn when A won")
}

// Invariant 5: Iter refeed — after k completions of X*'s body, the
// body holds exactly k+1 tokens (the initial injection plus one root
// refeed per completion, each completion's tokens being fed straight
// back into the body), and X*'s own Gesture has been raised once per
// completion. That X* emits no upward completion is checked through
// a Sequence in iter_test.go.
func TestInvariantIterRefeed(t *testing.T) {
	body := core.Ground(featA, nil)
	expr := core.Iter(body)

	m := sensor.NewMock()
	rec := expr.Compile(m)
	outerFires, _ := countGestures(rec.Gesture())
	innerFires, _ := countGestures(body.Gesture())

	const k = 5
	for i := 0; i < k; i++ {
		publishInt(m, featA, 0)
	}

	assert.Equal(t, k, *innerFires, "body completed k times")
	assert.Equal(t, k, *outerFires, "Iter's own Gesture fires once per body completion")
	// After k completions, k+1 tokens are live: the initial one plus
	// one root refeed per completion, none of them retired, since each
	// completion's tokens are fed back into the body.
	assert.Len(t, rec.AllTokens(), k+1)
}

// Invariant 6: root liveness — after root compilation, the total
// number of tokens present anywhere in the network is >= 1 at all
// times.
func TestInvariantRootLiveness(t *testing.T) {
	expr := core.Seq(core.Ground(featA, nil), core.Ground(featB, nil))
	m := sensor.NewMock()
	rec := expr.Compile(m)

	assert.GreaterOrEqual(t, len(rec.AllTokens()), 1)
	for i := 0; i < 10; i++ {
		publishInt(m, featA, 0)
		assert.GreaterOrEqual(t, len(rec.AllTokens()), 1)
		publishInt(m, featB, 0)
		assert.GreaterOrEqual(t, len(rec.AllTokens()), 1)
	}
}

// Invariant 7: idempotent removal — remove_tokens(ts); remove_tokens(ts)
// behaves the same as a single call, for any ts, including tokens
// never held.
func TestInvariantIdempotentRemoval(t *testing.T) {
	expr := core.Ground(featA, nil)
	m := sensor.NewMock()
	rec := expr.Compile(m)

	foreign := core.NewToken()
	assert.NotPanics(t, func() {
		rec.RemoveTokens(foreign)
		rec.RemoveTokens(foreign)
	})

	held := rec.AllTokens()
	require.Len(t, held, 1)
	rec.RemoveTokens(held[0])
	assert.NotPanics(t, func() { rec.RemoveTokens(held[0]) })
	assert.Empty(t, rec.AllTokens())
	assert.False(t, rec.Nodes()[0].HasSubscription())
}
