package gestures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/gestures"
)

func TestBuildGroundTerm(t *testing.T) {
	expr, err := gestures.Build(&gestures.Source{
		Name: "tap",
		Root: &gestures.Node{Feature: "tap"},
	})
	require.NoError(t, err)
	assert.NotNil(t, expr)
}

func TestBuildGroundTermWithPredicate(t *testing.T) {
	lt := 10.0
	expr, err := gestures.Build(&gestures.Source{
		Name: "slow-tap",
		Root: &gestures.Node{
			Feature:   "tap",
			Predicate: &gestures.PredicateSource{Field: "duration", LT: &lt},
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, expr)
}

func TestBuildSequenceOfThreeChildren(t *testing.T) {
	expr, err := gestures.Build(&gestures.Source{
		Name: "three-step",
		Root: &gestures.Node{
			Seq: []*gestures.Node{
				{Feature: "a"},
				{Feature: "b"},
				{Feature: "c"},
			},
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, expr)
}

func TestBuildParallelAndChoiceAndIter(t *testing.T) {
	expr, err := gestures.Build(&gestures.Source{
		Name: "combo",
		Root: &gestures.Node{
			Iter: &gestures.Node{
				Choice: []*gestures.Node{
					{Feature: "a"},
					{Par: []*gestures.Node{
						{Feature: "b"},
						{Feature: "c"},
					}},
				},
			},
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, expr)
}

func TestBuildRejectsNilRoot(t *testing.T) {
	_, err := gestures.Build(&gestures.Source{Name: "empty"})
	assert.Error(t, err)
}

func TestBuildRejectsAmbiguousNode(t *testing.T) {
	_, err := gestures.Build(&gestures.Source{
		Name: "ambiguous",
		Root: &gestures.Node{
			Feature: "a",
			Seq:     []*gestures.Node{{Feature: "b"}, {Feature: "c"}},
		},
	})
	assert.Error(t, err)
}

func TestBuildRejectsEmptyNode(t *testing.T) {
	_, err := gestures.Build(&gestures.Source{
		Name: "empty-node",
		Root: &gestures.Node{},
	})
	assert.Error(t, err)
}

func TestBuildRejectsShortFold(t *testing.T) {
	_, err := gestures.Build(&gestures.Source{
		Name: "short-seq",
		Root: &gestures.Node{
			Seq: []*gestures.Node{{Feature: "a"}},
		},
	})
	assert.Error(t, err)
}

func TestBuildRejectsMultipleInequalityOperators(t *testing.T) {
	lt, gt := 5.0, 1.0
	_, err := gestures.Build(&gestures.Source{
		Name: "conflicting",
		Root: &gestures.Node{
			Feature:   "a",
			Predicate: &gestures.PredicateSource{Field: "x", LT: &lt, GT: &gt},
		},
	})
	assert.Error(t, err)
}

func TestBuildRejectsConflictingPredicateKinds(t *testing.T) {
	lt := 5.0
	_, err := gestures.Build(&gestures.Source{
		Name: "conflicting-kinds",
		Root: &gestures.Node{
			Feature: "a",
			Predicate: &gestures.PredicateSource{
				Pattern: map[string]interface{}{"x": 1},
				Field:   "x",
				LT:      &lt,
			},
		},
	})
	assert.Error(t, err)
}

func TestBuildPropagatesScriptCompileError(t *testing.T) {
	_, err := gestures.Build(&gestures.Source{
		Name: "bad-script",
		Root: &gestures.Node{
			Feature:   "a",
			Predicate: &gestures.PredicateSource{Script: "("},
		},
	})
	assert.Error(t, err)
}
