package gestures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/gestures"
)

func TestUpdatableSourceGetSet(t *testing.T) {
	first := &gestures.Source{Name: "tap", Root: &gestures.Node{Feature: "tap"}}
	u := gestures.NewUpdatableSource(first)
	assert.Same(t, first, u.Get())

	second := &gestures.Source{Name: "hold", Root: &gestures.Node{Feature: "hold"}}
	u.Set(second)
	assert.Same(t, second, u.Get())
}

func TestUpdatableSourceBuildUsesCurrentValue(t *testing.T) {
	u := gestures.NewUpdatableSource(&gestures.Source{
		Name: "tap",
		Root: &gestures.Node{Feature: "tap"},
	})
	expr, err := u.Build()
	require.NoError(t, err)
	assert.NotNil(t, expr)

	u.Set(&gestures.Source{Name: "broken"})
	_, err = u.Build()
	assert.Error(t, err)
}
