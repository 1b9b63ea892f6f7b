package docgen_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/docgen"
	"github.com/Comcast/gesturenet/gestures"
)

func TestRenderSourceHTMLGolden(t *testing.T) {
	var buf bytes.Buffer
	err := docgen.RenderSourceHTML(&gestures.Source{
		Name: "tap",
		Root: &gestures.Node{Feature: "tap"},
	}, &buf)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "tap", buf.Bytes())
}
