package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Comcast/gesturenet/gestures"
)

func TestCountNodes(t *testing.T) {
	root := &gestures.Node{
		Seq: []*gestures.Node{
			{Feature: "down"},
			{Choice: []*gestures.Node{
				{Feature: "up"},
				{Par: []*gestures.Node{
					{Feature: "a"},
					{Feature: "b"},
				}},
			}},
			{Iter: &gestures.Node{Feature: "c"}},
		},
	}

	stats := countNodes(root)
	assert.Equal(t, 5, stats.ground)
	assert.Equal(t, 1, stats.seq)
	assert.Equal(t, 1, stats.par)
	assert.Equal(t, 1, stats.choice)
	assert.Equal(t, 1, stats.iter)
}

func TestCountNodesNilRoot(t *testing.T) {
	stats := countNodes(nil)
	assert.Equal(t, nodeStats{}, stats)
}
