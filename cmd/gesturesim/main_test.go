package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/core"
	"github.com/Comcast/gesturenet/sensor"
)

func TestRunDeliversEachScriptedEvent(t *testing.T) {
	mock := sensor.NewMock()

	var delivered []string
	mock.Subscribe(core.Feature("down"), func(ev core.Event) {
		delivered = append(delivered, "down")
	})
	mock.Subscribe(core.Feature("up"), func(ev core.Event) {
		delivered = append(delivered, "up")
	})

	in := strings.NewReader("{\"feature\": \"down\"}\n{\"feature\": \"up\"}\n")
	require.NoError(t, run(in, mock, false))

	assert.Equal(t, []string{"down", "up"}, delivered)
}

func TestRunSkipsBlankLines(t *testing.T) {
	mock := sensor.NewMock()
	count := 0
	mock.Subscribe(core.Feature("tap"), func(ev core.Event) { count++ })

	in := strings.NewReader("\n{\"feature\": \"tap\"}\n\n")
	require.NoError(t, run(in, mock, false))
	assert.Equal(t, 1, count)
}

func TestRunReportsBadJSON(t *testing.T) {
	mock := sensor.NewMock()
	in := strings.NewReader("not json")
	err := run(in, mock, false)
	assert.Error(t, err)
}
