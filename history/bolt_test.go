package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Comcast/gesturenet/history"
)

func TestBoltSinkRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.db")

	sink, err := history.OpenBoltSink(path)
	require.NoError(t, err)
	defer sink.Close()

	base := time.Now()
	require.NoError(t, sink.Record(ctx, history.Event{Gesture: "tap", At: base}))
	require.NoError(t, sink.Record(ctx, history.Event{Gesture: "swipe", At: base.Add(time.Millisecond)}))
	require.NoError(t, sink.Record(ctx, history.Event{Gesture: "hold", At: base.Add(2 * time.Millisecond)}))

	recent, err := sink.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "hold", recent[0].Gesture)
	assert.Equal(t, "swipe", recent[1].Gesture)
}

func TestBoltSinkRecordFillsInMissingTimestamp(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.db")

	sink, err := history.OpenBoltSink(path)
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, sink.Record(ctx, history.Event{Gesture: "tap"}))

	recent, err := sink.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.False(t, recent[0].At.IsZero())
}

func TestBoltSinkPreservesPayload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.db")

	sink, err := history.OpenBoltSink(path)
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, sink.Record(ctx, history.Event{
		Gesture: "tap",
		Payload: map[string]interface{}{"x": 1.0, "y": 2.0},
	}))

	recent, err := sink.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, map[string]interface{}{"x": 1.0, "y": 2.0}, recent[0].Payload)
}
