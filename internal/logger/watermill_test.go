package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter(t *testing.T) (watermill.LoggerAdapter, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	l := NewLogger("feed")
	l.Logger = l.Output(&buf)
	return NewWatermillAdapter(l), &buf
}

func TestWatermillAdapter_ErrorCarriesFields(t *testing.T) {
	adapter, buf := newBufferedAdapter(t)

	adapter.Error("publish failed", errors.New("closed"), watermill.LogFields{"topic": "articles"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "closed", entry["error"])
	assert.Equal(t, "articles", entry["topic"])
	assert.Equal(t, "watermill", entry["component"])
	assert.Equal(t, "publish failed", entry["message"])
}

func TestWatermillAdapter_WithKeepsFields(t *testing.T) {
	adapter, buf := newBufferedAdapter(t)

	adapter.With(watermill.LogFields{"subscriber": "watch-7"}).Info("subscribed", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "watch-7", entry["subscriber"])
}

func TestWatermillAdapter_DebugWithoutFields(t *testing.T) {
	adapter, buf := newBufferedAdapter(t)

	adapter.Debug("tick", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
}
