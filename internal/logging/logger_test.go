package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json", Output: &buf})

	logger.Zerolog().Info().Msg("dropped")
	logger.Zerolog().Error().Err(errors.New("boom")).Msg("insert venue failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "fyyur", entry["service"])
	assert.Equal(t, "insert venue failed", entry["message"])
}

func TestNewDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "loud", Output: &buf})

	logger.Zerolog().Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Zerolog().Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })
	SetGlobalLogger(New(Config{Level: "info", Output: &buf}))

	ctx := WithRequestID(context.Background(), "req-123")
	WithContext(ctx).Info().Msg("venue listed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "req-123", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}
