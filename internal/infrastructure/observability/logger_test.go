package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFromContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = original }()

	ctx := WithRequestID(context.Background(), "req-123")
	LoggerFromContext(ctx).Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "hello", entry["message"])
	assert.NotContains(t, entry, "trace_id")
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestRecordMetrics_NilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordRequestMetric(context.Background(), nil, "GET", "/health", 200, 0)
		RecordCacheHit(context.Background(), nil, "room")
		RecordCacheMiss(context.Background(), nil, "room")
	})
}
