package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSONWritesRequestID(t *testing.T) {
	var buf bytes.Buffer
	output = &buf
	t.Cleanup(func() {
		SetNopLogger()
	})

	require.NoError(t, Init("info", true))

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	With(String("user_id", "7")).Info(ctx, "hello")
	Debug(ctx, "filtered out")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "7", entry["user_id"])
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	err := Init("loud", false)
	require.Error(t, err)
}
