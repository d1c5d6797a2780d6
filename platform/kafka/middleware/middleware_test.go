package middleware

import (
	"context"
	"errors"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/you-humble/shape-shop/platform/kafka"
)

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(_ context.Context, msg string, _ ...zap.Field) {
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Error(_ context.Context, msg string, _ ...zap.Field) {
	l.errors = append(l.errors, msg)
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	log := &recordingLogger{}
	h := Recovery(log)(func(context.Context, kafka.Message) error {
		panic("boom")
	})

	err := h(context.Background(), kafka.Message{Topic: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, []string{"panic in kafka handler"}, log.errors)
}

func TestLoggingPassesError(t *testing.T) {
	t.Parallel()

	log := &recordingLogger{}
	want := errors.New("decode")
	h := Logging(log)(func(context.Context, kafka.Message) error { return want })

	assert.ErrorIs(t, h(context.Background(), kafka.Message{Topic: "t"}), want)
	assert.Len(t, log.infos, 1)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var got string
	h := RequestID()(func(ctx context.Context, _ kafka.Message) error {
		got = chimw.GetReqID(ctx)
		return nil
	})

	require.NoError(t, h(context.Background(), kafka.Message{
		Headers: map[string][]byte{kafka.HeaderRequestID: []byte("req-7")},
	}))
	assert.Equal(t, "req-7", got)

	got = "unset"
	require.NoError(t, h(context.Background(), kafka.Message{}))
	assert.Empty(t, got)
}
