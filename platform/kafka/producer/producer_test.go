package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/you-humble/shape-shop/platform/kafka"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}

func TestProducerSend(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != "payload" {
			return errors.New("unexpected payload")
		}
		return nil
	})
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducer(sp, "cart.checkout.completed", nopLogger{})

	require.NoError(t, p.Send(context.Background(), []byte("1"), []byte("payload")))
	require.ErrorIs(t, p.Send(context.Background(), []byte("1"), []byte("payload")), sarama.ErrOutOfBrokers)
	require.NoError(t, sp.Close())
}

func TestProducerSendPropagatesRequestID(t *testing.T) {
	t.Parallel()

	var got *sarama.ProducerMessage
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		got = msg
		return nil
	})

	p := NewProducer(sp, "cart.checkout.completed", nopLogger{})
	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-42")

	require.NoError(t, p.Send(ctx, []byte("1"), []byte("payload")))
	require.NoError(t, sp.Close())

	require.NotNil(t, got)
	require.Len(t, got.Headers, 1)
	assert.Equal(t, kafka.HeaderRequestID, string(got.Headers[0].Key))
	assert.Equal(t, "req-42", string(got.Headers[0].Value))
}

func TestProducerSendCanceled(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, nil)
	p := NewProducer(sp, "cart.checkout.completed", nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Send(ctx, []byte("1"), []byte("payload")), context.Canceled)
	require.NoError(t, sp.Close())
}
