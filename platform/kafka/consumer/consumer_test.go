package consumer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/shape-shop/platform/kafka"
)

type scriptedGroup struct {
	sarama.ConsumerGroup

	calls   atomic.Int32
	results []error
	// after the script runs out, Consume cancels through this func
	done func()
}

func (g *scriptedGroup) Consume(ctx context.Context, _ []string, _ sarama.ConsumerGroupHandler) error {
	n := int(g.calls.Add(1)) - 1
	if n < len(g.results) {
		return g.results[n]
	}
	g.done()
	<-ctx.Done()
	return nil
}

func newTestConsumer(group sarama.ConsumerGroup) *consumer {
	c := NewConsumer(group, []string{"cart.checkout.completed"}, nopLogger{})
	c.minBackoff = time.Millisecond
	c.maxBackoff = time.Millisecond
	c.maxRetries = 2
	return c
}

func noopHandler(context.Context, kafka.Message) error { return nil }

func TestConsumeRetriesTransientErrors(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group := &scriptedGroup{
		results: []error{sarama.ErrOutOfBrokers, nil, sarama.ErrOutOfBrokers},
		done:    cancel,
	}

	require.NoError(t, newTestConsumer(group).Consume(ctx, noopHandler))
	assert.Equal(t, int32(4), group.calls.Load())
}

func TestConsumeGivesUpAfterRetries(t *testing.T) {
	t.Parallel()

	group := &scriptedGroup{
		results: []error{sarama.ErrOutOfBrokers, sarama.ErrOutOfBrokers, sarama.ErrOutOfBrokers},
		done:    func() {},
	}

	err := newTestConsumer(group).Consume(context.Background(), noopHandler)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Equal(t, int32(3), group.calls.Load())
}

func TestConsumeStopsOnClosedGroup(t *testing.T) {
	t.Parallel()

	group := &scriptedGroup{
		results: []error{sarama.ErrClosedConsumerGroup},
		done:    func() {},
	}

	require.NoError(t, newTestConsumer(group).Consume(context.Background(), noopHandler))
	assert.Equal(t, int32(1), group.calls.Load())
}
