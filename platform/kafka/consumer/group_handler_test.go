package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/you-humble/shape-shop/platform/kafka"
)

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(m *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, m.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	ch chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.ch }

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}

func newClaim(n int64) *fakeClaim {
	claim := &fakeClaim{ch: make(chan *sarama.ConsumerMessage, n)}
	for off := int64(0); off < n; off++ {
		claim.ch <- &sarama.ConsumerMessage{
			Topic:     "cart.checkout.completed",
			Partition: 0,
			Offset:    off,
			Value:     []byte{byte(off)},
			Headers:   []*sarama.RecordHeader{{Key: []byte("k"), Value: []byte("v")}},
		}
	}
	close(claim.ch)
	return claim
}

func fastRetries(gh *groupHandler) *groupHandler {
	gh.retryBackoff = time.Millisecond
	gh.retryMax = time.Millisecond
	gh.retries = 2
	return gh
}

func TestConsumeClaimMarksAllHandled(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) kafka.Middleware {
		return func(next kafka.MessageHandler) kafka.MessageHandler {
			return func(ctx context.Context, msg kafka.Message) error {
				order = append(order, name)
				return next(ctx, msg)
			}
		}
	}

	handler := func(_ context.Context, msg kafka.Message) error {
		assert.Equal(t, []byte("v"), msg.Headers["k"])
		return nil
	}

	session := &fakeSession{ctx: context.Background()}
	gh := fastRetries(NewGroupHandler(handler, nopLogger{}, trace("outer"), trace("inner")))

	assert.NoError(t, gh.ConsumeClaim(session, newClaim(3)))
	assert.Equal(t, []int64{0, 1, 2}, session.marked)
	assert.Equal(t, []string{"outer", "inner"}, order[:2])
}

func TestConsumeClaimStopsAtFailedOffset(t *testing.T) {
	t.Parallel()

	errStore := errors.New("store unavailable")
	var seen []int64
	handler := func(_ context.Context, msg kafka.Message) error {
		seen = append(seen, msg.Offset)
		if msg.Offset == 1 {
			return errStore
		}
		return nil
	}

	session := &fakeSession{ctx: context.Background()}
	gh := fastRetries(NewGroupHandler(handler, nopLogger{}))

	err := gh.ConsumeClaim(session, newClaim(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	assert.Equal(t, []int64{0}, session.marked)
	assert.NotContains(t, seen, int64(2))
	// one attempt plus two retries
	assert.Equal(t, []int64{0, 1, 1, 1}, seen)
}

func TestConsumeClaimRetriesTransientFailure(t *testing.T) {
	t.Parallel()

	failures := 1
	handler := func(_ context.Context, msg kafka.Message) error {
		if msg.Offset == 1 && failures > 0 {
			failures--
			return errors.New("timeout")
		}
		return nil
	}

	session := &fakeSession{ctx: context.Background()}
	gh := fastRetries(NewGroupHandler(handler, nopLogger{}))

	assert.NoError(t, gh.ConsumeClaim(session, newClaim(3)))
	assert.Equal(t, []int64{0, 1, 2}, session.marked)
}

func TestConsumeClaimCanceledSessionMarksNothing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	handler := func(context.Context, kafka.Message) error {
		cancel()
		return errors.New("shutting down")
	}

	session := &fakeSession{ctx: ctx}
	gh := NewGroupHandler(handler, nopLogger{})

	assert.NoError(t, gh.ConsumeClaim(session, newClaim(1)))
	assert.Empty(t, session.marked)
}
