package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/you-humble/shape-shop/platform/kafka"
)

type groupHandler struct {
	handler kafka.MessageHandler
	logger  Logger

	retryBackoff time.Duration
	retryMax     time.Duration
	retries      uint64
}

// NewGroupHandler wraps handler with middlewares; the first middleware runs
// outermost.
func NewGroupHandler(handler kafka.MessageHandler, logger Logger, middlewares ...kafka.Middleware) *groupHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return &groupHandler{
		handler:      handler,
		logger:       logger,
		retryBackoff: 100 * time.Millisecond,
		retryMax:     5 * time.Second,
		retries:      5,
	}
}

func (g *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (g *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim marks a message only after the handler accepted it. A failing
// message is retried in place; once retries run out the claim stops without
// marking it, which ends the session so the group rejoins from the last
// committed offset and the message is delivered again.
func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for {
		select {
		case m, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			if err := g.handle(ctx, m); err != nil {
				if ctx.Err() != nil {
					return nil
				}

				g.logger.Error(ctx, "kafka handler",
					zap.String("topic", m.Topic),
					zap.Int32("partition", m.Partition),
					zap.Int64("offset", m.Offset),
					zap.Error(err),
				)
				return fmt.Errorf("topic %s partition %d offset %d: %w", m.Topic, m.Partition, m.Offset, err)
			}

			session.MarkMessage(m, "")

		case <-ctx.Done():
			return nil
		}
	}
}

func (g *groupHandler) handle(ctx context.Context, m *sarama.ConsumerMessage) error {
	msg := kafka.Message{
		Headers:   headers(m.Headers),
		Timestamp: m.Timestamp,
		Key:       m.Key,
		Value:     m.Value,
		Topic:     m.Topic,
		Partition: m.Partition,
		Offset:    m.Offset,
	}

	b := retry.NewExponential(g.retryBackoff)
	b = retry.WithCappedDuration(g.retryMax, b)
	b = retry.WithMaxRetries(g.retries, b)

	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := g.handler(ctx, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

func headers(hs []*sarama.RecordHeader) map[string][]byte {
	out := make(map[string][]byte, len(hs))
	for _, h := range hs {
		if h != nil && h.Key != nil {
			out[string(h.Key)] = h.Value
		}
	}
	return out
}
