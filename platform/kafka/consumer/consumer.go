package consumer

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/you-humble/shape-shop/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type consumer struct {
	group       sarama.ConsumerGroup
	topics      []string
	logger      Logger
	middlewares []kafka.Middleware

	minBackoff time.Duration
	maxBackoff time.Duration
	maxRetries uint64
}

func NewConsumer(group sarama.ConsumerGroup, topics []string, logger Logger, middlewares ...kafka.Middleware) *consumer {
	return &consumer{
		group:       group,
		topics:      topics,
		logger:      logger,
		middlewares: middlewares,
		minBackoff:  500 * time.Millisecond,
		maxBackoff:  30 * time.Second,
		maxRetries:  10,
	}
}

// Consume blocks until ctx is done or the group is closed. The group is
// rejoined after every rebalance; a failed session is retried with capped
// exponential backoff before the error is returned.
func (c *consumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	gh := NewGroupHandler(handler, c.logger, c.middlewares...)

	for {
		err := retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
			err := c.group.Consume(ctx, c.topics, gh)
			if err == nil || errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return err
			}

			c.logger.Error(ctx, "kafka consume", zap.Strings("topics", c.topics), zap.Error(err))
			return retry.RetryableError(err)
		})

		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup), ctx.Err() != nil:
			return nil
		case err != nil:
			return err
		}

		c.logger.Info(ctx, "kafka consumer group rebalancing", zap.Strings("topics", c.topics))
	}
}

func (c *consumer) backoff() retry.Backoff {
	b := retry.NewExponential(c.minBackoff)
	b = retry.WithCappedDuration(c.maxBackoff, b)
	return retry.WithMaxRetries(c.maxRetries, b)
}
