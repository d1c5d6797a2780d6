package producer

import (
	"context"

	"github.com/IBM/sarama"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/you-humble/shape-shop/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type producer struct {
	syncProducer sarama.SyncProducer
	topic        string
	logger       Logger
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger) *producer {
	return &producer{
		syncProducer: syncProducer,
		topic:        topic,
		logger:       logger,
	}
}

// Send publishes one message synchronously. The request id found in ctx
// travels as the HeaderRequestID header.
func (p *producer) Send(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}
	if reqID := chimw.GetReqID(ctx); reqID != "" {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{
			Key:   []byte(kafka.HeaderRequestID),
			Value: []byte(reqID),
		})
	}

	partition, offset, err := p.syncProducer.SendMessage(msg)
	if err != nil {
		p.logger.Error(ctx, "Failed to send message",
			zap.String("topic", p.topic),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info(ctx, "Message sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("key", string(key)),
		zap.Int("value_size", len(value)),
	)

	return nil
}

type nopProducer struct{}

// NewNopProducer drops every message; used when no brokers are configured.
func NewNopProducer() *nopProducer { return &nopProducer{} }

func (nopProducer) Send(context.Context, []byte, []byte) error { return nil }
