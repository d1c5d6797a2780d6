package checkoutconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/platform/kafka"
	"github.com/you-humble/shape-shop/platform/logger"
)

type CheckoutCompletedDecoder interface {
	PayloadToCheckoutCompleted(data []byte) (model.CheckoutCompleted, error)
}

type PurchaseRecorder interface {
	RecordCheckout(ctx context.Context, event model.CheckoutCompleted) error
}

type checkoutConsumer struct {
	consumer kafka.Consumer
	conv     CheckoutCompletedDecoder
	svc      PurchaseRecorder
}

func NewCheckoutCompletedConsumer(
	consumer kafka.Consumer,
	conv CheckoutCompletedDecoder,
	svc PurchaseRecorder,
) *checkoutConsumer {
	return &checkoutConsumer{
		consumer: consumer,
		conv:     conv,
		svc:      svc,
	}
}

func (c *checkoutConsumer) RunCheckoutCompletedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting checkout completed consumer")

	if err := c.consumer.Consume(ctx, c.checkoutCompletedHandler); err != nil {
		logger.Error(ctx, "Consume from checkout completed topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (c *checkoutConsumer) checkoutCompletedHandler(ctx context.Context, msg kafka.Message) error {
	event, err := c.conv.PayloadToCheckoutCompleted(msg.Value)
	if err != nil {
		// Undecodable payloads are marked and skipped.
		logger.Error(ctx, "Skipping undecodable CheckoutCompleted",
			logger.String("topic", msg.Topic),
			logger.Int64("offset", msg.Offset),
			logger.ErrorF(err),
		)
		return nil
	}

	if err := c.svc.RecordCheckout(ctx, event); err != nil {
		logger.Error(ctx, "Failed to record purchase", logger.ErrorF(err))
		return fmt.Errorf("record checkout %s: %w", event.EventID, err)
	}

	return nil
}
