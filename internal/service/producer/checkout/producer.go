package checkoutproducer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/platform/kafka"
	"github.com/you-humble/shape-shop/platform/logger"
)

type Converter interface {
	CheckoutCompletedToPayload(e model.CheckoutCompleted) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewCheckoutProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendCheckoutCompleted publishes the event keyed by user id so events of
// one user stay on one partition.
func (s *service) SendCheckoutCompleted(ctx context.Context, event model.CheckoutCompleted) error {
	const op string = "checkout.producer.SendCheckoutCompleted"

	payload, err := s.conv.CheckoutCompletedToPayload(event)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	key := []byte(strconv.FormatInt(event.UserID, 10))
	if err := s.producer.Send(ctx, key, payload); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Debug(ctx, "checkout completed event sent",
		logger.String("event_id", event.EventID.String()),
		logger.String("transaction_id", event.TransactionID.String()),
	)
	return nil
}
