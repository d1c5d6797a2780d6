package converter

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/shape-shop/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

// CheckoutCompletedToPayload encodes the event as a protobuf Struct. Money
// travels as a fixed two decimal string.
func (c *kafkaConverter) CheckoutCompletedToPayload(e model.CheckoutCompleted) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"event_id":       e.EventID.String(),
		"user_id":        e.UserID,
		"transaction_id": e.TransactionID.String(),
		"total":          e.Total.StringFixed(2),
		"line_count":     e.LineCount,
		"units":          e.Units,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build struct: %w", err)
	}

	payload, err := proto.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PayloadToCheckoutCompleted(data []byte) (model.CheckoutCompleted, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return model.CheckoutCompleted{}, fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}
	fields := s.GetFields()

	eventID, err := uuid.Parse(fields["event_id"].GetStringValue())
	if err != nil {
		return model.CheckoutCompleted{}, fmt.Errorf("event_id: %w", err)
	}
	transactionID, err := uuid.Parse(fields["transaction_id"].GetStringValue())
	if err != nil {
		return model.CheckoutCompleted{}, fmt.Errorf("transaction_id: %w", err)
	}
	total, err := decimal.NewFromString(fields["total"].GetStringValue())
	if err != nil {
		return model.CheckoutCompleted{}, fmt.Errorf("total: %w", err)
	}

	userID := int64(fields["user_id"].GetNumberValue())
	if userID <= 0 {
		return model.CheckoutCompleted{}, fmt.Errorf("user_id: %d is not a user", userID)
	}

	return model.CheckoutCompleted{
		EventID:       eventID,
		UserID:        userID,
		TransactionID: transactionID,
		Total:         total,
		LineCount:     int(fields["line_count"].GetNumberValue()),
		Units:         int64(fields["units"].GetNumberValue()),
	}, nil
}
