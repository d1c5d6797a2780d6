package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is a completed checkout as recorded from the event stream.
type Purchase struct {
	EventID       uuid.UUID
	UserID        int64
	TransactionID uuid.UUID
	Total         decimal.Decimal
	LineCount     int
	Units         int64
	RecordedAt    time.Time
}

func PurchaseFromEvent(e CheckoutCompleted) Purchase {
	return Purchase{
		EventID:       e.EventID,
		UserID:        e.UserID,
		TransactionID: e.TransactionID,
		Total:         e.Total,
		LineCount:     e.LineCount,
		Units:         e.Units,
	}
}
