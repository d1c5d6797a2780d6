package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/you-humble/shape-shop/internal/validation"
)

// PaymentForm holds the card fields of the checkout page. Only their
// presence is checked; no payment gateway is involved.
type PaymentForm struct {
	CardName   string `form:"card_name" validate:"required"`
	CardNumber string `form:"card_number" validate:"required"`
	Expiry     string `form:"expiry" validate:"required"`
	CVV        string `form:"cvv" validate:"required"`
}

func (f PaymentForm) Validate() error {
	if err := validation.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

type Receipt struct {
	TransactionID uuid.UUID
	Lines         []CartLine
	Total         decimal.Decimal
	// Cleared is false when the cart was already empty.
	Cleared bool
}

type CheckoutCompleted struct {
	EventID       uuid.UUID
	UserID        int64
	TransactionID uuid.UUID
	Total         decimal.Decimal
	LineCount     int
	Units         int64
}
