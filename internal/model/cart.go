package model

import "github.com/shopspring/decimal"

type CartLine struct {
	UserID   int64
	Item     CatalogItem
	Quantity int64
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(l.Quantity))
}

type Cart struct {
	UserID int64
	Lines  []CartLine
	Total  decimal.Decimal
}

func NewCart(userID int64, lines []CartLine) *Cart {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return &Cart{UserID: userID, Lines: lines, Total: total}
}

func (c *Cart) Empty() bool { return c == nil || len(c.Lines) == 0 }

func (c *Cart) Units() int64 {
	var n int64
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
