package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCartTotalIsExact(t *testing.T) {
	t.Parallel()

	lines := []CartLine{
		{Item: CatalogItem{ID: 1, Price: decimal.RequireFromString("19.99")}, Quantity: 3},
		{Item: CatalogItem{ID: 2, Price: decimal.RequireFromString("0.10")}, Quantity: 3},
	}

	c := NewCart(7, lines)

	assert.Equal(t, "59.97", lines[0].Subtotal().StringFixed(2))
	assert.True(t, c.Total.Equal(decimal.RequireFromString("60.27")))
	assert.Equal(t, int64(6), c.Units())
	assert.False(t, c.Empty())
}

func TestEmptyCart(t *testing.T) {
	t.Parallel()

	c := NewCart(7, nil)
	assert.True(t, c.Empty())
	assert.True(t, c.Total.IsZero())

	var nilCart *Cart
	assert.True(t, nilCart.Empty())
}
