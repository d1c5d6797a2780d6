package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/you-humble/shape-shop/internal/validation"
)

type CatalogItem struct {
	ID    int64
	Shape Shape
	Name  string
	// Image is a URL or static path of the product picture.
	Image string
	// Unit price in the shop currency, two fractional digits.
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CatalogFilter struct {
	Shapes []Shape
}

func (f CatalogFilter) Empty() bool { return len(f.Shapes) == 0 }

// CatalogItemInput carries raw admin form values.
type CatalogItemInput struct {
	Shape string `form:"shape" validate:"required"`
	Name  string `form:"name" validate:"required,max=200"`
	Image string `form:"image" validate:"required,max=500"`
	Price string `form:"price" validate:"required"`
}

func (in CatalogItemInput) Parse() (CatalogItem, error) {
	in.Shape = strings.TrimSpace(in.Shape)
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)
	in.Price = strings.TrimSpace(in.Price)

	if err := validation.Struct(in); err != nil {
		return CatalogItem{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	shape, err := ParseShape(in.Shape)
	if err != nil {
		return CatalogItem{}, fmt.Errorf("%w: unknown shape %q", ErrInvalidInput, in.Shape)
	}

	price, err := ParsePrice(in.Price)
	if err != nil {
		return CatalogItem{}, err
	}

	return CatalogItem{
		Shape: shape,
		Name:  in.Name,
		Image: in.Image,
		Price: price,
	}, nil
}

// ParsePrice accepts a positive decimal with at most two fractional digits.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: price must be a decimal number, got %q", ErrInvalidInput, raw)
	}
	if !price.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: price must be greater than 0", ErrInvalidInput)
	}
	if !price.Equal(price.Truncate(2)) {
		return decimal.Decimal{}, fmt.Errorf("%w: price must have at most two decimal places", ErrInvalidInput)
	}
	return price, nil
}
