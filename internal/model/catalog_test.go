package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogItemInputParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      CatalogItemInput
		wantErr string
	}{
		{
			name: "ok",
			in:   CatalogItemInput{Shape: "pear", Name: " Wrap dress ", Image: "/static/wrap.jpg", Price: "19.99"},
		},
		{
			name:    "missing name",
			in:      CatalogItemInput{Shape: "pear", Image: "/static/wrap.jpg", Price: "19.99"},
			wantErr: "name is required",
		},
		{
			name:    "unknown shape",
			in:      CatalogItemInput{Shape: "circle", Name: "Dress", Image: "/x.jpg", Price: "19.99"},
			wantErr: `unknown shape "circle"`,
		},
		{
			name:    "bad price",
			in:      CatalogItemInput{Shape: "pear", Name: "Dress", Image: "/x.jpg", Price: "cheap"},
			wantErr: "price must be a decimal number",
		},
		{
			name:    "negative price",
			in:      CatalogItemInput{Shape: "pear", Name: "Dress", Image: "/x.jpg", Price: "-1"},
			wantErr: "price must be greater than 0",
		},
		{
			name:    "sub-cent price",
			in:      CatalogItemInput{Shape: "pear", Name: "Dress", Image: "/x.jpg", Price: "1.999"},
			wantErr: "at most two decimal places",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item, err := tt.in.Parse()
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidInput)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ShapePear, item.Shape)
			assert.Equal(t, "Wrap dress", item.Name)
			assert.Equal(t, "19.99", item.Price.StringFixed(2))
		})
	}
}
