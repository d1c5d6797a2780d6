package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllReverseOrderOnce(t *testing.T) {
	t.Parallel()

	c := New()
	var order []string
	c.AddNamed("pool", func(context.Context) error {
		order = append(order, "pool")
		return nil
	})
	c.AddNamed("server", func(context.Context) error {
		order = append(order, "server")
		return errors.New("busy")
	})
	c.AddNamed("producer", func(context.Context) error {
		order = append(order, "producer")
		return nil
	})

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "server: busy")
	assert.Equal(t, []string{"producer", "server", "pool"}, order)

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Len(t, order, 3)
}

func TestCloseAllStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	c := New()
	called := false
	c.AddNamed("pool", func(context.Context) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CloseAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
