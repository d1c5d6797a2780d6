package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/internal/service/mocks"
)

func TestServiceRecordCheckout(t *testing.T) {
	t.Parallel()

	event := model.CheckoutCompleted{
		EventID:       uuid.New(),
		UserID:        int64(gofakeit.IntRange(1, 1_000_000)),
		TransactionID: uuid.New(),
		Total:         decimal.RequireFromString("39.98"),
		LineCount:     2,
		Units:         2,
	}
	matchesEvent := mock.MatchedBy(func(p *model.Purchase) bool {
		return p.EventID == event.EventID &&
			p.UserID == event.UserID &&
			p.TransactionID == event.TransactionID &&
			p.Total.Equal(event.Total) &&
			p.Units == event.Units
	})
	errDB := errors.New("connection reset")

	tests := []struct {
		name   string
		setup  func(repo *mocks.MockPurchaseRepository)
		assert func(t *testing.T, err error)
	}{
		{
			name: "recorded",
			setup: func(repo *mocks.MockPurchaseRepository) {
				repo.On("Record", mock.Anything, matchesEvent).Return(true, nil).Once()
			},
			assert: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "redelivered event is not an error",
			setup: func(repo *mocks.MockPurchaseRepository) {
				repo.On("Record", mock.Anything, matchesEvent).Return(false, nil).Once()
			},
			assert: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "repository failure",
			setup: func(repo *mocks.MockPurchaseRepository) {
				repo.On("Record", mock.Anything, matchesEvent).Return(false, errDB).Once()
			},
			assert: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPersistence)
				assert.ErrorIs(t, err, errDB)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockPurchaseRepository(t)
			tt.setup(repo)

			svc := NewPurchaseService(repo, time.Second, time.Second)
			tt.assert(t, svc.RecordCheckout(context.Background(), event))
		})
	}
}

func TestServiceHistory(t *testing.T) {
	t.Parallel()

	t.Run("own purchases", func(t *testing.T) {
		t.Parallel()

		p := model.Purchase{EventID: uuid.New(), UserID: 5, Total: decimal.RequireFromString("10.00")}
		repo := mocks.NewMockPurchaseRepository(t)
		repo.On("ListByUser", mock.Anything, int64(5)).Return([]model.Purchase{p}, nil).Once()

		out, err := NewPurchaseService(repo, time.Second, time.Second).History(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, []model.Purchase{p}, out)
	})

	t.Run("none is an empty list", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPurchaseRepository(t)
		repo.On("ListByUser", mock.Anything, int64(5)).Return(nil, nil).Once()

		out, err := NewPurchaseService(repo, time.Second, time.Second).History(context.Background(), 5)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockPurchaseRepository(t)

		_, err := NewPurchaseService(repo, time.Second, time.Second).History(context.Background(), 0)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})
}

func TestServiceAll(t *testing.T) {
	t.Parallel()

	errDB := errors.New("timeout")
	repo := mocks.NewMockPurchaseRepository(t)
	repo.On("List", mock.Anything).Return(nil, errDB).Once()

	_, err := NewPurchaseService(repo, time.Second, time.Second).All(context.Background())
	assert.ErrorIs(t, err, errDB)
}
