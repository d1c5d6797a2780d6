package service

import (
	"context"
	"fmt"
	"time"

	"github.com/you-humble/shape-shop/internal/metrics"
	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/platform/logger"
)

type PurchaseRepository interface {
	Record(ctx context.Context, p *model.Purchase) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Purchase, error)
	List(ctx context.Context) ([]model.Purchase, error)
}

type service struct {
	repo           PurchaseRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPurchaseService(
	repository PurchaseRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// RecordCheckout stores a completed checkout. Events are delivered at least
// once, so a duplicate event id is not an error.
func (svc *service) RecordCheckout(ctx context.Context, event model.CheckoutCompleted) error {
	const op string = "purchase.service.RecordCheckout"
	log := logger.With(
		logger.String("event_id", event.EventID.String()),
		logger.Int64("user_id", event.UserID),
	)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	p := model.PurchaseFromEvent(event)
	recorded, err := svc.repo.Record(ctx, &p)
	if err != nil {
		metrics.PurchasesRecorded.WithLabelValues("error").Inc()
		log.Error(ctx, "repository record purchase", logger.ErrorF(err))
		return fmt.Errorf("%s: %w: %w", op, model.ErrPersistence, err)
	}

	if !recorded {
		metrics.PurchasesRecorded.WithLabelValues("duplicate").Inc()
		log.Info(ctx, "purchase already recorded")
		return nil
	}

	metrics.PurchasesRecorded.WithLabelValues("recorded").Inc()
	log.Info(ctx, "purchase recorded", logger.String("total", p.Total.StringFixed(2)))
	return nil
}

func (svc *service) History(ctx context.Context, userID int64) ([]model.Purchase, error) {
	const op string = "purchase.service.History"

	if userID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.repo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error(ctx, "repository list purchases by user",
			logger.Int64("user_id", userID), logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if out == nil {
		out = []model.Purchase{}
	}

	return out, nil
}

func (svc *service) All(ctx context.Context) ([]model.Purchase, error) {
	const op string = "purchase.service.All"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list purchases", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if out == nil {
		out = []model.Purchase{}
	}

	return out, nil
}
