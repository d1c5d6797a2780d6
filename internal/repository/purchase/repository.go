package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/you-humble/shape-shop/internal/model"
)

var purchaseColumns = []string{
	"event_id::text", "user_id", "transaction_id::text",
	"total::text", "line_count", "units", "recorded_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPurchaseRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Record inserts p once per event id. A redelivered event reports false.
func (r *repository) Record(ctx context.Context, p *model.Purchase) (bool, error) {
	const op = "repository.purchase.Record"

	q := r.sb.
		Insert("purchases").
		Columns("event_id", "user_id", "transaction_id", "total", "line_count", "units").
		Values(p.EventID.String(), p.UserID, p.TransactionID.String(), p.Total.String(), p.LineCount, p.Units).
		Suffix("ON CONFLICT (event_id) DO NOTHING RETURNING recorded_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&p.RecordedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]model.Purchase, error) {
	return r.list(ctx, "repository.purchase.ListByUser", sq.Eq{"user_id": userID})
}

func (r *repository) List(ctx context.Context) ([]model.Purchase, error) {
	return r.list(ctx, "repository.purchase.List", nil)
}

func (r *repository) list(ctx context.Context, op string, where sq.Sqlizer) ([]model.Purchase, error) {
	q := r.sb.
		Select(purchaseColumns...).
		From("purchases").
		OrderBy("recorded_at", "event_id")
	if where != nil {
		q = q.Where(where)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := pgx.CollectRows(rows, scanPurchase)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func scanPurchase(row pgx.CollectableRow) (model.Purchase, error) {
	var (
		p                             model.Purchase
		eventID, transactionID, total string
	)
	if err := row.Scan(&eventID, &p.UserID, &transactionID, &total, &p.LineCount, &p.Units, &p.RecordedAt); err != nil {
		return model.Purchase{}, err
	}

	var err error
	if p.EventID, err = uuid.Parse(eventID); err != nil {
		return model.Purchase{}, fmt.Errorf("purchase event id: %w", err)
	}
	if p.TransactionID, err = uuid.Parse(transactionID); err != nil {
		return model.Purchase{}, fmt.Errorf("purchase %s transaction id: %w", eventID, err)
	}
	if p.Total, err = decimal.NewFromString(total); err != nil {
		return model.Purchase{}, fmt.Errorf("purchase %s total: %w", eventID, err)
	}

	return p, nil
}
