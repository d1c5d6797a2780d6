package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/shape-shop/internal/model"
)

var predictionColumns = []string{
	"id", "user_id",
	"dress_size", "breasts", "waist", "hips", "shoe", "height", "weight",
	"body_shape", "created_at",
}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPredictionRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, p *model.Prediction) (int64, error) {
	const op = "repository.prediction.Create"

	m := p.Measurements
	q := r.sb.
		Insert("predictions").
		Columns("user_id", "dress_size", "breasts", "waist", "hips", "shoe", "height", "weight", "body_shape").
		Values(p.UserID, m.DressSize, m.Breasts, m.Waist, m.Hips, m.Shoe, m.Height, m.Weight, p.Shape.String()).
		Suffix("RETURNING id, created_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return p.ID, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]model.Prediction, error) {
	return r.list(ctx, "repository.prediction.ListByUser", sq.Eq{"user_id": userID})
}

func (r *repository) List(ctx context.Context) ([]model.Prediction, error) {
	return r.list(ctx, "repository.prediction.List", nil)
}

func (r *repository) list(ctx context.Context, op string, where sq.Sqlizer) ([]model.Prediction, error) {
	q := r.sb.
		Select(predictionColumns...).
		From("predictions").
		OrderBy("id")
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

	out, err := pgx.CollectRows(rows, scanPrediction)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func scanPrediction(row pgx.CollectableRow) (model.Prediction, error) {
	var (
		p     model.Prediction
		shape string
	)
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Measurements.DressSize,
		&p.Measurements.Breasts,
		&p.Measurements.Waist,
		&p.Measurements.Hips,
		&p.Measurements.Shoe,
		&p.Measurements.Height,
		&p.Measurements.Weight,
		&shape,
		&p.CreatedAt,
	)
	if err != nil {
		return model.Prediction{}, err
	}

	if p.Shape, err = model.ParseShape(shape); err != nil {
		return model.Prediction{}, fmt.Errorf("prediction %d: %w", p.ID, err)
	}

	return p, nil
}
