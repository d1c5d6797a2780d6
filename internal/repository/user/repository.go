package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/internal/repository/pgerr"
)

var userColumns = []string{"id", "email", "password_hash", "is_admin", "created_at"}

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewUserRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, u *model.User) (int64, error) {
	const op = "repository.user.Create"

	q := r.sb.
		Insert("users").
		Columns("email", "password_hash", "is_admin").
		Values(u.Email, u.PasswordHash, u.IsAdmin).
		Suffix("RETURNING id, created_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&u.ID, &u.CreatedAt); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return 0, model.ErrUserExists
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return u.ID, nil
}

func (r *repository) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.one(ctx, "repository.user.UserByEmail", sq.Eq{"email": email})
}

func (r *repository) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return r.one(ctx, "repository.user.UserByID", sq.Eq{"id": id})
}

func (r *repository) List(ctx context.Context) ([]model.User, error) {
	const op = "repository.user.List"

	sqlStr, args, err := r.sb.
		Select(userColumns...).
		From("users").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *repository) one(ctx context.Context, op string, where sq.Sqlizer) (*model.User, error) {
	sqlStr, args, err := r.sb.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &u, nil
}

func scanUser(row pgx.CollectableRow) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	return u, err
}
