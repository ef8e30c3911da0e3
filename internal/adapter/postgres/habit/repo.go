// Package habit implements the habit catalog repository using PostgreSQL.
package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a catalog habit.
func (r *Repo) Create(ctx context.Context, h domain.Habit) (*domain.Habit, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO habits (id, title, description) VALUES ($1, $2, $3)
		 RETURNING id, title, description, created_at`,
		h.ID, h.Title, h.Description,
	)

	got, err := scanHabit(row)
	if err != nil {
		return nil, postgres.MapError(err, "habit", h.ID)
	}
	return got, nil
}

// GetByID returns a catalog habit.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, title, description, created_at FROM habits WHERE id = $1`, id)

	got, err := scanHabit(row)
	if err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}
	return got, nil
}

// List returns the whole catalog ordered by title.
func (r *Repo) List(ctx context.Context) ([]domain.Habit, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, title, description, created_at FROM habits ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	habits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Habit, error) {
		h, err := scanHabit(row)
		if err != nil {
			return domain.Habit{}, err
		}
		return *h, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

func scanHabit(row pgx.Row) (*domain.Habit, error) {
	var h domain.Habit
	if err := row.Scan(&h.ID, &h.Title, &h.Description, &h.CreatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}
