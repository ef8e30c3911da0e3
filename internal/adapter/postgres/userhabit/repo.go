// Package userhabit implements persistence of habits assigned to users.
package userhabit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
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

const selectUserHabit = `
SELECT uh.id, uh.user_id, uh.habit_id, h.title, uh.impact_rating, uh.average_impact, uh.created_at
FROM user_habits uh
JOIN habits h ON h.id = uh.habit_id`

// Create assigns a habit to a user. A repeated assignment yields
// domain.ErrAlreadyExists, an unknown habit domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, uh domain.UserHabit) (*domain.UserHabit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO user_habits (id, user_id, habit_id) VALUES ($1, $2, $3)`,
		uh.ID, uh.UserID, uh.HabitID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_habit", uh.HabitID)
	}

	return r.GetByID(ctx, uh.ID)
}

// GetByID returns a user habit with its catalog title.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserHabit, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, selectUserHabit+` WHERE uh.id = $1`, id)

	got, err := scanUserHabit(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_habit", id)
	}
	return got, nil
}

// ListByUser returns the user's habits, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserHabit, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		selectUserHabit+` WHERE uh.user_id = $1 ORDER BY uh.created_at, uh.id`, userID)
	if err != nil {
		return nil, postgres.MapError(err, "user_habits of user", userID)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UserHabit, error) {
		uh, err := scanUserHabit(row)
		if err != nil {
			return domain.UserHabit{}, err
		}
		return *uh, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "user_habits of user", userID)
	}
	return list, nil
}

// DeleteByHabit removes the user's assignment of the given catalog habit.
func (r *Repo) DeleteByHabit(ctx context.Context, userID, habitID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM user_habits WHERE user_id = $1 AND habit_id = $2`, userID, habitID)
	if err != nil {
		return postgres.MapError(err, "user_habit", habitID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user_habit %s: %w", habitID, domain.ErrNotFound)
	}
	return nil
}

// UpdateImpact sets the impact rating and running average of a user habit
// owned by userID.
func (r *Repo) UpdateImpact(ctx context.Context, userID, id uuid.UUID, impact int, average *float64) (*domain.UserHabit, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE user_habits SET impact_rating = $3, average_impact = $4 WHERE id = $1 AND user_id = $2`,
		id, userID, impact, average,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_habit", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("user_habit %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

func scanUserHabit(row pgx.Row) (*domain.UserHabit, error) {
	var (
		uh     domain.UserHabit
		impact pgtype.Int4
		avg    pgtype.Float8
	)
	if err := row.Scan(&uh.ID, &uh.UserID, &uh.HabitID, &uh.HabitTitle, &impact, &avg, &uh.CreatedAt); err != nil {
		return nil, err
	}
	if impact.Valid {
		v := int(impact.Int32)
		uh.ImpactRating = &v
	}
	if avg.Valid {
		v := avg.Float64
		uh.AverageImpact = &v
	}
	return &uh, nil
}
