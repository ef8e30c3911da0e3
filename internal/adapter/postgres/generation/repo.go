// Package generation implements persistence of generated futures.
package generation

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

const generationColumns = `id, user_id, title, description, note, image_link, created_at`

func (r *Repo) Create(ctx context.Context, g domain.Generation) (*domain.Generation, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO generations (id, user_id, title, description, note, image_link)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+generationColumns,
		g.ID, g.UserID, g.Title, g.Description, g.Note, g.ImageLink,
	)

	got, err := scanGeneration(row)
	if err != nil {
		return nil, postgres.MapError(err, "generation", g.ID)
	}
	return got, nil
}

// ListByUser returns the user's generations, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Generation, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT `+generationColumns+` FROM generations WHERE user_id = $1 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, postgres.MapError(err, "generations of user", userID)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Generation, error) {
		g, err := scanGeneration(row)
		if err != nil {
			return domain.Generation{}, err
		}
		return *g, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "generations of user", userID)
	}
	return list, nil
}

// Delete removes a generation owned by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM generations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return postgres.MapError(err, "generation", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("generation %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanGeneration(row pgx.Row) (*domain.Generation, error) {
	var g domain.Generation
	if err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.Note, &g.ImageLink, &g.CreatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}
