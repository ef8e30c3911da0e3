// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, external_id, email, name, created_at`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByExternalID returns the user owning the identity-provider subject.
func (r *Repo) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE external_id = $1`, externalID)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", externalID)
	}
	return u, nil
}

// Upsert creates the user for u.ExternalID or refreshes its email and name.
// The stored id is kept on conflict.
func (r *Repo) Upsert(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO users (id, external_id, email, name)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (external_id) DO UPDATE
		 SET email = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE users.email END,
		     name  = CASE WHEN EXCLUDED.name  <> '' THEN EXCLUDED.name  ELSE users.name  END
		 RETURNING `+userColumns,
		u.ID, u.ExternalID, u.Email, u.Name,
	)

	got, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ExternalID)
	}
	return got, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}
