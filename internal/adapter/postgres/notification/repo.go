// Package notification implements persistence of user notifications.
package notification

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

const notificationColumns = `id, receiver_id, title, description, link, sent_email, seen, created_at`

func (r *Repo) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO notifications (id, receiver_id, title, description, link, sent_email, seen)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+notificationColumns,
		n.ID, n.ReceiverID, n.Title, n.Description, n.Link, n.SentEmail, n.Seen,
	)

	got, err := scanNotification(row)
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}
	return got, nil
}

// ListByReceiver returns the receiver's notifications, newest first.
func (r *Repo) ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]domain.Notification, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE receiver_id = $1 ORDER BY created_at DESC, id`, receiverID)
	if err != nil {
		return nil, postgres.MapError(err, "notifications of user", receiverID)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		n, err := scanNotification(row)
		if err != nil {
			return domain.Notification{}, err
		}
		return *n, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "notifications of user", receiverID)
	}
	return list, nil
}

// MarkSeen flags a notification of the receiver as read. Marking an already
// read notification is a no-op.
func (r *Repo) MarkSeen(ctx context.Context, receiverID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE notifications SET seen = true WHERE id = $1 AND receiver_id = $2`, id, receiverID)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	if err := row.Scan(&n.ID, &n.ReceiverID, &n.Title, &n.Description, &n.Link, &n.SentEmail, &n.Seen, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}
