// Package audit implements the append-only audit log store on PostgreSQL.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

const table = "audit_log"

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts one audit record. Records are never updated or deleted.
// The insert always runs on the pool, outside any transaction carried by ctx,
// so a failed audit write cannot abort the caller's transaction.
func (r *Repo) Append(ctx context.Context, rec domain.AuditRecord) error {
	if rec.ActorID == uuid.Nil {
		return fmt.Errorf("audit_record %s: %w", rec.ID, domain.NewValidationError("actor_id", "required"))
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns("id", "target", "signature", "action", "created_at", "habit_impact", "actor_id").
		Values(rec.ID, string(rec.Target), rec.Signature, string(rec.Action), rec.CreatedAt.UTC(), rec.HabitImpact, rec.ActorID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_record", rec.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// AggregateByDay groups the actor's records in [From, To) by UTC calendar
// day, action and target. Optional filters apply before grouping.
// Groups are ordered by day.
func (r *Repo) AggregateByDay(ctx context.Context, q domain.AuditQuery) ([]domain.AuditGroup, error) {
	where := squirrel.And{
		squirrel.Eq{"actor_id": q.ActorID},
		squirrel.GtOrEq{"created_at": q.From},
		squirrel.Lt{"created_at": q.To},
	}
	if q.Action != nil {
		where = append(where, squirrel.Eq{"action": string(*q.Action)})
	}
	if q.Target != nil {
		where = append(where, squirrel.Eq{"target": string(*q.Target)})
	}

	query, args, err := postgres.Builder.
		Select(
			"(created_at AT TIME ZONE 'UTC')::date AS day",
			"action",
			"target",
			"count(*)",
			"avg(habit_impact)::float8",
		).
		From(table).
		Where(where).
		GroupBy("day", "action", "target").
		OrderBy("day", "action", "target").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit aggregate: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "audit_log actor", q.ActorID)
	}
	defer rows.Close()

	var groups []domain.AuditGroup
	for rows.Next() {
		var (
			day            time.Time
			action, target string
			count          int64
			avg            pgtype.Float8
		)
		if err := rows.Scan(&day, &action, &target, &count, &avg); err != nil {
			return nil, fmt.Errorf("scan audit group: %w", err)
		}
		groups = append(groups, domain.AuditGroup{
			Day:       domain.StartOfDayUTC(day),
			Action:    domain.AuditAction(action),
			Target:    domain.AuditTarget(target),
			Count:     int(count),
			AvgImpact: float8Ptr(avg),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "audit_log actor", q.ActorID)
	}

	return groups, nil
}

const habitChangesSQL = `
SELECT a.created_at, a.action, COALESCE(h.title, $3), a.habit_impact
FROM audit_log a
LEFT JOIN user_habits uh
       ON uh.user_id = a.actor_id
      AND a.signature LIKE '%' || uh.id::text || '%'
LEFT JOIN habits h ON h.id = uh.habit_id
WHERE a.actor_id = $1
  AND a.created_at >= $2
  AND a.target IN ('USERHABIT', 'INFLUENCE')
ORDER BY a.created_at DESC`

// HabitChanges returns the actor's habit-related records since the given
// moment, newest first. A record is correlated to a habit when its signature
// contains the id of one of the actor's user-habits.
func (r *Repo) HabitChanges(ctx context.Context, actorID uuid.UUID, since time.Time) ([]domain.HabitChange, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, habitChangesSQL, actorID, since, domain.UnknownHabitTitle)
	if err != nil {
		return nil, postgres.MapError(err, "audit_log actor", actorID)
	}
	defer rows.Close()

	var changes []domain.HabitChange
	for rows.Next() {
		var (
			c      domain.HabitChange
			action string
			impact pgtype.Int4
		)
		if err := rows.Scan(&c.CreatedAt, &action, &c.HabitTitle, &impact); err != nil {
			return nil, fmt.Errorf("scan habit change: %w", err)
		}
		c.Action = domain.AuditAction(action)
		c.CreatedAt = c.CreatedAt.UTC()
		if impact.Valid {
			v := int(impact.Int32)
			c.HabitImpact = &v
		}
		changes = append(changes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "audit_log actor", actorID)
	}

	return changes, nil
}

func float8Ptr(v pgtype.Float8) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
