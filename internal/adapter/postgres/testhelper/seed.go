package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique external id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:         uuid.New(),
		ExternalID: "test|" + suffix,
		Email:      "user-" + suffix + "@example.com",
		Name:       "Test User " + suffix,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, external_id, email, name, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.ExternalID, user.Email, user.Name, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedHabit inserts a catalog habit with the given title.
func SeedHabit(t *testing.T, pool *pgxpool.Pool, title string) domain.Habit {
	t.Helper()

	habit := domain.Habit{
		ID:          uuid.New(),
		Title:       title,
		Description: "about " + title,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO habits (id, title, description, created_at) VALUES ($1, $2, $3, $4)`,
		habit.ID, habit.Title, habit.Description, habit.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHabit: %v", err)
	}
	return habit
}

// SeedUserHabit assigns habit to user without an impact rating.
func SeedUserHabit(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, habit domain.Habit) domain.UserHabit {
	t.Helper()

	uh := domain.UserHabit{
		ID:         uuid.New(),
		UserID:     userID,
		HabitID:    habit.ID,
		HabitTitle: habit.Title,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_habits (id, user_id, habit_id, created_at) VALUES ($1, $2, $3, $4)`,
		uh.ID, uh.UserID, uh.HabitID, uh.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserHabit: %v", err)
	}
	return uh
}

// SeedAuditRecord inserts an audit row directly, bypassing capture.
func SeedAuditRecord(t *testing.T, pool *pgxpool.Pool, rec domain.AuditRecord) domain.AuditRecord {
	t.Helper()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.Signature == "" {
		rec.Signature = "Seed.record"
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO audit_log (id, target, signature, action, created_at, habit_impact, actor_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, string(rec.Target), rec.Signature, string(rec.Action), rec.CreatedAt, rec.HabitImpact, rec.ActorID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAuditRecord: %v", err)
	}
	return rec
}
