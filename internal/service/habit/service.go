// Package habit manages the habit catalog and the habits users track.
package habit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/audit"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

// Component is the audit component name of this service.
const Component = "UserHabitService"

type habitRepo interface {
	Create(ctx context.Context, h domain.Habit) (*domain.Habit, error)
	List(ctx context.Context) ([]domain.Habit, error)
}

type userHabitRepo interface {
	Create(ctx context.Context, uh domain.UserHabit) (*domain.UserHabit, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserHabit, error)
	DeleteByHabit(ctx context.Context, userID, habitID uuid.UUID) error
	UpdateImpact(ctx context.Context, userID, id uuid.UUID, impact int, average *float64) (*domain.UserHabit, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides habit operations. User-facing operations are audited.
type Service struct {
	habits     habitRepo
	userHabits userHabitRepo
	tx         txManager
	audit      *audit.Interceptor
	log        *slog.Logger
}

// NewService creates a new habit service.
func NewService(
	log *slog.Logger,
	habits habitRepo,
	userHabits userHabitRepo,
	tx txManager,
	interceptor *audit.Interceptor,
) *Service {
	return &Service{
		habits:     habits,
		userHabits: userHabits,
		tx:         tx,
		audit:      interceptor,
		log:        log.With("service", "habit"),
	}
}

func operation(name string, args ...any) audit.Operation {
	return audit.Operation{Component: Component, Name: name, Args: args}
}
