package habit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/pkg/ctxutil"
)

// CreateHabit adds a habit to the shared catalog. Catalog changes are not
// audited.
func (s *Service) CreateHabit(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.habits.Create(ctx, domain.Habit{
		ID:          uuid.New(),
		Title:       domain.CleanTitle(input.Title),
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}

	s.log.InfoContext(ctx, "catalog habit created",
		slog.String("habit_id", created.ID.String()),
		slog.String("title", created.Title),
	)

	return created, nil
}

// ListHabits returns the habit catalog.
func (s *Service) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.habits.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return list, nil
}
