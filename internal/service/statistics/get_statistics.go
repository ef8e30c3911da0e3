package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

// GetStatistics resolves the user behind the external id and aggregates
// their audit records for the requested range.
func (s *Service) GetStatistics(ctx context.Context, input GetStatisticsInput) (domain.AggregatedStatistics, error) {
	if err := input.Validate(); err != nil {
		return domain.AggregatedStatistics{}, err
	}

	user, err := s.users.GetByExternalID(ctx, input.ExternalID)
	if err != nil {
		return domain.AggregatedStatistics{}, fmt.Errorf("resolve user: %w", err)
	}

	from, to := input.bounds()

	result, err := s.Aggregate(ctx, domain.AuditQuery{
		ActorID: user.ID,
		Action:  input.Action,
		Target:  input.Target,
		From:    from,
		To:      to,
	})
	if err != nil {
		return domain.AggregatedStatistics{}, err
	}

	s.log.DebugContext(ctx, "statistics computed",
		slog.String("user_id", user.ID.String()),
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("days", len(result.Stats)),
	)

	return result, nil
}

// HabitChanges returns the user's habit change history, newest first.
func (s *Service) HabitChanges(ctx context.Context, input HabitChangesInput) ([]domain.HabitChange, error) {
	if input.ExternalID == "" {
		return nil, domain.NewValidationError("userId", "required")
	}

	user, err := s.users.GetByExternalID(ctx, input.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	since := input.Since
	if since.IsZero() {
		since = s.now().Add(-s.habitChangesWindow)
	}

	start := time.Now()
	changes, err := s.store.HabitChanges(ctx, user.ID, since.UTC())
	s.metrics.observe("habit_changes", start, err)
	if err != nil {
		return nil, fmt.Errorf("habit changes: %w", err)
	}

	if changes == nil {
		changes = []domain.HabitChange{}
	}
	return changes, nil
}
