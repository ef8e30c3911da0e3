package habit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/audit"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/pkg/ctxutil"
)

// AssignHabits assigns catalog habits to the current user in one
// transaction. Assigning a habit the user already tracks fails with
// domain.ErrAlreadyExists.
func (s *Service) AssignHabits(ctx context.Context, input AssignHabitsInput) ([]domain.UserHabit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	op := operation("createUserHabits", userID.String(), input.HabitIDs)

	return audit.Capture(ctx, s.audit, op, func(ctx context.Context) ([]domain.UserHabit, error) {
		var created []domain.UserHabit

		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			existing, err := s.userHabits.ListByUser(ctx, userID)
			if err != nil {
				return fmt.Errorf("list user habits: %w", err)
			}
			owned := make(map[uuid.UUID]struct{}, len(existing))
			for _, uh := range existing {
				owned[uh.HabitID] = struct{}{}
			}

			created = make([]domain.UserHabit, 0, len(input.HabitIDs))
			for _, habitID := range input.HabitIDs {
				if _, ok := owned[habitID]; ok {
					return fmt.Errorf("habit %s already assigned: %w", habitID, domain.ErrAlreadyExists)
				}

				uh, err := s.userHabits.Create(ctx, domain.UserHabit{
					ID:      uuid.New(),
					UserID:  userID,
					HabitID: habitID,
				})
				if err != nil {
					return fmt.Errorf("assign habit %s: %w", habitID, err)
				}
				created = append(created, *uh)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		s.log.InfoContext(ctx, "habits assigned",
			slog.String("user_id", userID.String()),
			slog.Int("count", len(created)),
		)
		return created, nil
	})
}

// UserHabits returns the habits the current user tracks.
func (s *Service) UserHabits(ctx context.Context) ([]domain.UserHabit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return audit.Capture(ctx, s.audit, operation("getUserHabits", userID.String()),
		func(ctx context.Context) ([]domain.UserHabit, error) {
			list, err := s.userHabits.ListByUser(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf("list user habits: %w", err)
			}
			return list, nil
		})
}

// RemoveHabit stops tracking a catalog habit for the current user.
func (s *Service) RemoveHabit(ctx context.Context, habitID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if habitID == uuid.Nil {
		return domain.NewValidationError("habitId", "required")
	}

	return audit.CaptureErr(ctx, s.audit, operation("deleteHabit", habitID.String(), userID.String()),
		func(ctx context.Context) error {
			if err := s.userHabits.DeleteByHabit(ctx, userID, habitID); err != nil {
				return fmt.Errorf("remove habit: %w", err)
			}
			return nil
		})
}

// UpdateImpact stores an impact rating on one of the current user's habits.
// The audit record carries the rating and the user habit id.
func (s *Service) UpdateImpact(ctx context.Context, input UpdateImpactInput) (*domain.UserHabit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	op := operation("updateHabitImpact", input.UserHabitID.String(), input.Impact, input.AverageImpact)

	return audit.Capture(ctx, s.audit, op, func(ctx context.Context) (*domain.UserHabit, error) {
		updated, err := s.userHabits.UpdateImpact(ctx, userID, input.UserHabitID, input.Impact, input.AverageImpact)
		if err != nil {
			return nil, fmt.Errorf("update impact: %w", err)
		}
		return updated, nil
	})
}
