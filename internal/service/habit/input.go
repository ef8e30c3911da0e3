package habit

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxHabitsPerRequest  = 50
)

// CreateHabitInput adds a habit to the catalog.
type CreateHabitInput struct {
	Title       string
	Description string
}

func (i CreateHabitInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}
	if len(i.Description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AssignHabitsInput assigns catalog habits to the current user.
type AssignHabitsInput struct {
	HabitIDs []uuid.UUID
}

func (i AssignHabitsInput) Validate() error {
	if len(i.HabitIDs) == 0 {
		return domain.NewValidationError("habitIds", "at least one habit required")
	}
	if len(i.HabitIDs) > MaxHabitsPerRequest {
		return domain.NewValidationError("habitIds", fmt.Sprintf("max %d habits per request", MaxHabitsPerRequest))
	}

	seen := make(map[uuid.UUID]struct{}, len(i.HabitIDs))
	for _, id := range i.HabitIDs {
		if id == uuid.Nil {
			return domain.NewValidationError("habitIds", "must not contain empty ids")
		}
		if _, ok := seen[id]; ok {
			return domain.NewValidationError("habitIds", "duplicate habit "+id.String())
		}
		seen[id] = struct{}{}
	}
	return nil
}

// UpdateImpactInput records the user's impact rating of one of their habits.
type UpdateImpactInput struct {
	UserHabitID   uuid.UUID
	Impact        int
	AverageImpact *float64
}

func (i UpdateImpactInput) Validate() error {
	var errs []domain.FieldError

	if i.UserHabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userHabitId", Message: "required"})
	}
	if i.Impact < domain.MinImpactRating || i.Impact > domain.MaxImpactRating {
		errs = append(errs, domain.FieldError{
			Field:   "impact",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinImpactRating, domain.MaxImpactRating),
		})
	}
	if i.AverageImpact != nil {
		avg := *i.AverageImpact
		if math.IsNaN(avg) || avg < domain.MinImpactRating || avg > domain.MaxImpactRating {
			errs = append(errs, domain.FieldError{
				Field:   "averageImpact",
				Message: fmt.Sprintf("must be between %d and %d", domain.MinImpactRating, domain.MaxImpactRating),
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
