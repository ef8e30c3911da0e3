package statistics

import (
	"strings"
	"time"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

// GetStatisticsInput selects the statistics of one user. The range is the
// half-open [StartTime, EndTime). InclusiveEnd extends EndTime by one day,
// so a bare date as EndTime covers that whole day.
type GetStatisticsInput struct {
	ExternalID   string
	Action       *domain.AuditAction
	Target       *domain.AuditTarget
	StartTime    time.Time
	EndTime      time.Time
	InclusiveEnd bool
}

// Validate checks all fields and collects all errors.
func (i GetStatisticsInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ExternalID) == "" {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if i.StartTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "startTime", Message: "required"})
	}
	if i.EndTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "endTime", Message: "required"})
	}
	if i.Action != nil && !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown value"})
	}
	if i.Target != nil && !i.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "unknown value"})
	}

	if len(errs) == 0 {
		from, to := i.bounds()
		if !from.Before(to) {
			errs = append(errs, domain.FieldError{Field: "endTime", Message: "must be after startTime"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// bounds returns the half-open query range in UTC.
func (i GetStatisticsInput) bounds() (time.Time, time.Time) {
	if i.InclusiveEnd {
		return i.StartTime.UTC(), i.EndTime.UTC().AddDate(0, 0, 1)
	}
	return i.StartTime.UTC(), i.EndTime.UTC()
}

// HabitChangesInput selects a user's habit change history.
// A zero Since means the configured default window.
type HabitChangesInput struct {
	ExternalID string
	Since      time.Time
}
