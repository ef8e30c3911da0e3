package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an immutable fact: an actor performed a classified
// operation at a point in time.
type AuditRecord struct {
	ID          uuid.UUID
	Action      AuditAction
	Target      AuditTarget
	Signature   string
	CreatedAt   time.Time
	HabitImpact *int
	ActorID     uuid.UUID
}

// AuditQuery selects the records of one actor in [From, To).
// Nil Action or Target means no filter on that dimension.
type AuditQuery struct {
	ActorID uuid.UUID
	Action  *AuditAction
	Target  *AuditTarget
	From    time.Time
	To      time.Time
}

// AuditGroup is one (day, action, target) group of audit records.
// AvgImpact is the mean of non-null habit impacts, nil when the group has none.
type AuditGroup struct {
	Day       time.Time
	Action    AuditAction
	Target    AuditTarget
	Count     int
	AvgImpact *float64
}

// StatisticsBucket holds the per-day counters derived from audit groups.
type StatisticsBucket struct {
	Date                   time.Time
	FuturesGenerated       int
	HabitsCreated          int
	HabitsInfluenceChanged int
}

// AggregatedStatistics is the statistics answer for one actor and range.
type AggregatedStatistics struct {
	AverageInfluence float64
	Stats            []StatisticsBucket
}

// HabitChange is one entry of a user's habit change history.
type HabitChange struct {
	CreatedAt   time.Time
	Action      AuditAction
	HabitTitle  string
	HabitImpact *int
}

// UnknownHabitTitle is reported when a change cannot be correlated to a habit.
const UnknownHabitTitle = "Unknown"

// StartOfDayUTC returns midnight UTC of the calendar day t falls on in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
