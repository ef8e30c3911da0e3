package domain

import (
	"time"

	"github.com/google/uuid"
)

// Habit is a catalog habit that can be assigned to users.
type Habit struct {
	ID          uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
}

// UserHabit is a habit assigned to a user together with its impact rating.
type UserHabit struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	HabitID       uuid.UUID
	HabitTitle    string
	ImpactRating  *int
	AverageImpact *float64
	CreatedAt     time.Time
}

// Generation is a generated "future" description saved for a user.
type Generation struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Note        string
	ImageLink   string
	CreatedAt   time.Time
}

// Notification is a message delivered to a user.
type Notification struct {
	ID          uuid.UUID
	ReceiverID  uuid.UUID
	Title       string
	Description string
	Link        string
	SentEmail   bool
	Seen        bool
	CreatedAt   time.Time
}

// Impact ratings are accepted on a 1..10 scale.
const (
	MinImpactRating = 1
	MaxImpactRating = 10
)
