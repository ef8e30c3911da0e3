package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an application user. ExternalID is the subject issued by the
// identity provider and carried in bearer tokens.
type User struct {
	ID         uuid.UUID
	ExternalID string
	Email      string
	Name       string
	CreatedAt  time.Time
}
