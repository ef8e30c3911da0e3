package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

// InitInput holds profile data supplied on first sign-in.
type InitInput struct {
	Email string
	Name  string
}

// Validate validates the init input.
func (i InitInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email != "" {
		if len(email) > 254 {
			errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
		} else if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}

	if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
