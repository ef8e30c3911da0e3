package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// Init provisions the user behind the token subject, or refreshes the
// profile of an existing one. Empty fields keep their stored values.
// Returns ErrUnauthorized if no subject is found in context.
func (s *Service) Init(ctx context.Context, input InitInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	subject, ok := ctxutil.SubjectFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.Upsert(ctx, domain.User{
		ID:         uuid.New(),
		ExternalID: subject,
		Email:      domain.NormalizeEmail(input.Email),
		Name:       strings.TrimSpace(input.Name),
	})
	if err != nil {
		return nil, fmt.Errorf("user.Init: %w", err)
	}

	s.log.InfoContext(ctx, "user initialized",
		slog.String("user_id", user.ID.String()),
		slog.String("external_id", subject))

	return user, nil
}
