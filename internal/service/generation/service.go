// Package generation stores generated "possible future" descriptions for users.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/audit"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/pkg/ctxutil"
)

// Component is the audit component name of this service.
const Component = "GenerationsService"

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 10000
	MaxNoteLength        = 2000
)

type generationRepo interface {
	Create(ctx context.Context, g domain.Generation) (*domain.Generation, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Generation, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service provides audited generation operations.
type Service struct {
	generations generationRepo
	audit       *audit.Interceptor
	log         *slog.Logger
}

func NewService(log *slog.Logger, generations generationRepo, interceptor *audit.Interceptor) *Service {
	return &Service{
		generations: generations,
		audit:       interceptor,
		log:         log.With("service", "generation"),
	}
}

// CreateInput holds a generation to save.
type CreateInput struct {
	Title       string
	Description string
	Note        string
	ImageLink   string
}

func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", MaxTitleLength)})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if len(i.Description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", MaxDescriptionLength)})
	}
	if len(i.Note) > MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: fmt.Sprintf("max %d characters", MaxNoteLength)})
	}
	if link := strings.TrimSpace(i.ImageLink); link != "" {
		u, err := url.Parse(link)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "imageLink", Message: "must be an http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create saves a generation for the current user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Generation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	op := audit.Operation{Component: Component, Name: "createGeneration", Args: []any{userID.String()}}

	return audit.Capture(ctx, s.audit, op, func(ctx context.Context) (*domain.Generation, error) {
		created, err := s.generations.Create(ctx, domain.Generation{
			ID:          uuid.New(),
			UserID:      userID,
			Title:       domain.CleanTitle(input.Title),
			Description: input.Description,
			Note:        strings.TrimSpace(input.Note),
			ImageLink:   strings.TrimSpace(input.ImageLink),
		})
		if err != nil {
			return nil, fmt.Errorf("create generation: %w", err)
		}

		s.log.InfoContext(ctx, "generation saved",
			slog.String("user_id", userID.String()),
			slog.String("generation_id", created.ID.String()),
		)
		return created, nil
	})
}

// List returns the current user's generations, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Generation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	op := audit.Operation{Component: Component, Name: "getUserGenerations", Args: []any{userID.String()}}

	return audit.Capture(ctx, s.audit, op, func(ctx context.Context) ([]domain.Generation, error) {
		list, err := s.generations.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list generations: %w", err)
		}
		return list, nil
	})
}

// Delete removes one of the current user's generations.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	op := audit.Operation{Component: Component, Name: "deleteGeneration", Args: []any{id.String()}}

	return audit.CaptureErr(ctx, s.audit, op, func(ctx context.Context) error {
		if err := s.generations.Delete(ctx, userID, id); err != nil {
			return fmt.Errorf("delete generation: %w", err)
		}
		return nil
	})
}
