// Package notification delivers notifications to users by email and keeps
// them for in-app reading.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/audit"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/pkg/ctxutil"
)

// Component is the audit component name of this service.
const Component = "NotificationsService"

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

// Message is an outgoing email.
type Message struct {
	To      string
	Subject string
	Body    string
}

type mailer interface {
	Send(ctx context.Context, msg Message) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type notificationRepo interface {
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]domain.Notification, error)
	MarkSeen(ctx context.Context, receiverID, id uuid.UUID) error
}

// Service sends and tracks notifications.
type Service struct {
	users         userRepo
	notifications notificationRepo
	mailer        mailer
	audit         *audit.Interceptor
	log           *slog.Logger
}

func NewService(
	log *slog.Logger,
	users userRepo,
	notifications notificationRepo,
	m mailer,
	interceptor *audit.Interceptor,
) *Service {
	return &Service{
		users:         users,
		notifications: notifications,
		mailer:        m,
		audit:         interceptor,
		log:           log.With("service", "notification"),
	}
}

// SendInput describes a notification to deliver.
type SendInput struct {
	ReceiverID  uuid.UUID
	Title       string
	Description string
	Link        string
}

func (i SendInput) Validate() error {
	var errs []domain.FieldError

	if i.ReceiverID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "receiverId", Message: "required"})
	}
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

// Send emails the receiver and stores the notification. A failed delivery
// fails the operation and nothing is stored.
func (s *Service) Send(ctx context.Context, input SendInput) (*domain.Notification, error) {
	senderID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	op := audit.Operation{
		Component: Component,
		Name:      "sendEmailAndSaveNotification",
		Args:      []any{input.ReceiverID.String(), senderID.String()},
	}

	return audit.Capture(ctx, s.audit, op, func(ctx context.Context) (*domain.Notification, error) {
		receiver, err := s.users.GetByID(ctx, input.ReceiverID)
		if err != nil {
			return nil, fmt.Errorf("resolve receiver: %w", err)
		}

		if err := s.mailer.Send(ctx, Message{
			To:      receiver.Email,
			Subject: domain.CleanTitle(input.Title),
			Body:    emailBody(input.Description, input.Link),
		}); err != nil {
			return nil, fmt.Errorf("send email: %w", err)
		}

		saved, err := s.notifications.Create(ctx, domain.Notification{
			ID:          uuid.New(),
			ReceiverID:  receiver.ID,
			Title:       domain.CleanTitle(input.Title),
			Description: input.Description,
			Link:        strings.TrimSpace(input.Link),
			SentEmail:   true,
		})
		if err != nil {
			return nil, fmt.Errorf("save notification: %w", err)
		}

		s.log.InfoContext(ctx, "notification sent",
			slog.String("receiver_id", receiver.ID.String()),
			slog.String("notification_id", saved.ID.String()),
		)
		return saved, nil
	})
}

func emailBody(description, link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return description
	}
	return description + "\n\n" + link
}

// List returns the current user's notifications, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.notifications.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

// MarkRead flags one of the current user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	op := audit.Operation{
		Component: Component,
		Name:      "updateNotificationReadStatus",
		Args:      []any{userID.String(), id.String()},
	}

	return audit.CaptureErr(ctx, s.audit, op, func(ctx context.Context) error {
		if err := s.notifications.MarkSeen(ctx, userID, id); err != nil {
			return fmt.Errorf("mark notification read: %w", err)
		}
		return nil
	})
}
