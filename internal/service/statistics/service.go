// Package statistics answers per-user usage statistics from the audit log.
package statistics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/config"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
)

type userRepo interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
}

type auditStore interface {
	AggregateByDay(ctx context.Context, q domain.AuditQuery) ([]domain.AuditGroup, error)
	HabitChanges(ctx context.Context, actorID uuid.UUID, since time.Time) ([]domain.HabitChange, error)
}

// Service provides statistics queries over audit records.
type Service struct {
	users   userRepo
	store   auditStore
	log     *slog.Logger
	metrics *Metrics
	now     func() time.Time

	habitChangesWindow time.Duration
}

// Option customizes a Service.
type Option func(*Service)

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock replaces time.Now for default query windows.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a statistics service.
func NewService(
	log *slog.Logger,
	users userRepo,
	store auditStore,
	cfg config.AuditConfig,
	opts ...Option,
) *Service {
	s := &Service{
		users:              users,
		store:              store,
		log:                log.With("service", "statistics"),
		now:                time.Now,
		habitChangesWindow: cfg.HabitChangesWindow,
	}
	if s.habitChangesWindow <= 0 {
		s.habitChangesWindow = 7 * 24 * time.Hour
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
