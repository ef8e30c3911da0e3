package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitlog-backend/internal/config"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/pkg/ctxutil"
)

// RecordStore persists audit records. Append must not join a transaction
// carried by ctx.
type RecordStore interface {
	Append(ctx context.Context, rec domain.AuditRecord) error
}

// ActorResolver yields the user on whose behalf the current call runs.
type ActorResolver interface {
	ResolveActor(ctx context.Context) (uuid.UUID, bool)
}

// ContextActor resolves the actor stored on the context by the HTTP actor
// middleware.
type ContextActor struct{}

func (ContextActor) ResolveActor(ctx context.Context) (uuid.UUID, bool) {
	return ctxutil.UserIDFromCtx(ctx)
}

const defaultWriteTimeout = 3 * time.Second

// Interceptor records successful audited operations. A nil or disabled
// Interceptor passes calls through untouched.
type Interceptor struct {
	store        RecordStore
	log          *slog.Logger
	actors       ActorResolver
	metrics      *Metrics
	now          func() time.Time
	newID        func() uuid.UUID
	enabled      bool
	writeTimeout time.Duration
}

// Option customizes an Interceptor.
type Option func(*Interceptor)

func WithActorResolver(r ActorResolver) Option {
	return func(ic *Interceptor) { ic.actors = r }
}

func WithMetrics(m *Metrics) Option {
	return func(ic *Interceptor) { ic.metrics = m }
}

// WithClock replaces time.Now for the capture timestamp.
func WithClock(now func() time.Time) Option {
	return func(ic *Interceptor) { ic.now = now }
}

// WithIDGenerator replaces uuid.New for record ids.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(ic *Interceptor) { ic.newID = gen }
}

func NewInterceptor(store RecordStore, logger *slog.Logger, cfg config.AuditConfig, opts ...Option) *Interceptor {
	ic := &Interceptor{
		store:        store,
		log:          logger.With("service", "audit"),
		actors:       ContextActor{},
		now:          time.Now,
		newID:        uuid.New,
		enabled:      cfg.Enabled,
		writeTimeout: cfg.WriteTimeout,
	}
	if ic.writeTimeout <= 0 {
		ic.writeTimeout = defaultWriteTimeout
	}
	for _, opt := range opts {
		opt(ic)
	}
	return ic
}

func (ic *Interceptor) active() bool {
	return ic != nil && ic.enabled && ic.store != nil
}

// Capture runs fn exactly once and returns its result and error unchanged.
// When fn succeeds and an actor is resolved, a classified record is appended
// to the store. Store errors and panics are logged and counted, never
// returned.
func Capture[T any](ctx context.Context, ic *Interceptor, op Operation, fn func(context.Context) (T, error)) (T, error) {
	if !ic.active() {
		return fn(ctx)
	}

	actor, hasActor := ic.actors.ResolveActor(ctx)

	result, err := fn(ctx)
	if err != nil {
		ic.metrics.recordSkipped(reasonOperationFailed)
		return result, err
	}

	if !hasActor {
		ic.metrics.recordSkipped(reasonNoActor)
		ic.log.DebugContext(ctx, "audit skipped: no actor",
			slog.String("component", op.Component),
			slog.String("operation", op.Name),
		)
		return result, nil
	}

	ic.record(ctx, actor, op)
	return result, nil
}

// CaptureErr is Capture for operations without a result value.
func CaptureErr(ctx context.Context, ic *Interceptor, op Operation, fn func(context.Context) error) error {
	_, err := Capture(ctx, ic, op, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func (ic *Interceptor) record(ctx context.Context, actor uuid.UUID, op Operation) {
	defer func() {
		if r := recover(); r != nil {
			ic.metrics.recordFailure()
			ic.log.WarnContext(ctx, "audit record dropped",
				slog.String("operation", op.Component+"."+op.Name),
				slog.String("error", fmt.Sprintf("panic: %v", r)),
			)
		}
	}()

	c := Classify(op)
	rec := domain.AuditRecord{
		ID:          ic.newID(),
		Action:      c.Action,
		Target:      c.Target,
		Signature:   op.Signature(c),
		CreatedAt:   ic.now().UTC(),
		HabitImpact: c.HabitImpact,
		ActorID:     actor,
	}

	// The caller may cancel ctx as soon as the operation returns.
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ic.writeTimeout)
	defer cancel()

	if err := ic.store.Append(wctx, rec); err != nil {
		ic.metrics.recordFailure()
		ic.log.WarnContext(ctx, "audit record dropped",
			slog.String("operation", rec.Signature),
			slog.String("action", string(rec.Action)),
			slog.String("target", string(rec.Target)),
			slog.String("error", err.Error()),
		)
		return
	}

	ic.metrics.recordCaptured(c)
}
