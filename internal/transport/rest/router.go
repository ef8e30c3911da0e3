package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/habitlog-backend/internal/config"
	"github.com/heartmarshall/habitlog-backend/internal/domain"
	"github.com/heartmarshall/habitlog-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

type userLookup interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
}

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	Logger *slog.Logger
	CORS   config.CORSConfig
	Limit  config.RateLimitConfig

	Gatherer    prometheus.Gatherer
	HTTPMetrics *middleware.HTTPMetrics

	Tokens tokenValidator
	Users  userLookup

	Health        *HealthHandler
	Statistics    *StatisticsHandler
	Habits        *HabitHandler
	Generations   *GenerationHandler
	Notifications *NotificationHandler
	Profile       *UserHandler
}

// NewRouter builds the chi router. Probes and /metrics are public; every
// /api route requires a bearer token.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)
	if d.HTTPMetrics != nil {
		r.Use(d.HTTPMetrics.Middleware())
	}

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(
			middleware.RateLimit(d.Limit),
			middleware.Auth(d.Tokens),
			middleware.RequireAuth,
			middleware.Actor(d.Users, d.Logger),
		)

		api.Route("/users", func(u chi.Router) {
			u.Post("/init", d.Profile.Init)
			u.Get("/me", d.Profile.Me)
		})

		api.Route("/audit", func(a chi.Router) {
			a.Post("/statistics", d.Statistics.Query)
			a.Get("/statistics", d.Statistics.QueryByDate)
			a.Get("/statistics/{action}/{target}", d.Statistics.QueryByDate)
			a.Get("/habit-changes", d.Statistics.HabitChanges)
		})

		api.Route("/habits", func(h chi.Router) {
			h.Get("/catalog", d.Habits.ListHabits)
			h.Post("/catalog", d.Habits.CreateHabit)
			h.Get("/", d.Habits.List)
			h.Post("/", d.Habits.Assign)
			h.Patch("/{id}/impact", d.Habits.UpdateImpact)
			h.Delete("/{id}", d.Habits.Remove)
		})

		api.Route("/generations", func(g chi.Router) {
			g.Get("/", d.Generations.List)
			g.Post("/", d.Generations.Create)
			g.Delete("/{id}", d.Generations.Delete)
		})

		api.Route("/notifications", func(n chi.Router) {
			n.Get("/", d.Notifications.List)
			n.Post("/", d.Notifications.Send)
			n.Patch("/{id}/read", d.Notifications.MarkRead)
		})
	})

	return r
}
