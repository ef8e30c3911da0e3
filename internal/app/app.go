package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/habitlog-backend/internal/adapter/mail"
	"github.com/heartmarshall/habitlog-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/habitlog-backend/internal/adapter/postgres/audit"
	generationrepo "github.com/heartmarshall/habitlog-backend/internal/adapter/postgres/generation"
	habitrepo "github.com/heartmarshall/habitlog-backend/internal/adapter/postgres/habit"
	notificationrepo "github.com/heartmarshall/habitlog-backend/internal/adapter/postgres/notification"
	userrepo "github.com/heartmarshall/habitlog-backend/internal/adapter/postgres/user"
	userhabitrepo "github.com/heartmarshall/habitlog-backend/internal/adapter/postgres/userhabit"
	"github.com/heartmarshall/habitlog-backend/internal/audit"
	"github.com/heartmarshall/habitlog-backend/internal/auth"
	"github.com/heartmarshall/habitlog-backend/internal/config"
	"github.com/heartmarshall/habitlog-backend/internal/service/generation"
	"github.com/heartmarshall/habitlog-backend/internal/service/habit"
	"github.com/heartmarshall/habitlog-backend/internal/service/notification"
	"github.com/heartmarshall/habitlog-backend/internal/service/statistics"
	"github.com/heartmarshall/habitlog-backend/internal/service/user"
	"github.com/heartmarshall/habitlog-backend/internal/transport/middleware"
	"github.com/heartmarshall/habitlog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	registerBuildInfo(reg)

	router := newHandler(cfg, pool, logger, reg)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// newHandler wires repositories, the audit interceptor and services into
// the HTTP router. Metrics are registered on reg.
func newHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	// Repositories.
	users := userrepo.New(pool)
	records := auditrepo.New(pool)
	habits := habitrepo.New(pool)
	userHabits := userhabitrepo.New(pool)
	generations := generationrepo.New(pool)
	notifications := notificationrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	interceptor := audit.NewInterceptor(records, logger, cfg.Audit,
		audit.WithMetrics(audit.NewMetrics(reg)),
	)

	// Services.
	userSvc := user.NewService(logger, users)
	statsSvc := statistics.NewService(logger, users, records, cfg.Audit,
		statistics.WithMetrics(statistics.NewMetrics(reg)),
	)
	habitSvc := habit.NewService(logger, habits, userHabits, txm, interceptor)
	generationSvc := generation.NewService(logger, generations, interceptor)
	notificationSvc := notification.NewService(logger, users, notifications, mail.NewLogMailer(logger), interceptor)

	return rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		Limit:       cfg.RateLimit,
		Gatherer:    reg,
		HTTPMetrics: middleware.NewHTTPMetrics(reg),
		Tokens:      auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		Users:       users,
		Health: rest.NewHealthHandler(Version, rest.HealthCheck{
			Name: "database",
			Ping: pool.Ping,
		}),
		Statistics:    rest.NewStatisticsHandler(statsSvc, logger),
		Habits:        rest.NewHabitHandler(habitSvc, logger),
		Generations:   rest.NewGenerationHandler(generationSvc, logger),
		Notifications: rest.NewNotificationHandler(notificationSvc, logger),
		Profile:       rest.NewUserHandler(userSvc, logger),
	})
}

// serve runs srv until ctx is canceled, then drains in-flight requests
// within the configured shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
