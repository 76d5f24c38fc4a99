package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dealflowhq/dealflow-backend/internal/adapter/postgres"
	"github.com/dealflowhq/dealflow-backend/internal/adapter/postgres/activity"
	"github.com/dealflowhq/dealflow-backend/internal/adapter/postgres/deal"
	memorepo "github.com/dealflowhq/dealflow-backend/internal/adapter/postgres/memo"
	"github.com/dealflowhq/dealflow-backend/internal/auth"
	"github.com/dealflowhq/dealflow-backend/internal/config"
	memosvc "github.com/dealflowhq/dealflow-backend/internal/service/memo"
	"github.com/dealflowhq/dealflow-backend/internal/service/pipeline"
	"github.com/dealflowhq/dealflow-backend/internal/transport/middleware"
	"github.com/dealflowhq/dealflow-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, wires repositories, services, and the HTTP
// transport, then serves until ctx is cancelled and shuts down gracefully.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	dealRepo := deal.New(pool)
	activityRepo := activity.New(pool)
	memoRepo := memorepo.New(pool)

	pipelineSvc := pipeline.NewService(logger, dealRepo, activityRepo, txManager, cfg.Pipeline)
	memoSvc := memosvc.NewService(logger, memoRepo, dealRepo, txManager, cfg.Pipeline)

	validator := auth.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	dealHandler := rest.NewDealHandler(pipelineSvc, logger)
	memoHandler := rest.NewMemoHandler(memoSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	mux := rest.NewRouter(dealHandler, memoHandler, healthHandler)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(validator),
	)(mux)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
