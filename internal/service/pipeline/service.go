// Package pipeline implements the deal pipeline: deal lifecycle operations,
// the stage transition engine with its activity logging, and the read-only
// aggregation over current pipeline state.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/config"
	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

type dealRepo interface {
	Create(ctx context.Context, d *domain.Deal) (*domain.Deal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	Update(ctx context.Context, id uuid.UUID, fields domain.DealUpdate, updatedAt time.Time) (*domain.Deal, error)
	UpdateStage(ctx context.Context, id uuid.UUID, stage domain.Stage, updatedAt time.Time) (*domain.Deal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]domain.Deal, int, error)
	ListByStage(ctx context.Context, stage domain.Stage, limit, offset int) ([]domain.Deal, error)
	ListByOwner(ctx context.Context, owner string, limit, offset int) ([]domain.Deal, error)
	ListByStatus(ctx context.Context, status domain.DealStatus, limit, offset int) ([]domain.Deal, error)
	Count(ctx context.Context) (int, error)
	CountByStage(ctx context.Context) (map[domain.Stage]int, error)
}

type activityRepo interface {
	Create(ctx context.Context, a domain.Activity) (*domain.Activity, error)
	ListByDeal(ctx context.Context, dealID uuid.UUID, limit, offset int) ([]domain.Activity, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Activity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInTxRetry(ctx context.Context, attempts int, fn func(ctx context.Context) error) error
}

// Service provides deal pipeline operations.
type Service struct {
	deals      dealRepo
	activities activityRepo
	tx         txManager
	cfg        config.PipelineConfig
	log        *slog.Logger
}

// NewService creates a new pipeline service.
func NewService(
	log *slog.Logger,
	deals dealRepo,
	activities activityRepo,
	tx txManager,
	cfg config.PipelineConfig,
) *Service {
	return &Service{
		deals:      deals,
		activities: activities,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "pipeline"),
	}
}

// page applies the configured default and cap to limit.
func (s *Service) page(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}
	return limit
}
