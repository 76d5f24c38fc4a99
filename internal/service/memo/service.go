// Package memo implements the IC memo store: one mutable head per deal and
// an append-only, gap-free chain of full-content version snapshots.
package memo

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/config"
	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

type memoRepo interface {
	GetHeadByDeal(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error)
	GetHeadByDealForUpdate(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error)
	CreateHead(ctx context.Context, m *domain.ICMemo) (*domain.ICMemo, error)
	UpdateHead(ctx context.Context, id uuid.UUID, sections domain.MemoSections, lastUpdatedBy uuid.UUID, currentVersion int, updatedAt time.Time) (*domain.ICMemo, error)
	CreateVersion(ctx context.Context, v *domain.ICMemoVersion) (*domain.ICMemoVersion, error)
	ListVersionsByDeal(ctx context.Context, dealID uuid.UUID) ([]domain.ICMemoVersion, error)
	GetVersion(ctx context.Context, dealID uuid.UUID, versionNumber int) (*domain.ICMemoVersion, error)
}

type dealGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
}

type txManager interface {
	RunInTxRetry(ctx context.Context, attempts int, fn func(ctx context.Context) error) error
}

// Service provides IC memo operations.
type Service struct {
	memos memoRepo
	deals dealGetter
	tx    txManager
	cfg   config.PipelineConfig
	log   *slog.Logger
}

// NewService creates a new memo service.
func NewService(
	log *slog.Logger,
	memos memoRepo,
	deals dealGetter,
	tx txManager,
	cfg config.PipelineConfig,
) *Service {
	return &Service{
		memos: memos,
		deals: deals,
		tx:    tx,
		cfg:   cfg,
		log:   log.With("service", "memo"),
	}
}
