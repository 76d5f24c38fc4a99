package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/pkg/ctxutil"
)

// CreateDeal creates a new deal. New deals enter the pipeline at Sourced
// with status active unless the input says otherwise. Creation itself
// writes no activity entry; the log records changes, not existence.
func (s *Service) CreateDeal(ctx context.Context, input CreateDealInput) (*domain.Deal, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	stage := input.Stage
	if stage == "" {
		stage = domain.StageSourced
	}
	status := input.Status
	if status == "" {
		status = domain.DealStatusActive
	}

	now := time.Now().UTC()
	deal, err := s.deals.Create(ctx, &domain.Deal{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(input.Name),
		Owner:      strings.TrimSpace(input.Owner),
		CompanyURL: input.CompanyURL,
		Round:      input.Round,
		CheckSize:  input.CheckSize,
		Stage:      stage,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline.CreateDeal: %w", err)
	}

	s.log.InfoContext(ctx, "deal created",
		slog.String("deal_id", deal.ID.String()),
		slog.String("name", deal.Name),
		slog.String("stage", deal.Stage.String()),
	)

	return deal, nil
}

// DeleteDeal removes a deal. The storage schema cascades the delete to the
// deal's activities, memo head, and memo versions.
func (s *Service) DeleteDeal(ctx context.Context, dealID uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if dealID == uuid.Nil {
		return domain.NewValidationError("deal_id", "required")
	}

	if err := s.deals.Delete(ctx, dealID); err != nil {
		return fmt.Errorf("pipeline.DeleteDeal: %w", err)
	}

	s.log.InfoContext(ctx, "deal deleted", slog.String("deal_id", dealID.String()))
	return nil
}
