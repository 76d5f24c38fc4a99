package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/pkg/ctxutil"
)

// GetDeal returns a single deal by ID.
func (s *Service) GetDeal(ctx context.Context, dealID uuid.UUID) (*domain.Deal, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("pipeline.GetDeal: %w", err)
	}
	return deal, nil
}

// ListDeals returns a page of all deals plus the total count.
func (s *Service) ListDeals(ctx context.Context, input ListInput) ([]domain.Deal, int, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	deals, total, err := s.deals.List(ctx, s.page(input.Limit), input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("pipeline.ListDeals: %w", err)
	}
	return deals, total, nil
}

// ListByStage returns a page of deals currently in the given stage.
func (s *Service) ListByStage(ctx context.Context, stage domain.Stage, input ListInput) ([]domain.Deal, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !stage.IsValid() {
		return nil, domain.NewValidationError("stage", "unknown stage")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	deals, err := s.deals.ListByStage(ctx, stage, s.page(input.Limit), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("pipeline.ListByStage: %w", err)
	}
	return deals, nil
}

// ListByOwner returns a page of deals owned by the given owner.
func (s *Service) ListByOwner(ctx context.Context, owner string, input ListInput) ([]domain.Deal, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if owner == "" {
		return nil, domain.NewValidationError("owner", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	deals, err := s.deals.ListByOwner(ctx, owner, s.page(input.Limit), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("pipeline.ListByOwner: %w", err)
	}
	return deals, nil
}

// ListByStatus returns a page of deals with the given lifecycle status.
func (s *Service) ListByStatus(ctx context.Context, status domain.DealStatus, input ListInput) ([]domain.Deal, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	deals, err := s.deals.ListByStatus(ctx, status, s.page(input.Limit), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("pipeline.ListByStatus: %w", err)
	}
	return deals, nil
}
