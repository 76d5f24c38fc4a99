package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/pkg/ctxutil"
)

// ListActivities returns the activity history of a deal, oldest first.
// The deal must exist; a deal with no activities yet returns an empty page.
func (s *Service) ListActivities(ctx context.Context, dealID uuid.UUID, input ListInput) ([]domain.Activity, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.deals.GetByID(ctx, dealID); err != nil {
		return nil, fmt.Errorf("pipeline.ListActivities: %w", err)
	}

	activities, err := s.activities.ListByDeal(ctx, dealID, s.page(input.Limit), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("pipeline.ListActivities: %w", err)
	}
	return activities, nil
}

// ListUserActivities returns the activity trail of one acting user,
// oldest first, across all deals.
func (s *Service) ListUserActivities(ctx context.Context, userID uuid.UUID, input ListInput) ([]domain.Activity, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	activities, err := s.activities.ListByUser(ctx, userID, s.page(input.Limit), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("pipeline.ListUserActivities: %w", err)
	}
	return activities, nil
}
