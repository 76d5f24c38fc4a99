package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/pkg/ctxutil"
)

// MoveStage moves a deal to another pipeline stage and records the change
// in the activity log. The stage write and the activity append happen in
// one transaction: a changed stage is never left without its audit entry,
// and vice versa. Any stage may move to any other stage, including
// backward moves.
//
// Moving a deal to the stage it is already in is a success no-op: the
// unchanged deal is returned with a nil activity, no audit entry is
// written, and updated_at stays untouched. Downstream consumers rely on
// the log staying free of such noise.
func (s *Service) MoveStage(ctx context.Context, input MoveStageInput) (*domain.Deal, *domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		deal     *domain.Deal
		activity *domain.Activity
	)

	err := s.tx.RunInTxRetry(ctx, s.cfg.ConflictAttempts, func(txCtx context.Context) error {
		deal, activity = nil, nil

		// The row lock serializes concurrent moves on this deal; moves on
		// other deals stay uncontended.
		current, err := s.deals.GetByIDForUpdate(txCtx, input.DealID)
		if err != nil {
			return fmt.Errorf("get deal: %w", err)
		}

		if current.Stage == input.Stage {
			deal = current
			return nil
		}

		now := time.Now().UTC()
		updated, err := s.deals.UpdateStage(txCtx, current.ID, input.Stage, now)
		if err != nil {
			return fmt.Errorf("update stage: %w", err)
		}

		oldStage := current.Stage.String()
		newStage := input.Stage.String()
		created, err := s.activities.Create(txCtx, domain.Activity{
			ID:          uuid.New(),
			DealID:      current.ID,
			UserID:      userID,
			Type:        domain.ActivityTypeStageChange,
			Description: fmt.Sprintf("moved %s from %s to %s", current.Name, oldStage, newStage),
			OldValue:    &oldStage,
			NewValue:    &newStage,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		deal = updated
		activity = created
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline.MoveStage: %w", err)
	}

	if activity != nil {
		s.log.InfoContext(ctx, "deal moved",
			slog.String("deal_id", deal.ID.String()),
			slog.String("old_stage", *activity.OldValue),
			slog.String("new_stage", *activity.NewValue),
			slog.String("user_id", userID.String()),
		)
	}

	return deal, activity, nil
}
