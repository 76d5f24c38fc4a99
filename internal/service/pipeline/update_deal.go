package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/pkg/ctxutil"
)

// UpdateDeal applies partial non-stage field updates to a deal and records
// one field_update activity entry naming the changed fields, in the same
// transaction as the update. Fields that are present but equal to the
// current value do not count as changes; if nothing actually changes the
// deal is returned as-is with no write at all.
func (s *Service) UpdateDeal(ctx context.Context, input UpdateDealInput) (*domain.Deal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Deal

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.deals.GetByIDForUpdate(txCtx, input.DealID)
		if err != nil {
			return fmt.Errorf("get deal: %w", err)
		}

		changed, oldVal, newVal := changedFields(current, input.Fields)
		if len(changed) == 0 {
			updated = current
			return nil
		}

		now := time.Now().UTC()
		updated, err = s.deals.Update(txCtx, current.ID, input.Fields, now)
		if err != nil {
			return fmt.Errorf("update deal: %w", err)
		}

		_, err = s.activities.Create(txCtx, domain.Activity{
			ID:          uuid.New(),
			DealID:      current.ID,
			UserID:      userID,
			Type:        domain.ActivityTypeFieldUpdate,
			Description: fmt.Sprintf("updated %s on %s", strings.Join(changed, ", "), current.Name),
			OldValue:    oldVal,
			NewValue:    newVal,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline.UpdateDeal: %w", err)
	}

	s.log.InfoContext(ctx, "deal updated", slog.String("deal_id", updated.ID.String()))
	return updated, nil
}

// changedFields compares the requested updates against the current deal and
// returns the names of fields that actually change. For a single-field
// change, the old and new values are returned for the audit entry; multi-
// field changes keep them nil and rely on the description.
func changedFields(current *domain.Deal, fields domain.DealUpdate) (names []string, oldVal, newVal *string) {
	type change struct{ old, new string }
	var changes []change

	if fields.Name != nil && *fields.Name != current.Name {
		names = append(names, "name")
		changes = append(changes, change{current.Name, *fields.Name})
	}
	if fields.Owner != nil && *fields.Owner != current.Owner {
		names = append(names, "owner")
		changes = append(changes, change{current.Owner, *fields.Owner})
	}
	if fields.CompanyURL != nil && !strPtrEq(fields.CompanyURL, current.CompanyURL) {
		names = append(names, "company_url")
		changes = append(changes, change{strOrEmpty(current.CompanyURL), *fields.CompanyURL})
	}
	if fields.Round != nil && !strPtrEq(fields.Round, current.Round) {
		names = append(names, "round")
		changes = append(changes, change{strOrEmpty(current.Round), *fields.Round})
	}
	if fields.CheckSize != nil && (current.CheckSize == nil || *fields.CheckSize != *current.CheckSize) {
		names = append(names, "check_size")
		changes = append(changes, change{floatOrEmpty(current.CheckSize), formatFloat(*fields.CheckSize)})
	}
	if fields.Status != nil && *fields.Status != current.Status {
		names = append(names, "status")
		changes = append(changes, change{current.Status.String(), fields.Status.String()})
	}

	if len(changes) == 1 {
		oldVal, newVal = &changes[0].old, &changes[0].new
	}
	return names, oldVal, newVal
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
