package memo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/pkg/ctxutil"
)

// GetCurrent returns the memo head for a deal. A deal with no memo yet is
// a valid, common state: the caller gets domain.ErrNotFound and must
// distinguish it from other failures.
func (s *Service) GetCurrent(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if dealID == uuid.Nil {
		return nil, domain.NewValidationError("deal_id", "required")
	}

	head, err := s.memos.GetHeadByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("memo.GetCurrent: %w", err)
	}
	return head, nil
}

// ListVersions returns all version snapshots of a deal's memo ordered by
// version number ascending.
func (s *Service) ListVersions(ctx context.Context, dealID uuid.UUID) ([]domain.ICMemoVersion, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if dealID == uuid.Nil {
		return nil, domain.NewValidationError("deal_id", "required")
	}

	// Listing versions of a memo that does not exist is NotFound, same as
	// GetCurrent, rather than an empty list.
	if _, err := s.memos.GetHeadByDeal(ctx, dealID); err != nil {
		return nil, fmt.Errorf("memo.ListVersions: %w", err)
	}

	versions, err := s.memos.ListVersionsByDeal(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("memo.ListVersions: %w", err)
	}
	return versions, nil
}

// GetVersion returns one version snapshot of a deal's memo. Version
// numbers are dense within [1, current_version]; anything outside that
// closed range is NotFound.
func (s *Service) GetVersion(ctx context.Context, dealID uuid.UUID, versionNumber int) (*domain.ICMemoVersion, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if dealID == uuid.Nil {
		return nil, domain.NewValidationError("deal_id", "required")
	}
	if versionNumber < 1 {
		return nil, fmt.Errorf("memo.GetVersion: version %d: %w", versionNumber, domain.ErrNotFound)
	}

	version, err := s.memos.GetVersion(ctx, dealID, versionNumber)
	if err != nil {
		return nil, fmt.Errorf("memo.GetVersion: %w", err)
	}
	return version, nil
}
