package memo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
	"github.com/dealflowhq/dealflow-backend/pkg/ctxutil"
)

// Save stores the submitted memo content as the next version. The first
// save for a deal creates the head with current_version 1 plus version
// snapshot #1; later saves append snapshot current_version+1 and advance
// the head, all in one transaction per save.
//
// Every snapshot holds the full submitted content, never a diff, so any
// version reads back standalone. Version numbers per deal are dense:
// 1..current_version with no gaps or duplicates, even under concurrent
// saves: the head row lock serializes saves per deal and the
// (deal_id, version_number) unique constraint backstops it.
func (s *Service) Save(ctx context.Context, input SaveMemoInput) (*domain.ICMemo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var head *domain.ICMemo

	err := s.tx.RunInTxRetry(ctx, s.cfg.ConflictAttempts, func(txCtx context.Context) error {
		head = nil

		current, err := s.memos.GetHeadByDealForUpdate(txCtx, input.DealID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			head, err = s.firstSave(txCtx, input, userID)
			return err
		case err != nil:
			return fmt.Errorf("get memo head: %w", err)
		}

		head, err = s.nextSave(txCtx, input, current, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("memo.Save: %w", err)
	}

	s.log.InfoContext(ctx, "memo saved",
		slog.String("deal_id", input.DealID.String()),
		slog.Int("version", head.CurrentVersion),
		slog.String("user_id", userID.String()),
	)

	return head, nil
}

// firstSave creates the head and version #1 for a deal with no memo yet.
func (s *Service) firstSave(ctx context.Context, input SaveMemoInput, userID uuid.UUID) (*domain.ICMemo, error) {
	// The deal must exist; checking here gives a clean not-found instead
	// of a foreign-key failure from the head insert.
	if _, err := s.deals.GetByID(ctx, input.DealID); err != nil {
		return nil, fmt.Errorf("get deal: %w", err)
	}

	now := time.Now().UTC()
	head, err := s.memos.CreateHead(ctx, &domain.ICMemo{
		ID:             uuid.New(),
		DealID:         input.DealID,
		CreatedBy:      userID,
		LastUpdatedBy:  userID,
		CurrentVersion: 1,
		Sections:       input.Sections,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		// Another request created the head between our locked read and
		// this insert. Surface a conflict so the retry re-reads the head
		// and takes the append path.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("memo head create race: %w", domain.ErrConflict)
		}
		return nil, fmt.Errorf("create memo head: %w", err)
	}

	if _, err := s.memos.CreateVersion(ctx, &domain.ICMemoVersion{
		ID:            uuid.New(),
		MemoID:        head.ID,
		DealID:        input.DealID,
		VersionNumber: 1,
		CreatedBy:     userID,
		Sections:      input.Sections,
		ChangeSummary: input.ChangeSummary,
		CreatedAt:     now,
	}); err != nil {
		return nil, fmt.Errorf("create memo version: %w", err)
	}

	return head, nil
}

// nextSave appends the next version snapshot and advances the head.
func (s *Service) nextSave(ctx context.Context, input SaveMemoInput, current *domain.ICMemo, userID uuid.UUID) (*domain.ICMemo, error) {
	next := current.CurrentVersion + 1
	now := time.Now().UTC()

	if _, err := s.memos.CreateVersion(ctx, &domain.ICMemoVersion{
		ID:            uuid.New(),
		MemoID:        current.ID,
		DealID:        input.DealID,
		VersionNumber: next,
		CreatedBy:     userID,
		Sections:      input.Sections,
		ChangeSummary: input.ChangeSummary,
		CreatedAt:     now,
	}); err != nil {
		// The unique (deal_id, version_number) backstop fired: another
		// save won the race despite the head lock. Retry with fresh state.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("memo version %d collision: %w", next, domain.ErrConflict)
		}
		return nil, fmt.Errorf("create memo version: %w", err)
	}

	head, err := s.memos.UpdateHead(ctx, current.ID, input.Sections, userID, next, now)
	if err != nil {
		return nil, fmt.Errorf("update memo head: %w", err)
	}

	return head, nil
}
