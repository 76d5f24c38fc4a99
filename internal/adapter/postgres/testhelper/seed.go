package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDeal creates a deal in stage Sourced with status active.
// Returns a filled domain.Deal.
func SeedDeal(t *testing.T, pool *pgxpool.Pool) domain.Deal {
	t.Helper()
	return SeedDealAtStage(t, pool, domain.StageSourced)
}

// SeedDealAtStage creates a deal at the given stage with status active.
func SeedDealAtStage(t *testing.T, pool *pgxpool.Pool, stage domain.Stage) domain.Deal {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	deal := domain.Deal{
		ID:        uuid.New(),
		Name:      "Acme " + suffix,
		Owner:     "owner-" + suffix,
		Stage:     stage,
		Status:    domain.DealStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO deals (id, name, owner, stage, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		deal.ID, deal.Name, deal.Owner, string(deal.Stage), string(deal.Status), deal.CreatedAt, deal.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeal insert deal: %v", err)
	}

	return deal
}

// SeedActivity creates a stage_change activity for the given deal and user.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, dealID, userID uuid.UUID) domain.Activity {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	old := domain.StageSourced.String()
	next := domain.StageScreen.String()
	activity := domain.Activity{
		ID:          uuid.New(),
		DealID:      dealID,
		UserID:      userID,
		Type:        domain.ActivityTypeStageChange,
		Description: "moved deal from " + old + " to " + next,
		OldValue:    &old,
		NewValue:    &next,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO activities (id, deal_id, user_id, activity_type, description, old_value, new_value, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		activity.ID, activity.DealID, activity.UserID, string(activity.Type),
		activity.Description, activity.OldValue, activity.NewValue, activity.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity insert activity: %v", err)
	}

	return activity
}

// SeedMemo creates a memo head at version 1 plus its first version snapshot
// for the given deal. Returns the filled domain.ICMemo.
func SeedMemo(t *testing.T, pool *pgxpool.Pool, dealID, userID uuid.UUID) domain.ICMemo {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	summary := "Summary " + suffix
	memo := domain.ICMemo{
		ID:             uuid.New(),
		DealID:         dealID,
		CreatedBy:      userID,
		LastUpdatedBy:  userID,
		CurrentVersion: 1,
		Sections:       domain.MemoSections{Summary: &summary},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO ic_memos (id, deal_id, created_by, last_updated_by, current_version, summary, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		memo.ID, memo.DealID, memo.CreatedBy, memo.LastUpdatedBy, memo.CurrentVersion,
		memo.Sections.Summary, memo.CreatedAt, memo.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMemo insert ic_memo: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO ic_memo_versions (id, memo_id, deal_id, version_number, created_by, summary, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New(), memo.ID, memo.DealID, 1, userID, memo.Sections.Summary, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMemo insert ic_memo_version: %v", err)
	}

	return memo
}
