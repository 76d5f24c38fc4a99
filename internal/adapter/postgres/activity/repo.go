// Package activity implements the Activity log repository using PostgreSQL.
// The log is append-only: the repository deliberately has no update or
// delete operations.
package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealflowhq/dealflow-backend/internal/adapter/postgres"
	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

const table = "activities"

var columns = []string{
	"id", "deal_id", "user_id", "activity_type", "description",
	"old_value", "new_value", "created_at",
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// activityRow mirrors the activities table for scanning.
type activityRow struct {
	ID           uuid.UUID `db:"id"`
	DealID       uuid.UUID `db:"deal_id"`
	UserID       uuid.UUID `db:"user_id"`
	ActivityType string    `db:"activity_type"`
	Description  string    `db:"description"`
	OldValue     *string   `db:"old_value"`
	NewValue     *string   `db:"new_value"`
	CreatedAt    time.Time `db:"created_at"`
}

// Create appends a new activity entry and returns the persisted
// domain.Activity. Called only by mutating services inside their
// transactions, never by transport directly.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (*domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert(table).
		Columns(columns...).
		Values(a.ID, a.DealID, a.UserID, string(a.Type), a.Description,
			a.OldValue, a.NewValue, a.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}

	return toDomain(row), nil
}

// ListByDeal returns activities for a deal ordered by created_at ASC
// (oldest first, the natural narrative of a deal's history) with
// skip/limit pagination.
func (r *Repo) ListByDeal(ctx context.Context, dealID uuid.UUID, limit, offset int) ([]domain.Activity, error) {
	return r.list(ctx, sq.Eq{"deal_id": dealID}, limit, offset)
}

// ListByUser returns activities performed by a user ordered by created_at ASC.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Activity, error) {
	return r.list(ctx, sq.Eq{"user_id": userID}, limit, offset)
}

func (r *Repo) list(ctx context.Context, where sq.Eq, limit, offset int) ([]domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(columns...).From(table).
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	activities := make([]domain.Activity, len(rows))
	for i, row := range rows {
		activities[i] = *toDomain(row)
	}
	return activities, nil
}

// CountByDeal returns the number of activity entries for a deal.
func (r *Repo) CountByDeal(ctx context.Context, dealID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("COUNT(*)").From(table).
		Where(sq.Eq{"deal_id": dealID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count activities: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return count, nil
}

func toDomain(row activityRow) *domain.Activity {
	return &domain.Activity{
		ID:          row.ID,
		DealID:      row.DealID,
		UserID:      row.UserID,
		Type:        domain.ActivityType(row.ActivityType),
		Description: row.Description,
		OldValue:    row.OldValue,
		NewValue:    row.NewValue,
		CreatedAt:   row.CreatedAt,
	}
}
