// Package deal implements the Deal repository using PostgreSQL.
// It owns deal records and their current pipeline stage.
package deal

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

const table = "deals"

var columns = []string{
	"id", "name", "owner", "company_url", "round", "check_size",
	"stage", "status", "created_at", "updated_at",
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides deal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// dealRow mirrors the deals table for scanning.
type dealRow struct {
	ID         uuid.UUID  `db:"id"`
	Name       string     `db:"name"`
	Owner      string     `db:"owner"`
	CompanyURL *string    `db:"company_url"`
	Round      *string    `db:"round"`
	CheckSize  *float64   `db:"check_size"`
	Stage      string     `db:"stage"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new deal and returns the persisted domain.Deal.
func (r *Repo) Create(ctx context.Context, d *domain.Deal) (*domain.Deal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert(table).
		Columns(columns...).
		Values(d.ID, d.Name, d.Owner, d.CompanyURL, d.Round, d.CheckSize,
			string(d.Stage), string(d.Status), d.CreatedAt, d.UpdatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert deal: %w", err)
	}

	var row dealRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "deal", d.ID)
	}

	return toDomain(row), nil
}

// Update applies partial non-stage field updates and bumps updated_at.
// Returns domain.ErrNotFound if the deal does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, fields domain.DealUpdate, updatedAt time.Time) (*domain.Deal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := qb.Update(table).Set("updated_at", updatedAt)
	if fields.Name != nil {
		update = update.Set("name", *fields.Name)
	}
	if fields.Owner != nil {
		update = update.Set("owner", *fields.Owner)
	}
	if fields.CompanyURL != nil {
		update = update.Set("company_url", *fields.CompanyURL)
	}
	if fields.Round != nil {
		update = update.Set("round", *fields.Round)
	}
	if fields.CheckSize != nil {
		update = update.Set("check_size", *fields.CheckSize)
	}
	if fields.Status != nil {
		update = update.Set("status", string(*fields.Status))
	}

	query, args, err := update.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update deal: %w", err)
	}

	var row dealRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "deal", id)
	}

	return toDomain(row), nil
}

// UpdateStage sets the deal's stage and updated_at.
// Returns domain.ErrNotFound if the deal does not exist.
func (r *Repo) UpdateStage(ctx context.Context, id uuid.UUID, stage domain.Stage, updatedAt time.Time) (*domain.Deal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Update(table).
		Set("stage", string(stage)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update deal stage: %w", err)
	}

	var row dealRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "deal", id)
	}

	return toDomain(row), nil
}

// Delete removes a deal. Activities, the memo head, and memo versions are
// removed by the schema's ON DELETE CASCADE.
// Returns domain.ErrNotFound if the deal does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete deal: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "deal", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deal %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a deal by primary key.
// Returns domain.ErrNotFound if the deal does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a deal by primary key with a row lock
// (SELECT ... FOR UPDATE). Only meaningful inside a transaction: it
// serializes concurrent stage moves on the same deal while leaving other
// deals uncontended.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Deal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := qb.Select(columns...).From(table).Where(sq.Eq{"id": id})
	if forUpdate {
		sel = sel.Suffix("FOR UPDATE")
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select deal: %w", err)
	}

	var row dealRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "deal", id)
	}

	return toDomain(row), nil
}

// List returns deals ordered by created_at DESC with pagination,
// plus the total deal count.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Deal, int, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	deals, err := r.list(ctx, nil, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return deals, total, nil
}

// ListByStage returns deals in the given stage ordered by created_at DESC.
func (r *Repo) ListByStage(ctx context.Context, stage domain.Stage, limit, offset int) ([]domain.Deal, error) {
	return r.list(ctx, sq.Eq{"stage": string(stage)}, limit, offset)
}

// ListByOwner returns deals for the given owner ordered by created_at DESC.
func (r *Repo) ListByOwner(ctx context.Context, owner string, limit, offset int) ([]domain.Deal, error) {
	return r.list(ctx, sq.Eq{"owner": owner}, limit, offset)
}

// ListByStatus returns deals with the given status ordered by created_at DESC.
func (r *Repo) ListByStatus(ctx context.Context, status domain.DealStatus, limit, offset int) ([]domain.Deal, error) {
	return r.list(ctx, sq.Eq{"status": string(status)}, limit, offset)
}

func (r *Repo) list(ctx context.Context, where any, limit, offset int) ([]domain.Deal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := qb.Select(columns...).From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if where != nil {
		sel = sel.Where(where)
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list deals: %w", err)
	}

	var rows []dealRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}

	deals := make([]domain.Deal, len(rows))
	for i, row := range rows {
		deals[i] = *toDomain(row)
	}
	return deals, nil
}

// Count returns the total number of deals.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count deals: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count deals: %w", err)
	}
	return count, nil
}

// CountByStage returns the number of deals in each stage that has at least
// one deal. Stages with zero deals are absent from the map; the aggregation
// service zero-fills over the full enumeration.
func (r *Repo) CountByStage(ctx context.Context) (map[domain.Stage]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("stage", "COUNT(*) AS n").
		From(table).
		GroupBy("stage").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count deals by stage: %w", err)
	}

	var rows []struct {
		Stage string `db:"stage"`
		N     int    `db:"n"`
	}
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count deals by stage: %w", err)
	}

	counts := make(map[domain.Stage]int, len(rows))
	for _, row := range rows {
		counts[domain.Stage(row.Stage)] = row.N
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func columnList() string {
	return strings.Join(columns, ", ")
}

func toDomain(row dealRow) *domain.Deal {
	return &domain.Deal{
		ID:         row.ID,
		Name:       row.Name,
		Owner:      row.Owner,
		CompanyURL: row.CompanyURL,
		Round:      row.Round,
		CheckSize:  row.CheckSize,
		Stage:      domain.Stage(row.Stage),
		Status:     domain.DealStatus(row.Status),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
