// Package memo implements the IC memo store using PostgreSQL: the mutable
// head row per deal plus its append-only chain of version snapshots.
package memo

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

const (
	headTable    = "ic_memos"
	versionTable = "ic_memo_versions"
)

var headColumns = []string{
	"id", "deal_id", "created_by", "last_updated_by", "current_version",
	"summary", "market", "product", "traction", "risks", "open_questions",
	"created_at", "updated_at",
}

var versionColumns = []string{
	"id", "memo_id", "deal_id", "version_number", "created_by",
	"summary", "market", "product", "traction", "risks", "open_questions",
	"change_summary", "created_at",
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides IC memo persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new memo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// headRow mirrors the ic_memos table for scanning.
type headRow struct {
	ID             uuid.UUID `db:"id"`
	DealID         uuid.UUID `db:"deal_id"`
	CreatedBy      uuid.UUID `db:"created_by"`
	LastUpdatedBy  uuid.UUID `db:"last_updated_by"`
	CurrentVersion int       `db:"current_version"`
	Summary        *string   `db:"summary"`
	Market         *string   `db:"market"`
	Product        *string   `db:"product"`
	Traction       *string   `db:"traction"`
	Risks          *string   `db:"risks"`
	OpenQuestions  *string   `db:"open_questions"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// versionRow mirrors the ic_memo_versions table for scanning.
type versionRow struct {
	ID            uuid.UUID `db:"id"`
	MemoID        uuid.UUID `db:"memo_id"`
	DealID        uuid.UUID `db:"deal_id"`
	VersionNumber int       `db:"version_number"`
	CreatedBy     uuid.UUID `db:"created_by"`
	Summary       *string   `db:"summary"`
	Market        *string   `db:"market"`
	Product       *string   `db:"product"`
	Traction      *string   `db:"traction"`
	Risks         *string   `db:"risks"`
	OpenQuestions *string   `db:"open_questions"`
	ChangeSummary *string   `db:"change_summary"`
	CreatedAt     time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Head operations
// ---------------------------------------------------------------------------

// GetHeadByDeal returns the memo head for a deal.
// Returns domain.ErrNotFound when the deal has no memo yet; callers
// must distinguish that state from other failures.
func (r *Repo) GetHeadByDeal(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error) {
	return r.getHead(ctx, dealID, false)
}

// GetHeadByDealForUpdate returns the memo head with a row lock
// (SELECT ... FOR UPDATE). Only meaningful inside a transaction: it
// serializes concurrent saves on the same deal's memo.
func (r *Repo) GetHeadByDealForUpdate(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error) {
	return r.getHead(ctx, dealID, true)
}

func (r *Repo) getHead(ctx context.Context, dealID uuid.UUID, forUpdate bool) (*domain.ICMemo, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := qb.Select(headColumns...).From(headTable).Where(sq.Eq{"deal_id": dealID})
	if forUpdate {
		sel = sel.Suffix("FOR UPDATE")
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select memo head: %w", err)
	}

	var row headRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "ic_memo", dealID)
	}

	return headToDomain(row), nil
}

// CreateHead inserts a new memo head. The UNIQUE constraint on deal_id maps
// a lost first-save race to domain.ErrAlreadyExists.
func (r *Repo) CreateHead(ctx context.Context, m *domain.ICMemo) (*domain.ICMemo, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s := m.Sections
	query, args, err := qb.Insert(headTable).
		Columns(headColumns...).
		Values(m.ID, m.DealID, m.CreatedBy, m.LastUpdatedBy, m.CurrentVersion,
			s.Summary, s.Market, s.Product, s.Traction, s.Risks, s.OpenQuestions,
			m.CreatedAt, m.UpdatedAt).
		Suffix("RETURNING " + strings.Join(headColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert memo head: %w", err)
	}

	var row headRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "ic_memo", m.ID)
	}

	return headToDomain(row), nil
}

// UpdateHead overwrites the head's sections and advances its version pointer.
// Returns domain.ErrNotFound if the head does not exist.
func (r *Repo) UpdateHead(ctx context.Context, id uuid.UUID, sections domain.MemoSections, lastUpdatedBy uuid.UUID, currentVersion int, updatedAt time.Time) (*domain.ICMemo, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Update(headTable).
		Set("summary", sections.Summary).
		Set("market", sections.Market).
		Set("product", sections.Product).
		Set("traction", sections.Traction).
		Set("risks", sections.Risks).
		Set("open_questions", sections.OpenQuestions).
		Set("last_updated_by", lastUpdatedBy).
		Set("current_version", currentVersion).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(headColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update memo head: %w", err)
	}

	var row headRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "ic_memo", id)
	}

	return headToDomain(row), nil
}

// ---------------------------------------------------------------------------
// Version operations (append-only)
// ---------------------------------------------------------------------------

// CreateVersion appends one immutable version snapshot. The UNIQUE
// constraint on (deal_id, version_number) maps colliding concurrent saves
// to domain.ErrAlreadyExists.
func (r *Repo) CreateVersion(ctx context.Context, v *domain.ICMemoVersion) (*domain.ICMemoVersion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s := v.Sections
	query, args, err := qb.Insert(versionTable).
		Columns(versionColumns...).
		Values(v.ID, v.MemoID, v.DealID, v.VersionNumber, v.CreatedBy,
			s.Summary, s.Market, s.Product, s.Traction, s.Risks, s.OpenQuestions,
			v.ChangeSummary, v.CreatedAt).
		Suffix("RETURNING " + strings.Join(versionColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert memo version: %w", err)
	}

	var row versionRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "ic_memo_version", v.ID)
	}

	return versionToDomain(row), nil
}

// ListVersionsByDeal returns all version snapshots for a deal ordered by
// version_number ASC.
func (r *Repo) ListVersionsByDeal(ctx context.Context, dealID uuid.UUID) ([]domain.ICMemoVersion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(versionColumns...).From(versionTable).
		Where(sq.Eq{"deal_id": dealID}).
		OrderBy("version_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list memo versions: %w", err)
	}

	var rows []versionRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list memo versions: %w", err)
	}

	versions := make([]domain.ICMemoVersion, len(rows))
	for i, row := range rows {
		versions[i] = *versionToDomain(row)
	}
	return versions, nil
}

// GetVersion returns one version snapshot by deal and version number.
// Returns domain.ErrNotFound if that number does not exist for the deal.
func (r *Repo) GetVersion(ctx context.Context, dealID uuid.UUID, versionNumber int) (*domain.ICMemoVersion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(versionColumns...).From(versionTable).
		Where(sq.Eq{"deal_id": dealID, "version_number": versionNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select memo version: %w", err)
	}

	var row versionRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "ic_memo_version", dealID)
	}

	return versionToDomain(row), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func headToDomain(row headRow) *domain.ICMemo {
	return &domain.ICMemo{
		ID:             row.ID,
		DealID:         row.DealID,
		CreatedBy:      row.CreatedBy,
		LastUpdatedBy:  row.LastUpdatedBy,
		CurrentVersion: row.CurrentVersion,
		Sections: domain.MemoSections{
			Summary:       row.Summary,
			Market:        row.Market,
			Product:       row.Product,
			Traction:      row.Traction,
			Risks:         row.Risks,
			OpenQuestions: row.OpenQuestions,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func versionToDomain(row versionRow) *domain.ICMemoVersion {
	return &domain.ICMemoVersion{
		ID:            row.ID,
		MemoID:        row.MemoID,
		DealID:        row.DealID,
		VersionNumber: row.VersionNumber,
		CreatedBy:     row.CreatedBy,
		Sections: domain.MemoSections{
			Summary:       row.Summary,
			Market:        row.Market,
			Product:       row.Product,
			Traction:      row.Traction,
			Risks:         row.Risks,
			OpenQuestions: row.OpenQuestions,
		},
		ChangeSummary: row.ChangeSummary,
		CreatedAt:     row.CreatedAt,
	}
}
