package memo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

var _ memoRepo = &memoRepoMock{}

type memoRepoMock struct {
	GetHeadByDealFunc          func(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error)
	GetHeadByDealForUpdateFunc func(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error)
	CreateHeadFunc             func(ctx context.Context, m *domain.ICMemo) (*domain.ICMemo, error)
	UpdateHeadFunc             func(ctx context.Context, id uuid.UUID, sections domain.MemoSections, lastUpdatedBy uuid.UUID, currentVersion int, updatedAt time.Time) (*domain.ICMemo, error)
	CreateVersionFunc          func(ctx context.Context, v *domain.ICMemoVersion) (*domain.ICMemoVersion, error)
	ListVersionsByDealFunc     func(ctx context.Context, dealID uuid.UUID) ([]domain.ICMemoVersion, error)
	GetVersionFunc             func(ctx context.Context, dealID uuid.UUID, versionNumber int) (*domain.ICMemoVersion, error)

	calls struct {
		GetHeadByDeal          []struct{ DealID uuid.UUID }
		GetHeadByDealForUpdate []struct{ DealID uuid.UUID }
		CreateHead             []struct{ M *domain.ICMemo }
		UpdateHead             []struct {
			ID             uuid.UUID
			Sections       domain.MemoSections
			LastUpdatedBy  uuid.UUID
			CurrentVersion int
			UpdatedAt      time.Time
		}
		CreateVersion      []struct{ V *domain.ICMemoVersion }
		ListVersionsByDeal []struct{ DealID uuid.UUID }
		GetVersion         []struct {
			DealID        uuid.UUID
			VersionNumber int
		}
	}
	lock sync.RWMutex
}

func (mock *memoRepoMock) GetHeadByDeal(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error) {
	if mock.GetHeadByDealFunc == nil {
		panic("memoRepoMock.GetHeadByDealFunc: method is nil but memoRepo.GetHeadByDeal was just called")
	}
	mock.lock.Lock()
	mock.calls.GetHeadByDeal = append(mock.calls.GetHeadByDeal, struct{ DealID uuid.UUID }{dealID})
	mock.lock.Unlock()
	return mock.GetHeadByDealFunc(ctx, dealID)
}

func (mock *memoRepoMock) GetHeadByDealCalls() []struct{ DealID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetHeadByDeal
}

func (mock *memoRepoMock) GetHeadByDealForUpdate(ctx context.Context, dealID uuid.UUID) (*domain.ICMemo, error) {
	if mock.GetHeadByDealForUpdateFunc == nil {
		panic("memoRepoMock.GetHeadByDealForUpdateFunc: method is nil but memoRepo.GetHeadByDealForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetHeadByDealForUpdate = append(mock.calls.GetHeadByDealForUpdate, struct{ DealID uuid.UUID }{dealID})
	mock.lock.Unlock()
	return mock.GetHeadByDealForUpdateFunc(ctx, dealID)
}

func (mock *memoRepoMock) GetHeadByDealForUpdateCalls() []struct{ DealID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetHeadByDealForUpdate
}

func (mock *memoRepoMock) CreateHead(ctx context.Context, m *domain.ICMemo) (*domain.ICMemo, error) {
	if mock.CreateHeadFunc == nil {
		panic("memoRepoMock.CreateHeadFunc: method is nil but memoRepo.CreateHead was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateHead = append(mock.calls.CreateHead, struct{ M *domain.ICMemo }{m})
	mock.lock.Unlock()
	return mock.CreateHeadFunc(ctx, m)
}

func (mock *memoRepoMock) CreateHeadCalls() []struct{ M *domain.ICMemo } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateHead
}

func (mock *memoRepoMock) UpdateHead(ctx context.Context, id uuid.UUID, sections domain.MemoSections, lastUpdatedBy uuid.UUID, currentVersion int, updatedAt time.Time) (*domain.ICMemo, error) {
	if mock.UpdateHeadFunc == nil {
		panic("memoRepoMock.UpdateHeadFunc: method is nil but memoRepo.UpdateHead was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateHead = append(mock.calls.UpdateHead, struct {
		ID             uuid.UUID
		Sections       domain.MemoSections
		LastUpdatedBy  uuid.UUID
		CurrentVersion int
		UpdatedAt      time.Time
	}{id, sections, lastUpdatedBy, currentVersion, updatedAt})
	mock.lock.Unlock()
	return mock.UpdateHeadFunc(ctx, id, sections, lastUpdatedBy, currentVersion, updatedAt)
}

func (mock *memoRepoMock) UpdateHeadCalls() []struct {
	ID             uuid.UUID
	Sections       domain.MemoSections
	LastUpdatedBy  uuid.UUID
	CurrentVersion int
	UpdatedAt      time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateHead
}

func (mock *memoRepoMock) CreateVersion(ctx context.Context, v *domain.ICMemoVersion) (*domain.ICMemoVersion, error) {
	if mock.CreateVersionFunc == nil {
		panic("memoRepoMock.CreateVersionFunc: method is nil but memoRepo.CreateVersion was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateVersion = append(mock.calls.CreateVersion, struct{ V *domain.ICMemoVersion }{v})
	mock.lock.Unlock()
	return mock.CreateVersionFunc(ctx, v)
}

func (mock *memoRepoMock) CreateVersionCalls() []struct{ V *domain.ICMemoVersion } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateVersion
}

func (mock *memoRepoMock) ListVersionsByDeal(ctx context.Context, dealID uuid.UUID) ([]domain.ICMemoVersion, error) {
	if mock.ListVersionsByDealFunc == nil {
		panic("memoRepoMock.ListVersionsByDealFunc: method is nil but memoRepo.ListVersionsByDeal was just called")
	}
	mock.lock.Lock()
	mock.calls.ListVersionsByDeal = append(mock.calls.ListVersionsByDeal, struct{ DealID uuid.UUID }{dealID})
	mock.lock.Unlock()
	return mock.ListVersionsByDealFunc(ctx, dealID)
}

func (mock *memoRepoMock) ListVersionsByDealCalls() []struct{ DealID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListVersionsByDeal
}

func (mock *memoRepoMock) GetVersion(ctx context.Context, dealID uuid.UUID, versionNumber int) (*domain.ICMemoVersion, error) {
	if mock.GetVersionFunc == nil {
		panic("memoRepoMock.GetVersionFunc: method is nil but memoRepo.GetVersion was just called")
	}
	mock.lock.Lock()
	mock.calls.GetVersion = append(mock.calls.GetVersion, struct {
		DealID        uuid.UUID
		VersionNumber int
	}{dealID, versionNumber})
	mock.lock.Unlock()
	return mock.GetVersionFunc(ctx, dealID, versionNumber)
}

func (mock *memoRepoMock) GetVersionCalls() []struct {
	DealID        uuid.UUID
	VersionNumber int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetVersion
}
