package pipeline

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	CreateFunc     func(ctx context.Context, a domain.Activity) (*domain.Activity, error)
	ListByDealFunc func(ctx context.Context, dealID uuid.UUID, limit, offset int) ([]domain.Activity, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Activity, error)

	calls struct {
		Create     []struct{ A domain.Activity }
		ListByDeal []struct {
			DealID        uuid.UUID
			Limit, Offset int
		}
		ListByUser []struct {
			UserID        uuid.UUID
			Limit, Offset int
		}
	}
	lock sync.RWMutex
}

func (mock *activityRepoMock) Create(ctx context.Context, a domain.Activity) (*domain.Activity, error) {
	if mock.CreateFunc == nil {
		panic("activityRepoMock.CreateFunc: method is nil but activityRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ A domain.Activity }{a})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *activityRepoMock) CreateCalls() []struct{ A domain.Activity } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *activityRepoMock) ListByDeal(ctx context.Context, dealID uuid.UUID, limit, offset int) ([]domain.Activity, error) {
	if mock.ListByDealFunc == nil {
		panic("activityRepoMock.ListByDealFunc: method is nil but activityRepo.ListByDeal was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByDeal = append(mock.calls.ListByDeal, struct {
		DealID        uuid.UUID
		Limit, Offset int
	}{dealID, limit, offset})
	mock.lock.Unlock()
	return mock.ListByDealFunc(ctx, dealID, limit, offset)
}

func (mock *activityRepoMock) ListByDealCalls() []struct {
	DealID        uuid.UUID
	Limit, Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByDeal
}

func (mock *activityRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Activity, error) {
	if mock.ListByUserFunc == nil {
		panic("activityRepoMock.ListByUserFunc: method is nil but activityRepo.ListByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		UserID        uuid.UUID
		Limit, Offset int
	}{userID, limit, offset})
	mock.lock.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *activityRepoMock) ListByUserCalls() []struct {
	UserID        uuid.UUID
	Limit, Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByUser
}
