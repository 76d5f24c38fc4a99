package memo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

var _ dealGetter = &dealGetterMock{}

type dealGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Deal, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *dealGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	if mock.GetByIDFunc == nil {
		panic("dealGetterMock.GetByIDFunc: method is nil but dealGetter.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *dealGetterMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}
