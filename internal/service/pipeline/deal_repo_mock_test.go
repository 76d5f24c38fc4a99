package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dealflowhq/dealflow-backend/internal/domain"
)

var _ dealRepo = &dealRepoMock{}

type dealRepoMock struct {
	CreateFunc           func(ctx context.Context, d *domain.Deal) (*domain.Deal, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Deal, error)
	UpdateFunc           func(ctx context.Context, id uuid.UUID, fields domain.DealUpdate, updatedAt time.Time) (*domain.Deal, error)
	UpdateStageFunc      func(ctx context.Context, id uuid.UUID, stage domain.Stage, updatedAt time.Time) (*domain.Deal, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]domain.Deal, int, error)
	ListByStageFunc      func(ctx context.Context, stage domain.Stage, limit, offset int) ([]domain.Deal, error)
	ListByOwnerFunc      func(ctx context.Context, owner string, limit, offset int) ([]domain.Deal, error)
	ListByStatusFunc     func(ctx context.Context, status domain.DealStatus, limit, offset int) ([]domain.Deal, error)
	CountFunc            func(ctx context.Context) (int, error)
	CountByStageFunc     func(ctx context.Context) (map[domain.Stage]int, error)

	calls struct {
		Create           []struct{ D *domain.Deal }
		GetByID          []struct{ ID uuid.UUID }
		GetByIDForUpdate []struct{ ID uuid.UUID }
		Update           []struct {
			ID        uuid.UUID
			Fields    domain.DealUpdate
			UpdatedAt time.Time
		}
		UpdateStage []struct {
			ID        uuid.UUID
			Stage     domain.Stage
			UpdatedAt time.Time
		}
		Delete []struct{ ID uuid.UUID }
		List   []struct{ Limit, Offset int }
		ListByStage []struct {
			Stage         domain.Stage
			Limit, Offset int
		}
		ListByOwner []struct {
			Owner         string
			Limit, Offset int
		}
		ListByStatus []struct {
			Status        domain.DealStatus
			Limit, Offset int
		}
		Count        []struct{}
		CountByStage []struct{}
	}
	lock sync.RWMutex
}

func (mock *dealRepoMock) Create(ctx context.Context, d *domain.Deal) (*domain.Deal, error) {
	if mock.CreateFunc == nil {
		panic("dealRepoMock.CreateFunc: method is nil but dealRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ D *domain.Deal }{d})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *dealRepoMock) CreateCalls() []struct{ D *domain.Deal } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *dealRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	if mock.GetByIDFunc == nil {
		panic("dealRepoMock.GetByIDFunc: method is nil but dealRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *dealRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *dealRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Deal, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("dealRepoMock.GetByIDForUpdateFunc: method is nil but dealRepo.GetByIDForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *dealRepoMock) GetByIDForUpdateCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByIDForUpdate
}

func (mock *dealRepoMock) Update(ctx context.Context, id uuid.UUID, fields domain.DealUpdate, updatedAt time.Time) (*domain.Deal, error) {
	if mock.UpdateFunc == nil {
		panic("dealRepoMock.UpdateFunc: method is nil but dealRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID        uuid.UUID
		Fields    domain.DealUpdate
		UpdatedAt time.Time
	}{id, fields, updatedAt})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, fields, updatedAt)
}

func (mock *dealRepoMock) UpdateCalls() []struct {
	ID        uuid.UUID
	Fields    domain.DealUpdate
	UpdatedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *dealRepoMock) UpdateStage(ctx context.Context, id uuid.UUID, stage domain.Stage, updatedAt time.Time) (*domain.Deal, error) {
	if mock.UpdateStageFunc == nil {
		panic("dealRepoMock.UpdateStageFunc: method is nil but dealRepo.UpdateStage was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStage = append(mock.calls.UpdateStage, struct {
		ID        uuid.UUID
		Stage     domain.Stage
		UpdatedAt time.Time
	}{id, stage, updatedAt})
	mock.lock.Unlock()
	return mock.UpdateStageFunc(ctx, id, stage, updatedAt)
}

func (mock *dealRepoMock) UpdateStageCalls() []struct {
	ID        uuid.UUID
	Stage     domain.Stage
	UpdatedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateStage
}

func (mock *dealRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("dealRepoMock.DeleteFunc: method is nil but dealRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *dealRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *dealRepoMock) List(ctx context.Context, limit, offset int) ([]domain.Deal, int, error) {
	if mock.ListFunc == nil {
		panic("dealRepoMock.ListFunc: method is nil but dealRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Limit, Offset int }{limit, offset})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *dealRepoMock) ListCalls() []struct{ Limit, Offset int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *dealRepoMock) ListByStage(ctx context.Context, stage domain.Stage, limit, offset int) ([]domain.Deal, error) {
	if mock.ListByStageFunc == nil {
		panic("dealRepoMock.ListByStageFunc: method is nil but dealRepo.ListByStage was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByStage = append(mock.calls.ListByStage, struct {
		Stage         domain.Stage
		Limit, Offset int
	}{stage, limit, offset})
	mock.lock.Unlock()
	return mock.ListByStageFunc(ctx, stage, limit, offset)
}

func (mock *dealRepoMock) ListByStageCalls() []struct {
	Stage         domain.Stage
	Limit, Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByStage
}

func (mock *dealRepoMock) ListByOwner(ctx context.Context, owner string, limit, offset int) ([]domain.Deal, error) {
	if mock.ListByOwnerFunc == nil {
		panic("dealRepoMock.ListByOwnerFunc: method is nil but dealRepo.ListByOwner was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, struct {
		Owner         string
		Limit, Offset int
	}{owner, limit, offset})
	mock.lock.Unlock()
	return mock.ListByOwnerFunc(ctx, owner, limit, offset)
}

func (mock *dealRepoMock) ListByOwnerCalls() []struct {
	Owner         string
	Limit, Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByOwner
}

func (mock *dealRepoMock) ListByStatus(ctx context.Context, status domain.DealStatus, limit, offset int) ([]domain.Deal, error) {
	if mock.ListByStatusFunc == nil {
		panic("dealRepoMock.ListByStatusFunc: method is nil but dealRepo.ListByStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, struct {
		Status        domain.DealStatus
		Limit, Offset int
	}{status, limit, offset})
	mock.lock.Unlock()
	return mock.ListByStatusFunc(ctx, status, limit, offset)
}

func (mock *dealRepoMock) ListByStatusCalls() []struct {
	Status        domain.DealStatus
	Limit, Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByStatus
}

func (mock *dealRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("dealRepoMock.CountFunc: method is nil but dealRepo.Count was just called")
	}
	mock.lock.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{}{})
	mock.lock.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *dealRepoMock) CountCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Count
}

func (mock *dealRepoMock) CountByStage(ctx context.Context) (map[domain.Stage]int, error) {
	if mock.CountByStageFunc == nil {
		panic("dealRepoMock.CountByStageFunc: method is nil but dealRepo.CountByStage was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByStage = append(mock.calls.CountByStage, struct{}{})
	mock.lock.Unlock()
	return mock.CountByStageFunc(ctx)
}

func (mock *dealRepoMock) CountByStageCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByStage
}
