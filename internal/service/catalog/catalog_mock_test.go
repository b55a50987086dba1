package catalog

import (
	"context"
	"github.com/heartmarshall/centralring-backend/internal/domain"
	"sync"
)

var _ entityTypeRepo = &entityTypeRepoMock{}

type entityTypeRepoMock struct {
	CreateFunc            func(ctx context.Context, t *domain.EntityType) (*domain.EntityType, error)
	CreateIfNotExistsFunc func(ctx context.Context, t *domain.EntityType) (bool, error)
	GetByIDFunc           func(ctx context.Context, id string) (*domain.EntityType, error)
	ListFunc              func(ctx context.Context) ([]domain.EntityType, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.EntityType
		}
		CreateIfNotExists []struct {
			Ctx context.Context
			T   *domain.EntityType
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockCreate            sync.RWMutex
	lockCreateIfNotExists sync.RWMutex
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
}

func (mock *entityTypeRepoMock) Create(ctx context.Context, t *domain.EntityType) (*domain.EntityType, error) {
	if mock.CreateFunc == nil {
		panic("entityTypeRepoMock.CreateFunc: method is nil but entityTypeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.EntityType
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *entityTypeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.EntityType
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.EntityType
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entityTypeRepoMock) CreateIfNotExists(ctx context.Context, t *domain.EntityType) (bool, error) {
	if mock.CreateIfNotExistsFunc == nil {
		panic("entityTypeRepoMock.CreateIfNotExistsFunc: method is nil but entityTypeRepo.CreateIfNotExists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.EntityType
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreateIfNotExists.Lock()
	mock.calls.CreateIfNotExists = append(mock.calls.CreateIfNotExists, callInfo)
	mock.lockCreateIfNotExists.Unlock()
	return mock.CreateIfNotExistsFunc(ctx, t)
}

func (mock *entityTypeRepoMock) CreateIfNotExistsCalls() []struct {
	Ctx context.Context
	T   *domain.EntityType
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.EntityType
	}
	mock.lockCreateIfNotExists.RLock()
	calls = mock.calls.CreateIfNotExists
	mock.lockCreateIfNotExists.RUnlock()
	return calls
}

func (mock *entityTypeRepoMock) GetByID(ctx context.Context, id string) (*domain.EntityType, error) {
	if mock.GetByIDFunc == nil {
		panic("entityTypeRepoMock.GetByIDFunc: method is nil but entityTypeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entityTypeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entityTypeRepoMock) List(ctx context.Context) ([]domain.EntityType, error) {
	if mock.ListFunc == nil {
		panic("entityTypeRepoMock.ListFunc: method is nil but entityTypeRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *entityTypeRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ entityRepo = &entityRepoMock{}

type entityRepoMock struct {
	CreateFunc  func(ctx context.Context, e *domain.Entity) (*domain.Entity, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Entity, error)
	ListFunc    func(ctx context.Context, filter domain.EntityFilter) ([]domain.Entity, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Entity
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx    context.Context
			Filter domain.EntityFilter
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *entityRepoMock) Create(ctx context.Context, e *domain.Entity) (*domain.Entity, error) {
	if mock.CreateFunc == nil {
		panic("entityRepoMock.CreateFunc: method is nil but entityRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Entity
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entityRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Entity
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Entity
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entityRepoMock) GetByID(ctx context.Context, id string) (*domain.Entity, error) {
	if mock.GetByIDFunc == nil {
		panic("entityRepoMock.GetByIDFunc: method is nil but entityRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *entityRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entityRepoMock) List(ctx context.Context, filter domain.EntityFilter) ([]domain.Entity, error) {
	if mock.ListFunc == nil {
		panic("entityRepoMock.ListFunc: method is nil but entityRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.EntityFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *entityRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.EntityFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.EntityFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
