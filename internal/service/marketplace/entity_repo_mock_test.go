package marketplace

import (
	"context"
	"github.com/heartmarshall/centralring-backend/internal/domain"
	"sync"
)

var _ entityRepo = &entityRepoMock{}

type entityRepoMock struct {
	ListFunc func(ctx context.Context, filter domain.EntityFilter) ([]domain.Entity, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.EntityFilter
		}
	}
	lockList sync.RWMutex
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
