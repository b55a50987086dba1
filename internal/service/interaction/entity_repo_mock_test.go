package interaction

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/centralring-backend/internal/domain"
	"sync"
)

var _ entityRepo = &entityRepoMock{}

type entityRepoMock struct {
	AppendInfoRequestFunc func(ctx context.Context, id string, userID uuid.UUID, entry domain.InteractionLogEntry) (*domain.Entity, error)

	calls struct {
		AppendInfoRequest []struct {
			Ctx    context.Context
			ID     string
			UserID uuid.UUID
			Entry  domain.InteractionLogEntry
		}
	}
	lockAppendInfoRequest sync.RWMutex
}

func (mock *entityRepoMock) AppendInfoRequest(ctx context.Context, id string, userID uuid.UUID, entry domain.InteractionLogEntry) (*domain.Entity, error) {
	if mock.AppendInfoRequestFunc == nil {
		panic("entityRepoMock.AppendInfoRequestFunc: method is nil but entityRepo.AppendInfoRequest was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     string
		UserID uuid.UUID
		Entry  domain.InteractionLogEntry
	}{
		Ctx:    ctx,
		ID:     id,
		UserID: userID,
		Entry:  entry,
	}
	mock.lockAppendInfoRequest.Lock()
	mock.calls.AppendInfoRequest = append(mock.calls.AppendInfoRequest, callInfo)
	mock.lockAppendInfoRequest.Unlock()
	return mock.AppendInfoRequestFunc(ctx, id, userID, entry)
}

func (mock *entityRepoMock) AppendInfoRequestCalls() []struct {
	Ctx    context.Context
	ID     string
	UserID uuid.UUID
	Entry  domain.InteractionLogEntry
} {
	var calls []struct {
		Ctx    context.Context
		ID     string
		UserID uuid.UUID
		Entry  domain.InteractionLogEntry
	}
	mock.lockAppendInfoRequest.RLock()
	calls = mock.calls.AppendInfoRequest
	mock.lockAppendInfoRequest.RUnlock()
	return calls
}
