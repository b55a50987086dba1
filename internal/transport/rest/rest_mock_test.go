package rest

import (
	"context"
	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/internal/service/auth"
	"github.com/heartmarshall/centralring-backend/internal/service/catalog"
	"github.com/heartmarshall/centralring-backend/internal/service/interaction"
	"github.com/heartmarshall/centralring-backend/internal/service/marketplace"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	MeFunc        func(ctx context.Context) (*auth.Me, error)
	SendOTPFunc   func(ctx context.Context, input auth.SendOTPInput) error
	VerifyOTPFunc func(ctx context.Context, input auth.VerifyOTPInput) (*auth.Session, error)

	calls struct {
		Me []struct {
			Ctx context.Context
		}
		SendOTP []struct {
			Ctx   context.Context
			Input auth.SendOTPInput
		}
		VerifyOTP []struct {
			Ctx   context.Context
			Input auth.VerifyOTPInput
		}
	}
	lockMe        sync.RWMutex
	lockSendOTP   sync.RWMutex
	lockVerifyOTP sync.RWMutex
}

func (mock *authServiceMock) Me(ctx context.Context) (*auth.Me, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockMe.RLock()
	calls = mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *authServiceMock) SendOTP(ctx context.Context, input auth.SendOTPInput) error {
	if mock.SendOTPFunc == nil {
		panic("authServiceMock.SendOTPFunc: method is nil but authService.SendOTP was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.SendOTPInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSendOTP.Lock()
	mock.calls.SendOTP = append(mock.calls.SendOTP, callInfo)
	mock.lockSendOTP.Unlock()
	return mock.SendOTPFunc(ctx, input)
}

func (mock *authServiceMock) SendOTPCalls() []struct {
	Ctx   context.Context
	Input auth.SendOTPInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.SendOTPInput
	}
	mock.lockSendOTP.RLock()
	calls = mock.calls.SendOTP
	mock.lockSendOTP.RUnlock()
	return calls
}

func (mock *authServiceMock) VerifyOTP(ctx context.Context, input auth.VerifyOTPInput) (*auth.Session, error) {
	if mock.VerifyOTPFunc == nil {
		panic("authServiceMock.VerifyOTPFunc: method is nil but authService.VerifyOTP was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.VerifyOTPInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockVerifyOTP.Lock()
	mock.calls.VerifyOTP = append(mock.calls.VerifyOTP, callInfo)
	mock.lockVerifyOTP.Unlock()
	return mock.VerifyOTPFunc(ctx, input)
}

func (mock *authServiceMock) VerifyOTPCalls() []struct {
	Ctx   context.Context
	Input auth.VerifyOTPInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.VerifyOTPInput
	}
	mock.lockVerifyOTP.RLock()
	calls = mock.calls.VerifyOTP
	mock.lockVerifyOTP.RUnlock()
	return calls
}

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	CreateEntityFunc      func(ctx context.Context, input catalog.CreateEntityInput) (*domain.Entity, error)
	CreateEntityTypeFunc  func(ctx context.Context, input catalog.CreateEntityTypeInput) (*domain.EntityType, error)
	GetEntityFunc         func(ctx context.Context, id string) (*domain.Entity, error)
	GetEntityTypeFunc     func(ctx context.Context, id string) (*domain.EntityType, error)
	ListEntityTypesFunc   func(ctx context.Context) ([]domain.EntityType, error)
	ListOwnedEntitiesFunc func(ctx context.Context) ([]domain.Entity, error)

	calls struct {
		CreateEntity []struct {
			Ctx   context.Context
			Input catalog.CreateEntityInput
		}
		CreateEntityType []struct {
			Ctx   context.Context
			Input catalog.CreateEntityTypeInput
		}
		GetEntity []struct {
			Ctx context.Context
			ID  string
		}
		GetEntityType []struct {
			Ctx context.Context
			ID  string
		}
		ListEntityTypes []struct {
			Ctx context.Context
		}
		ListOwnedEntities []struct {
			Ctx context.Context
		}
	}
	lockCreateEntity      sync.RWMutex
	lockCreateEntityType  sync.RWMutex
	lockGetEntity         sync.RWMutex
	lockGetEntityType     sync.RWMutex
	lockListEntityTypes   sync.RWMutex
	lockListOwnedEntities sync.RWMutex
}

func (mock *catalogServiceMock) CreateEntity(ctx context.Context, input catalog.CreateEntityInput) (*domain.Entity, error) {
	if mock.CreateEntityFunc == nil {
		panic("catalogServiceMock.CreateEntityFunc: method is nil but catalogService.CreateEntity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateEntityInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateEntity.Lock()
	mock.calls.CreateEntity = append(mock.calls.CreateEntity, callInfo)
	mock.lockCreateEntity.Unlock()
	return mock.CreateEntityFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateEntityCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateEntityInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.CreateEntityInput
	}
	mock.lockCreateEntity.RLock()
	calls = mock.calls.CreateEntity
	mock.lockCreateEntity.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateEntityType(ctx context.Context, input catalog.CreateEntityTypeInput) (*domain.EntityType, error) {
	if mock.CreateEntityTypeFunc == nil {
		panic("catalogServiceMock.CreateEntityTypeFunc: method is nil but catalogService.CreateEntityType was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateEntityTypeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateEntityType.Lock()
	mock.calls.CreateEntityType = append(mock.calls.CreateEntityType, callInfo)
	mock.lockCreateEntityType.Unlock()
	return mock.CreateEntityTypeFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateEntityTypeCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateEntityTypeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.CreateEntityTypeInput
	}
	mock.lockCreateEntityType.RLock()
	calls = mock.calls.CreateEntityType
	mock.lockCreateEntityType.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetEntity(ctx context.Context, id string) (*domain.Entity, error) {
	if mock.GetEntityFunc == nil {
		panic("catalogServiceMock.GetEntityFunc: method is nil but catalogService.GetEntity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetEntity.Lock()
	mock.calls.GetEntity = append(mock.calls.GetEntity, callInfo)
	mock.lockGetEntity.Unlock()
	return mock.GetEntityFunc(ctx, id)
}

func (mock *catalogServiceMock) GetEntityCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockGetEntity.RLock()
	calls = mock.calls.GetEntity
	mock.lockGetEntity.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetEntityType(ctx context.Context, id string) (*domain.EntityType, error) {
	if mock.GetEntityTypeFunc == nil {
		panic("catalogServiceMock.GetEntityTypeFunc: method is nil but catalogService.GetEntityType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetEntityType.Lock()
	mock.calls.GetEntityType = append(mock.calls.GetEntityType, callInfo)
	mock.lockGetEntityType.Unlock()
	return mock.GetEntityTypeFunc(ctx, id)
}

func (mock *catalogServiceMock) GetEntityTypeCalls() []struct {
	Ctx context.Context
	ID  string
} {
	var calls []struct {
		Ctx context.Context
		ID  string
	}
	mock.lockGetEntityType.RLock()
	calls = mock.calls.GetEntityType
	mock.lockGetEntityType.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListEntityTypes(ctx context.Context) ([]domain.EntityType, error) {
	if mock.ListEntityTypesFunc == nil {
		panic("catalogServiceMock.ListEntityTypesFunc: method is nil but catalogService.ListEntityTypes was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListEntityTypes.Lock()
	mock.calls.ListEntityTypes = append(mock.calls.ListEntityTypes, callInfo)
	mock.lockListEntityTypes.Unlock()
	return mock.ListEntityTypesFunc(ctx)
}

func (mock *catalogServiceMock) ListEntityTypesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListEntityTypes.RLock()
	calls = mock.calls.ListEntityTypes
	mock.lockListEntityTypes.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListOwnedEntities(ctx context.Context) ([]domain.Entity, error) {
	if mock.ListOwnedEntitiesFunc == nil {
		panic("catalogServiceMock.ListOwnedEntitiesFunc: method is nil but catalogService.ListOwnedEntities was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListOwnedEntities.Lock()
	mock.calls.ListOwnedEntities = append(mock.calls.ListOwnedEntities, callInfo)
	mock.lockListOwnedEntities.Unlock()
	return mock.ListOwnedEntitiesFunc(ctx)
}

func (mock *catalogServiceMock) ListOwnedEntitiesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListOwnedEntities.RLock()
	calls = mock.calls.ListOwnedEntities
	mock.lockListOwnedEntities.RUnlock()
	return calls
}

var _ interactionService = &interactionServiceMock{}

type interactionServiceMock struct {
	RequestInfoFunc func(ctx context.Context, input interaction.RequestInfoInput) (*domain.Entity, error)

	calls struct {
		RequestInfo []struct {
			Ctx   context.Context
			Input interaction.RequestInfoInput
		}
	}
	lockRequestInfo sync.RWMutex
}

func (mock *interactionServiceMock) RequestInfo(ctx context.Context, input interaction.RequestInfoInput) (*domain.Entity, error) {
	if mock.RequestInfoFunc == nil {
		panic("interactionServiceMock.RequestInfoFunc: method is nil but interactionService.RequestInfo was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input interaction.RequestInfoInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRequestInfo.Lock()
	mock.calls.RequestInfo = append(mock.calls.RequestInfo, callInfo)
	mock.lockRequestInfo.Unlock()
	return mock.RequestInfoFunc(ctx, input)
}

func (mock *interactionServiceMock) RequestInfoCalls() []struct {
	Ctx   context.Context
	Input interaction.RequestInfoInput
} {
	var calls []struct {
		Ctx   context.Context
		Input interaction.RequestInfoInput
	}
	mock.lockRequestInfo.RLock()
	calls = mock.calls.RequestInfo
	mock.lockRequestInfo.RUnlock()
	return calls
}

var _ marketplaceService = &marketplaceServiceMock{}

type marketplaceServiceMock struct {
	FacetsFunc             func(ctx context.Context, typeID string) ([]marketplace.Domain, error)
	ListPublicEntitiesFunc func(ctx context.Context, q domain.MarketplaceQuery) ([]domain.Entity, error)

	calls struct {
		Facets []struct {
			Ctx    context.Context
			TypeID string
		}
		ListPublicEntities []struct {
			Ctx context.Context
			Q   domain.MarketplaceQuery
		}
	}
	lockFacets             sync.RWMutex
	lockListPublicEntities sync.RWMutex
}

func (mock *marketplaceServiceMock) Facets(ctx context.Context, typeID string) ([]marketplace.Domain, error) {
	if mock.FacetsFunc == nil {
		panic("marketplaceServiceMock.FacetsFunc: method is nil but marketplaceService.Facets was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TypeID string
	}{
		Ctx:    ctx,
		TypeID: typeID,
	}
	mock.lockFacets.Lock()
	mock.calls.Facets = append(mock.calls.Facets, callInfo)
	mock.lockFacets.Unlock()
	return mock.FacetsFunc(ctx, typeID)
}

func (mock *marketplaceServiceMock) FacetsCalls() []struct {
	Ctx    context.Context
	TypeID string
} {
	var calls []struct {
		Ctx    context.Context
		TypeID string
	}
	mock.lockFacets.RLock()
	calls = mock.calls.Facets
	mock.lockFacets.RUnlock()
	return calls
}

func (mock *marketplaceServiceMock) ListPublicEntities(ctx context.Context, q domain.MarketplaceQuery) ([]domain.Entity, error) {
	if mock.ListPublicEntitiesFunc == nil {
		panic("marketplaceServiceMock.ListPublicEntitiesFunc: method is nil but marketplaceService.ListPublicEntities was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.MarketplaceQuery
	}{
		Ctx: ctx,
		Q:   q,
	}
	mock.lockListPublicEntities.Lock()
	mock.calls.ListPublicEntities = append(mock.calls.ListPublicEntities, callInfo)
	mock.lockListPublicEntities.Unlock()
	return mock.ListPublicEntitiesFunc(ctx, q)
}

func (mock *marketplaceServiceMock) ListPublicEntitiesCalls() []struct {
	Ctx context.Context
	Q   domain.MarketplaceQuery
} {
	var calls []struct {
		Ctx context.Context
		Q   domain.MarketplaceQuery
	}
	mock.lockListPublicEntities.RLock()
	calls = mock.calls.ListPublicEntities
	mock.lockListPublicEntities.RUnlock()
	return calls
}
