package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/centralring-backend/internal/domain"
	"sync"
	"time"
)

var _ otpStore = &otpStoreMock{}

type otpStoreMock struct {
	DeleteFunc            func(ctx context.Context, email string) error
	GetFunc               func(ctx context.Context, email string) (*domain.OTPCode, error)
	IncrementAttemptsFunc func(ctx context.Context, email string) (int, error)
	SaveFunc              func(ctx context.Context, code *domain.OTPCode) error

	calls struct {
		Delete []struct {
			Ctx   context.Context
			Email string
		}
		Get []struct {
			Ctx   context.Context
			Email string
		}
		IncrementAttempts []struct {
			Ctx   context.Context
			Email string
		}
		Save []struct {
			Ctx  context.Context
			Code *domain.OTPCode
		}
	}
	lockDelete            sync.RWMutex
	lockGet               sync.RWMutex
	lockIncrementAttempts sync.RWMutex
	lockSave              sync.RWMutex
}

func (mock *otpStoreMock) Delete(ctx context.Context, email string) error {
	if mock.DeleteFunc == nil {
		panic("otpStoreMock.DeleteFunc: method is nil but otpStore.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, email)
}

func (mock *otpStoreMock) DeleteCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *otpStoreMock) Get(ctx context.Context, email string) (*domain.OTPCode, error) {
	if mock.GetFunc == nil {
		panic("otpStoreMock.GetFunc: method is nil but otpStore.Get was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, email)
}

func (mock *otpStoreMock) GetCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *otpStoreMock) IncrementAttempts(ctx context.Context, email string) (int, error) {
	if mock.IncrementAttemptsFunc == nil {
		panic("otpStoreMock.IncrementAttemptsFunc: method is nil but otpStore.IncrementAttempts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockIncrementAttempts.Lock()
	mock.calls.IncrementAttempts = append(mock.calls.IncrementAttempts, callInfo)
	mock.lockIncrementAttempts.Unlock()
	return mock.IncrementAttemptsFunc(ctx, email)
}

func (mock *otpStoreMock) IncrementAttemptsCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockIncrementAttempts.RLock()
	calls = mock.calls.IncrementAttempts
	mock.lockIncrementAttempts.RUnlock()
	return calls
}

func (mock *otpStoreMock) Save(ctx context.Context, code *domain.OTPCode) error {
	if mock.SaveFunc == nil {
		panic("otpStoreMock.SaveFunc: method is nil but otpStore.Save was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code *domain.OTPCode
	}{
		Ctx:  ctx,
		Code: code,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, code)
}

func (mock *otpStoreMock) SaveCalls() []struct {
	Ctx  context.Context
	Code *domain.OTPCode
} {
	var calls []struct {
		Ctx  context.Context
		Code *domain.OTPCode
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateOrGetFunc func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		CreateOrGet []struct {
			Ctx  context.Context
			User *domain.User
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreateOrGet sync.RWMutex
	lockGetByID     sync.RWMutex
}

func (mock *userRepoMock) CreateOrGet(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateOrGetFunc == nil {
		panic("userRepoMock.CreateOrGetFunc: method is nil but userRepo.CreateOrGet was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{
		Ctx:  ctx,
		User: user,
	}
	mock.lockCreateOrGet.Lock()
	mock.calls.CreateOrGet = append(mock.calls.CreateOrGet, callInfo)
	mock.lockCreateOrGet.Unlock()
	return mock.CreateOrGetFunc(ctx, user)
}

func (mock *userRepoMock) CreateOrGetCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	var calls []struct {
		Ctx  context.Context
		User *domain.User
	}
	mock.lockCreateOrGet.RLock()
	calls = mock.calls.CreateOrGet
	mock.lockCreateOrGet.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendOTPFunc func(ctx context.Context, to string, code string) error

	calls struct {
		SendOTP []struct {
			Ctx  context.Context
			To   string
			Code string
		}
	}
	lockSendOTP sync.RWMutex
}

func (mock *mailerMock) SendOTP(ctx context.Context, to string, code string) error {
	if mock.SendOTPFunc == nil {
		panic("mailerMock.SendOTPFunc: method is nil but mailer.SendOTP was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		To   string
		Code string
	}{
		Ctx:  ctx,
		To:   to,
		Code: code,
	}
	mock.lockSendOTP.Lock()
	mock.calls.SendOTP = append(mock.calls.SendOTP, callInfo)
	mock.lockSendOTP.Unlock()
	return mock.SendOTPFunc(ctx, to, code)
}

func (mock *mailerMock) SendOTPCalls() []struct {
	Ctx  context.Context
	To   string
	Code string
} {
	var calls []struct {
		Ctx  context.Context
		To   string
		Code string
	}
	mock.lockSendOTP.RLock()
	calls = mock.calls.SendOTP
	mock.lockSendOTP.RUnlock()
	return calls
}

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	AccessTTLFunc           func() time.Duration
	GenerateAccessTokenFunc func(userID uuid.UUID, email string) (string, error)

	calls struct {
		AccessTTL []struct {
		}
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Email  string
		}
	}
	lockAccessTTL           sync.RWMutex
	lockGenerateAccessToken sync.RWMutex
}

func (mock *tokenIssuerMock) AccessTTL() time.Duration {
	if mock.AccessTTLFunc == nil {
		panic("tokenIssuerMock.AccessTTLFunc: method is nil but tokenIssuer.AccessTTL was just called")
	}
	callInfo := struct {
	}{}
	mock.lockAccessTTL.Lock()
	mock.calls.AccessTTL = append(mock.calls.AccessTTL, callInfo)
	mock.lockAccessTTL.Unlock()
	return mock.AccessTTLFunc()
}

func (mock *tokenIssuerMock) AccessTTLCalls() []struct {
} {
	var calls []struct {
	}
	mock.lockAccessTTL.RLock()
	calls = mock.calls.AccessTTL
	mock.lockAccessTTL.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Email  string
	}{
		UserID: userID,
		Email:  email,
	}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, email)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Email  string
} {
	var calls []struct {
		UserID uuid.UUID
		Email  string
	}
	mock.lockGenerateAccessToken.RLock()
	calls = mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}
