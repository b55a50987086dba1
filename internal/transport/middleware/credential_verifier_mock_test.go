package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/centralring-backend/internal/auth"
)

// credentialVerifierMock is a mock implementation of credentialVerifier.
type credentialVerifierMock struct {
	// VerifyFunc mocks the Verify method.
	VerifyFunc func(ctx context.Context, token string) (*auth.Identity, error)

	// calls tracks calls to the methods.
	calls struct {
		// Verify holds details about calls to the Verify method.
		Verify []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Token is the token argument value.
			Token string
		}
	}
	lockVerify sync.RWMutex
}

// Verify calls VerifyFunc.
func (mock *credentialVerifierMock) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	if mock.VerifyFunc == nil {
		panic("credentialVerifierMock.VerifyFunc: method is nil but credentialVerifier.Verify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(ctx, token)
}

// VerifyCalls gets all the calls that were made to Verify.
func (mock *credentialVerifierMock) VerifyCalls() []struct {
	Ctx   context.Context
	Token string
} {
	var calls []struct {
		Ctx   context.Context
		Token string
	}
	mock.lockVerify.RLock()
	calls = mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
