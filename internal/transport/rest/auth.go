package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/centralring-backend/internal/service/auth"
)

type authService interface {
	SendOTP(ctx context.Context, input auth.SendOTPInput) error
	VerifyOTP(ctx context.Context, input auth.VerifyOTPInput) (*auth.Session, error)
	Me(ctx context.Context) (*auth.Me, error)
}

// AuthHandler serves the passwordless sign-in endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

// SendOTP handles POST /auth/send-otp.
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.SendOTP(r.Context(), auth.SendOTPInput{Email: req.Email}); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "OTP sent"})
}

// VerifyOTP handles POST /auth/verify-otp.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	session, err := h.svc.VerifyOTP(r.Context(), auth.VerifyOTPInput{Email: req.Email, Token: req.Token})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   int64(session.ExpiresIn.Seconds()),
		User:        toUserResponse(session.User),
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	me, err := h.svc.Me(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := meResponse{UserID: me.UserID, Email: me.Email, Provider: me.Provider}
	if me.User != nil {
		u := toUserResponse(me.User)
		resp.User = &u
	}
	writeJSON(w, http.StatusOK, resp)
}
