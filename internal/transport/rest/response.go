package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	authsvc "github.com/heartmarshall/centralring-backend/internal/service/auth"
)

type errorResponse struct {
	Error  string           `json:"error"`
	Kind   domain.ErrorKind `json:"kind"`
	Fields []fieldError     `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var kindStatus = map[domain.ErrorKind]int{
	domain.KindValidation: http.StatusBadRequest,
	domain.KindNotFound:   http.StatusNotFound,
	domain.KindAuth:       http.StatusUnauthorized,
	domain.KindUpstream:   http.StatusBadGateway,
	domain.KindConflict:   http.StatusConflict,
	domain.KindInternal:   http.StatusInternalServerError,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps err onto the error envelope. Internal and upstream
// failures are logged and their details withheld from the client.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.KindOf(err)
	status := kindStatus[kind]
	resp := errorResponse{Error: err.Error(), Kind: kind}

	switch kind {
	case domain.KindValidation:
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			resp.Error = "validation failed"
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
		}
	case domain.KindAuth:
		resp.Error = authMessage(err)
	case domain.KindNotFound:
		resp.Error = "not found"
	case domain.KindConflict:
		resp.Error = "already exists"
	case domain.KindUpstream:
		log.ErrorContext(r.Context(), "upstream failure", slog.String("error", err.Error()))
		resp.Error = "upstream service unavailable"
		var ue *domain.UpstreamError
		if errors.As(err, &ue) {
			resp.Error = fmt.Sprintf("upstream %s unavailable", ue.Service)
		}
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		resp.Error = "internal server error"
	}

	writeJSON(w, status, resp)
}

// authMessage keeps the wrapped reason only for the OTP flow, whose
// message is part of the contract.
func authMessage(err error) string {
	if errors.Is(err, authsvc.ErrInvalidOTP) {
		return "invalid or expired OTP"
	}
	return "unauthorized"
}

// decodeJSON reads exactly one JSON value with no unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "required")
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", "too large")
		default:
			return domain.NewValidationError("body", err.Error())
		}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "must contain a single JSON value")
	}
	return nil
}
