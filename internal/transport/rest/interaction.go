package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/internal/service/interaction"
)

type interactionService interface {
	RequestInfo(ctx context.Context, input interaction.RequestInfoInput) (*domain.Entity, error)
}

// InteractionHandler records requests for missing entity information.
type InteractionHandler struct {
	svc interactionService
	log *slog.Logger
}

// NewInteractionHandler creates an InteractionHandler.
func NewInteractionHandler(svc interactionService, logger *slog.Logger) *InteractionHandler {
	return &InteractionHandler{svc: svc, log: logger.With("handler", "interaction")}
}

// RequestInfo handles POST /entities/{id}/request-info. The body is
// optional.
func (h *InteractionHandler) RequestInfo(w http.ResponseWriter, r *http.Request) {
	var req requestInfoRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, h.log, err)
			return
		}
	}

	e, err := h.svc.RequestInfo(r.Context(), interaction.RequestInfoInput{
		EntityID:       r.PathValue("id"),
		Message:        req.Message,
		AttributeNames: req.AttributeNames,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntityResponse(e, isOwner(r.Context(), e)))
}
