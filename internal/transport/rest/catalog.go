package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/internal/service/catalog"
	"github.com/heartmarshall/centralring-backend/pkg/ctxutil"
)

type catalogService interface {
	CreateEntityType(ctx context.Context, input catalog.CreateEntityTypeInput) (*domain.EntityType, error)
	ListEntityTypes(ctx context.Context) ([]domain.EntityType, error)
	GetEntityType(ctx context.Context, id string) (*domain.EntityType, error)
	CreateEntity(ctx context.Context, input catalog.CreateEntityInput) (*domain.Entity, error)
	ListOwnedEntities(ctx context.Context) ([]domain.Entity, error)
	GetEntity(ctx context.Context, id string) (*domain.Entity, error)
}

// CatalogHandler serves entity types and the caller's entities.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// CreateEntityType handles POST /entity-types.
func (h *CatalogHandler) CreateEntityType(w http.ResponseWriter, r *http.Request) {
	var req entityTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, err := h.svc.CreateEntityType(r.Context(), catalog.CreateEntityTypeInput{
		ID:                   req.ID,
		Name:                 req.Name,
		Description:          req.Description,
		PredefinedAttributes: req.PredefinedAttributes,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntityTypeResponse(t))
}

// ListEntityTypes handles GET /entity-types.
func (h *CatalogHandler) ListEntityTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListEntityTypes(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := make([]entityTypeResponse, 0, len(types))
	for i := range types {
		resp = append(resp, toEntityTypeResponse(&types[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetEntityType handles GET /entity-types/{id}.
func (h *CatalogHandler) GetEntityType(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetEntityType(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityTypeResponse(t))
}

// CreateEntity handles POST /entities.
func (h *CatalogHandler) CreateEntity(w http.ResponseWriter, r *http.Request) {
	var req entityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	e, err := h.svc.CreateEntity(r.Context(), catalog.CreateEntityInput{
		ID:         req.ID,
		TypeID:     req.TypeID,
		Name:       req.Name,
		Attributes: req.Attributes,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntityResponse(e, true))
}

// ListOwnedEntities handles GET /entities.
func (h *CatalogHandler) ListOwnedEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.ListOwnedEntities(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := make([]entityResponse, 0, len(entities))
	for i := range entities {
		resp = append(resp, toEntityResponse(&entities[i], true))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetEntity handles GET /entities/{id}.
func (h *CatalogHandler) GetEntity(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetEntity(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(e, isOwner(r.Context(), e)))
}

func isOwner(ctx context.Context, e *domain.Entity) bool {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	return ok && e.IsOwnedBy(userID)
}
