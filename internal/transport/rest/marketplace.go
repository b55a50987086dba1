package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/internal/service/marketplace"
	"github.com/heartmarshall/centralring-backend/internal/transport/dataloader"
)

type marketplaceService interface {
	ListPublicEntities(ctx context.Context, q domain.MarketplaceQuery) ([]domain.Entity, error)
	Facets(ctx context.Context, typeID string) ([]marketplace.Domain, error)
}

// MarketplaceHandler serves the public entity listing and its filter facets.
type MarketplaceHandler struct {
	svc marketplaceService
	log *slog.Logger
}

// NewMarketplaceHandler creates a MarketplaceHandler.
func NewMarketplaceHandler(svc marketplaceService, logger *slog.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{svc: svc, log: logger.With("handler", "marketplace")}
}

// ListPublicEntities handles GET /public/entities?typeId=car&f[color][]=red&f[model]=civ.
func (h *MarketplaceHandler) ListPublicEntities(w http.ResponseWriter, r *http.Request) {
	q, err := parseMarketplaceQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	entities, err := h.svc.ListPublicEntities(r.Context(), q)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	types, err := h.loadTypes(r.Context(), entities)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := make([]publicEntityResponse, 0, len(entities))
	for i := range entities {
		resp = append(resp, publicEntityResponse{
			entityResponse: toEntityResponse(&entities[i], false),
			EntityType:     toEntityTypeSummary(types[i]),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// loadTypes resolves each row's entity type through the request loader so
// that all rows cost one query. Without a loader rows carry no type.
func (h *MarketplaceHandler) loadTypes(ctx context.Context, entities []domain.Entity) ([]*domain.EntityType, error) {
	types := make([]*domain.EntityType, len(entities))
	loaders, ok := dataloader.FromContext(ctx)
	if !ok {
		return types, nil
	}

	thunks := make([]func() (*domain.EntityType, error), len(entities))
	for i := range entities {
		thunks[i] = loaders.EntityTypeByID.Load(ctx, entities[i].TypeID)
	}
	for i, thunk := range thunks {
		t, err := thunk()
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}

// Facets handles GET /public/entities/facets?typeId=car.
func (h *MarketplaceHandler) Facets(w http.ResponseWriter, r *http.Request) {
	typeID := r.URL.Query().Get("typeId")

	domains, err := h.svc.Facets(r.Context(), typeID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := facetsResponse{TypeID: typeID, Domains: make([]domainResponse, 0, len(domains))}
	for _, d := range domains {
		resp.Domains = append(resp.Domains, domainResponse{
			Name:   d.Name,
			Type:   d.Type,
			Values: d.Values,
			Widget: string(d.Widget),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseMarketplaceQuery reads typeId plus attribute filters encoded as
// f[name]=text for substring filters and f[name][]=value for multi-select.
// Filters come back sorted by name.
func parseMarketplaceQuery(values url.Values) (domain.MarketplaceQuery, error) {
	q := domain.MarketplaceQuery{TypeID: values.Get("typeId")}
	var errs []domain.FieldError

	for key, vals := range values {
		if !strings.HasPrefix(key, "f[") {
			continue
		}

		if name, ok := strings.CutSuffix(key[2:], "][]"); ok && name != "" && !strings.ContainsAny(name, "[]") {
			anyOf := make([]string, 0, len(vals))
			for _, v := range vals {
				if v != "" {
					anyOf = append(anyOf, v)
				}
			}
			q.Filters = append(q.Filters, domain.AttributeFilter{Name: name, AnyOf: anyOf})
			continue
		}
		if name, ok := strings.CutSuffix(key[2:], "]"); ok && name != "" && !strings.ContainsAny(name, "[]") {
			q.Filters = append(q.Filters, domain.AttributeFilter{Name: name, Text: vals[0]})
			continue
		}
		errs = append(errs, domain.FieldError{Field: key, Message: "malformed filter key"})
	}

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return domain.MarketplaceQuery{}, domain.NewValidationErrors(errs)
	}

	sort.SliceStable(q.Filters, func(i, j int) bool {
		if q.Filters[i].Name != q.Filters[j].Name {
			return q.Filters[i].Name < q.Filters[j].Name
		}
		return q.Filters[i].AnyOf == nil && q.Filters[j].AnyOf != nil
	})
	return q, nil
}
