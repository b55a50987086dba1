package rest

import (
	"net/http"

	"github.com/heartmarshall/centralring-backend/internal/transport/dataloader"
	"github.com/heartmarshall/centralring-backend/internal/transport/middleware"
)

// RouterDeps holds everything the route table is built from. Metrics and
// RateLimit are optional.
type RouterDeps struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Catalog     *CatalogHandler
	Interaction *InteractionHandler
	Marketplace *MarketplaceHandler
	Loaders     *dataloader.Repos
	Metrics     *middleware.Metrics
	RateLimit   middleware.Middleware
}

// NewRouter registers every route. The returned handler expects the Auth
// middleware to have run so protected routes can find the caller.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	limited := func(h http.HandlerFunc) http.Handler {
		if d.RateLimit == nil {
			return h
		}
		return d.RateLimit(h)
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}

	mux.HandleFunc("GET /{$}", d.Health.Root)
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics.Handler())
	}

	mux.Handle("POST /auth/send-otp", limited(d.Auth.SendOTP))
	mux.Handle("POST /auth/verify-otp", limited(d.Auth.VerifyOTP))
	mux.Handle("GET /auth/me", protected(d.Auth.Me))

	mux.Handle("POST /entity-types", protected(d.Catalog.CreateEntityType))
	mux.HandleFunc("GET /entity-types", d.Catalog.ListEntityTypes)
	mux.HandleFunc("GET /entity-types/{id}", d.Catalog.GetEntityType)

	mux.Handle("POST /entities", protected(d.Catalog.CreateEntity))
	mux.Handle("GET /entities", protected(d.Catalog.ListOwnedEntities))
	mux.HandleFunc("GET /entities/{id}", d.Catalog.GetEntity)
	mux.Handle("POST /entities/{id}/request-info", protected(d.Interaction.RequestInfo))

	mux.Handle("GET /public/entities", dataloader.Middleware(d.Loaders)(http.HandlerFunc(d.Marketplace.ListPublicEntities)))
	mux.HandleFunc("GET /public/entities/facets", d.Marketplace.Facets)

	if d.Metrics != nil {
		return d.Metrics.Instrument(mux)
	}
	return mux
}
