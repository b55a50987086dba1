// Package dataloader provides per-request DataLoaders that batch the entity
// type lookups made while rendering marketplace rows into single SQL calls.
package dataloader

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type entityTypeRepo interface {
	GetByIDs(ctx context.Context, ids []string) ([]domain.EntityType, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	EntityType entityTypeRepo
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	// EntityTypeByID yields nil for ids with no registered type.
	EntityTypeByID *dataloader.Loader[string, *domain.EntityType]
}

// NewLoaders must be called per request: loaders cache results for their
// whole lifetime.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		EntityTypeByID: newLoader(newEntityTypeBatchFn(repos.EntityType)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

func newEntityTypeBatchFn(repo entityTypeRepo) dataloader.BatchFunc[string, *domain.EntityType] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.EntityType] {
		types, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.EntityType], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.EntityType]{Error: err}
			}
			return results
		}

		byID := make(map[string]*domain.EntityType, len(types))
		for i := range types {
			byID[types[i].ID] = &types[i]
		}

		results := make([]*dataloader.Result[*domain.EntityType], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.EntityType]{Data: byID[key]}
		}
		return results
	}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's loaders, or false when the middleware
// did not run.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
