// Package catalog implements the schema registry and the entity store.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

//go:generate moq -out catalog_mock_test.go -pkg catalog . entityTypeRepo entityRepo txManager

type entityTypeRepo interface {
	Create(ctx context.Context, t *domain.EntityType) (*domain.EntityType, error)
	CreateIfNotExists(ctx context.Context, t *domain.EntityType) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.EntityType, error)
	List(ctx context.Context) ([]domain.EntityType, error)
}

type entityRepo interface {
	Create(ctx context.Context, e *domain.Entity) (*domain.Entity, error)
	GetByID(ctx context.Context, id string) (*domain.Entity, error)
	List(ctx context.Context, filter domain.EntityFilter) ([]domain.Entity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides entity type and entity operations.
type Service struct {
	types    entityTypeRepo
	entities entityRepo
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	types entityTypeRepo,
	entities entityRepo,
	tx txManager,
) *Service {
	return &Service{
		types:    types,
		entities: entities,
		tx:       tx,
		log:      log.With("service", "catalog"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}
