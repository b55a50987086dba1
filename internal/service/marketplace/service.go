// Package marketplace serves the public entity listing and its filters.
package marketplace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

//go:generate moq -out entity_repo_mock_test.go -pkg marketplace . entityRepo

type entityRepo interface {
	List(ctx context.Context, filter domain.EntityFilter) ([]domain.Entity, error)
}

// Service lists entities for the marketplace.
type Service struct {
	entities entityRepo
	log      *slog.Logger
}

// NewService creates a new marketplace service.
func NewService(log *slog.Logger, entities entityRepo) *Service {
	return &Service{
		entities: entities,
		log:      log.With("service", "marketplace"),
	}
}

// ListPublicEntities returns the public view of every entity matching q.
func (s *Service) ListPublicEntities(ctx context.Context, q domain.MarketplaceQuery) ([]domain.Entity, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	all, err := s.load(ctx, q.TypeID)
	if err != nil {
		return nil, err
	}

	matched := Apply(all, q.TypeID, q.Filters)
	out := make([]domain.Entity, 0, len(matched))
	for _, e := range matched {
		out = append(out, e.PublicView())
	}

	s.log.DebugContext(ctx, "marketplace listed",
		slog.String("type_id", q.TypeID),
		slog.Int("filters", len(q.Filters)),
		slog.Int("candidates", len(all)),
		slog.Int("matched", len(out)),
	)
	return out, nil
}

// Facets returns the filter domains of the entities of typeID, or of all
// entities when typeID is empty.
func (s *Service) Facets(ctx context.Context, typeID string) ([]Domain, error) {
	all, err := s.load(ctx, typeID)
	if err != nil {
		return nil, err
	}
	return Domains(Candidates(all, typeID)), nil
}

func (s *Service) load(ctx context.Context, typeID string) ([]domain.Entity, error) {
	var filter domain.EntityFilter
	if typeID != "" {
		filter.TypeID = &typeID
	}
	entities, err := s.entities.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return entities, nil
}

func validateQuery(q domain.MarketplaceQuery) error {
	var errs []domain.FieldError
	for i, f := range q.Filters {
		if f.Name == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("filters[%d].name", i), Message: "required"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
