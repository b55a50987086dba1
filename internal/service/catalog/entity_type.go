package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/pkg/ctxutil"
)

// CreateEntityType registers a new entity type. A duplicate id fails with
// domain.ErrAlreadyExists and leaves the stored type untouched.
func (s *Service) CreateEntityType(ctx context.Context, input CreateEntityTypeInput) (*domain.EntityType, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	t := &domain.EntityType{
		ID:                   input.ID,
		Name:                 strings.TrimSpace(input.Name),
		Description:          trimOrNil(input.Description),
		PredefinedAttributes: normalizeAttributes(input.PredefinedAttributes),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := s.types.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create entity type: %w", err)
	}

	s.log.InfoContext(ctx, "entity type created",
		slog.String("type_id", created.ID),
		slog.String("user_id", caller.UserID.String()),
		slog.Int("attributes", len(created.PredefinedAttributes)),
	)

	return created, nil
}

// ListEntityTypes returns every registered type ordered by name.
func (s *Service) ListEntityTypes(ctx context.Context) ([]domain.EntityType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entity types: %w", err)
	}
	return types, nil
}

// GetEntityType returns one registered type.
func (s *Service) GetEntityType(ctx context.Context, id string) (*domain.EntityType, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	t, err := s.types.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entity type: %w", err)
	}
	return t, nil
}

// normalizeAttributes trims attribute names. Predefined attributes are
// schema-defined, so IsUserDefined is cleared.
func normalizeAttributes(attrs []domain.Attribute) []domain.Attribute {
	out := make([]domain.Attribute, 0, len(attrs))
	for _, a := range attrs {
		a.Name = strings.TrimSpace(a.Name)
		a.IsUserDefined = false
		out = append(out, a)
	}
	return out
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
