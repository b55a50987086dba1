package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/pkg/ctxutil"
)

// CreateEntity creates an entity owned by the caller. When the type is
// registered, predefined attributes the caller left out are copied from it
// with their default values. An unregistered type is accepted and logged.
func (s *Service) CreateEntity(ctx context.Context, input CreateEntityInput) (*domain.Entity, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	attrs := normalizeEntityAttributes(input.Attributes)

	t, err := s.types.GetByID(ctx, input.TypeID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "entity created with unregistered type",
			slog.String("type_id", input.TypeID),
			slog.String("user_id", caller.UserID.String()),
		)
	case err != nil:
		return nil, fmt.Errorf("resolve entity type: %w", err)
	default:
		if attrs, err = mergeWithType(t, attrs); err != nil {
			return nil, err
		}
	}

	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := s.now()
	e := &domain.Entity{
		ID:                    id,
		TypeID:                input.TypeID,
		Name:                  strings.TrimSpace(input.Name),
		Attributes:            attrs,
		OwnerID:               caller.UserID,
		MissingInfoAttributes: domain.MissingAttributes(attrs),
		RequestedByUsers:      []uuid.UUID{},
		InteractionLog:        []domain.InteractionLogEntry{},
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := s.entities.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("create entity: %w", err)
	}

	s.log.InfoContext(ctx, "entity created",
		slog.String("entity_id", created.ID),
		slog.String("type_id", created.TypeID),
		slog.Int("missing", len(created.MissingInfoAttributes)),
	)

	return created, nil
}

// ListOwnedEntities returns the caller's entities, newest first.
func (s *Service) ListOwnedEntities(ctx context.Context) ([]domain.Entity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entities, err := s.entities.List(ctx, domain.EntityFilter{OwnerID: &userID})
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return entities, nil
}

// GetEntity returns one entity. Anonymous callers and callers other than
// the owner get the public view.
func (s *Service) GetEntity(ctx context.Context, id string) (*domain.Entity, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	e, err := s.entities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}

	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok && e.IsOwnedBy(userID) {
		return e, nil
	}
	view := e.PublicView()
	return &view, nil
}

func normalizeEntityAttributes(attrs []domain.Attribute) []domain.Attribute {
	out := make([]domain.Attribute, 0, len(attrs))
	for _, a := range attrs {
		a.Name = strings.TrimSpace(a.Name)
		out = append(out, a)
	}
	return out
}

// mergeWithType lays the caller's attributes over the type's schema.
// Predefined attributes come first in schema order, keeping the schema's
// type and required flag; the caller's extra attributes follow as
// user-defined ones.
func mergeWithType(t *domain.EntityType, given []domain.Attribute) ([]domain.Attribute, error) {
	byName := make(map[string]int, len(given))
	for i, a := range given {
		byName[a.Name] = i
	}

	var errs []domain.FieldError
	used := make(map[string]struct{}, len(t.PredefinedAttributes))
	out := make([]domain.Attribute, 0, len(t.PredefinedAttributes)+len(given))

	for _, def := range t.PredefinedAttributes {
		used[def.Name] = struct{}{}

		attr := def
		attr.IsUserDefined = false
		i, sent := byName[def.Name]
		if !sent {
			attr.Value = def.DefaultValue
			out = append(out, attr)
			continue
		}

		g := given[i]
		if g.Type != def.Type {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("attributes[%d].type", i),
				Message: fmt.Sprintf("must be %s as defined by entity type %s", def.Type, t.ID),
			})
			continue
		}
		attr.Value = g.Value
		attr.NotApplicable = g.NotApplicable
		out = append(out, attr)
	}

	for _, g := range given {
		if _, ok := used[g.Name]; ok {
			continue
		}
		g.IsUserDefined = true
		out = append(out, g)
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return out, nil
}
