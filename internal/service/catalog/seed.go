package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

func attr(name string, typ domain.AttributeType, required bool) domain.Attribute {
	return domain.Attribute{Name: name, Type: typ, Required: required}
}

func withDefault(a domain.Attribute, v domain.Value) domain.Attribute {
	a.DefaultValue = v
	return a
}

func ptr(s string) *string { return &s }

// BuiltinTypes returns the entity types every installation starts with.
func BuiltinTypes() []domain.EntityType {
	return []domain.EntityType{
		{
			ID:          "car",
			Name:        "Car",
			Description: ptr("Passenger vehicles offered for sale"),
			PredefinedAttributes: []domain.Attribute{
				attr("make", domain.AttributeTypeString, true),
				attr("model", domain.AttributeTypeString, true),
				attr("year", domain.AttributeTypeNumber, true),
				attr("color", domain.AttributeTypeString, false),
				attr("mileage", domain.AttributeTypeNumber, false),
				withDefault(attr("electric", domain.AttributeTypeBoolean, false), domain.BoolValue(false)),
			},
		},
		{
			ID:          "property",
			Name:        "Property",
			Description: ptr("Houses, apartments and land"),
			PredefinedAttributes: []domain.Attribute{
				attr("address", domain.AttributeTypeString, true),
				attr("area", domain.AttributeTypeNumber, true),
				attr("bedrooms", domain.AttributeTypeNumber, false),
				attr("bathrooms", domain.AttributeTypeNumber, false),
				attr("listedOn", domain.AttributeTypeDate, false),
				attr("hasParking", domain.AttributeTypeBoolean, false),
			},
		},
		{
			ID:          "book",
			Name:        "Book",
			Description: ptr("Printed and electronic books"),
			PredefinedAttributes: []domain.Attribute{
				attr("author", domain.AttributeTypeString, true),
				attr("isbn", domain.AttributeTypeString, false),
				attr("published", domain.AttributeTypeDate, false),
				attr("pages", domain.AttributeTypeNumber, false),
				attr("genre", domain.AttributeTypeString, false),
			},
		},
		{
			ID:          "software",
			Name:        "Software",
			Description: ptr("Applications, libraries and services"),
			PredefinedAttributes: []domain.Attribute{
				attr("version", domain.AttributeTypeString, true),
				attr("license", domain.AttributeTypeString, true),
				withDefault(attr("openSource", domain.AttributeTypeBoolean, false), domain.BoolValue(true)),
				attr("releaseDate", domain.AttributeTypeDate, false),
				attr("platforms", domain.AttributeTypeJSON, false),
			},
		},
	}
}

// SeedBuiltinTypes registers the built-in types in one transaction,
// skipping ids that already exist. It returns how many were created.
func (s *Service) SeedBuiltinTypes(ctx context.Context) (int, error) {
	var created int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()
		for _, t := range BuiltinTypes() {
			t.CreatedAt, t.UpdatedAt = now, now

			ok, err := s.types.CreateIfNotExists(txCtx, &t)
			if err != nil {
				return fmt.Errorf("seed entity type %s: %w", t.ID, err)
			}
			if ok {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "builtin entity types seeded", slog.Int("created", created))
	return created, nil
}
