package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const (
	maxIDLength          = 64
	maxNameLength        = 200
	maxDescriptionLength = 2000
	maxAttributes        = 100
)

// CreateEntityTypeInput holds the parameters for registering an entity type.
type CreateEntityTypeInput struct {
	ID                   string
	Name                 string
	Description          *string
	PredefinedAttributes []domain.Attribute
}

// Validate checks all fields and collects all errors.
func (i CreateEntityTypeInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateID("id", i.ID, true)...)

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(i.PredefinedAttributes) > maxAttributes {
		errs = append(errs, domain.FieldError{Field: "predefinedAttributes", Message: "max 100 attributes"})
	}
	errs = append(errs, domain.ValidateAttributes("predefinedAttributes", i.PredefinedAttributes, false)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateEntityInput holds the parameters for creating an entity. An empty
// ID lets the service generate one.
type CreateEntityInput struct {
	ID         string
	TypeID     string
	Name       string
	Attributes []domain.Attribute
}

// Validate checks all fields and collects all errors.
func (i CreateEntityInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateID("id", i.ID, false)...)
	errs = append(errs, validateID("typeId", i.TypeID, true)...)

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(i.Attributes) > maxAttributes {
		errs = append(errs, domain.FieldError{Field: "attributes", Message: "max 100 attributes"})
	}
	errs = append(errs, domain.ValidateAttributes("attributes", i.Attributes, true)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateID(field, id string, required bool) []domain.FieldError {
	switch {
	case id == "":
		if required {
			return []domain.FieldError{{Field: field, Message: "required"}}
		}
	case strings.TrimSpace(id) != id:
		return []domain.FieldError{{Field: field, Message: "must not have leading or trailing spaces"}}
	case len(id) > maxIDLength:
		return []domain.FieldError{{Field: field, Message: "max 64 characters"}}
	}
	return nil
}
