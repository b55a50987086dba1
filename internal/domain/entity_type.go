package domain

import "time"

// EntityType is a named schema of predefined attributes. Types are
// registered once and never modified.
type EntityType struct {
	ID                   string
	Name                 string
	Description          *string
	PredefinedAttributes []Attribute
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Attribute returns the predefined attribute with the given name.
func (t *EntityType) Attribute(name string) (Attribute, bool) {
	for _, a := range t.PredefinedAttributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}
