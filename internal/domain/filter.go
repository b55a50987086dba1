package domain

import "github.com/google/uuid"

// EntityFilter narrows entity listings at the store level.
type EntityFilter struct {
	OwnerID *uuid.UUID
	TypeID  *string
	Limit   int
}

// AttributeFilter is one predicate of a marketplace search. A non-nil AnyOf
// is a multi-select filter, otherwise Text is matched as a substring.
type AttributeFilter struct {
	Name  string
	Text  string
	AnyOf []string
}

// IsActive reports whether the filter constrains anything.
func (f AttributeFilter) IsActive() bool {
	if f.AnyOf != nil {
		return len(f.AnyOf) > 0
	}
	return f.Text != ""
}

// MarketplaceQuery selects and filters entities for the public listing.
type MarketplaceQuery struct {
	TypeID  string
	Filters []AttributeFilter
}
