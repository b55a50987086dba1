package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Entity is a record instantiating an entity type, owned by the user who created it.
type Entity struct {
	ID         string
	TypeID     string
	Name       string
	Attributes []Attribute
	OwnerID    uuid.UUID

	// MissingInfoAttributes is fixed when the entity is created and is not
	// recomputed when attribute values change later.
	MissingInfoAttributes []string
	RequestedByUsers      []uuid.UUID
	InteractionLog        []InteractionLogEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InteractionLogEntry is one immutable record in an entity's interaction log.
type InteractionLogEntry struct {
	Timestamp time.Time
	UserID    uuid.UUID
	Action    InteractionAction
	Details   json.RawMessage
}

// InfoRequestDetails is the details payload of an attribute_requested entry.
type InfoRequestDetails struct {
	Message        string   `json:"message,omitempty"`
	AttributeNames []string `json:"attributeNames"`
}

// IsOwnedBy reports whether userID owns the entity.
func (e *Entity) IsOwnedBy(userID uuid.UUID) bool {
	return e.OwnerID == userID
}

// Attribute returns the attribute with the given name.
func (e *Entity) Attribute(name string) (Attribute, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// PublicView returns a copy without the owner-only request state.
func (e Entity) PublicView() Entity {
	e.MissingInfoAttributes = nil
	e.RequestedByUsers = nil
	e.InteractionLog = nil
	return e
}
