package rest

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/centralring-backend/internal/domain"
)

type entityTypeRequest struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Description          *string            `json:"description"`
	PredefinedAttributes []domain.Attribute `json:"predefinedAttributes"`
}

type entityTypeResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Description          *string            `json:"description,omitempty"`
	PredefinedAttributes []domain.Attribute `json:"predefinedAttributes"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

type entityTypeSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type entityRequest struct {
	ID         string             `json:"id"`
	TypeID     string             `json:"typeId"`
	Name       string             `json:"name"`
	Attributes []domain.Attribute `json:"attributes"`
}

type entityResponse struct {
	ID         string             `json:"id"`
	TypeID     string             `json:"typeId"`
	Name       string             `json:"name"`
	Attributes []domain.Attribute `json:"attributes"`
	OwnerID    string             `json:"ownerId"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`

	// Present for the owner only.
	*ownerFields
}

type ownerFields struct {
	MissingInfoAttributes []string           `json:"missingInfoAttributes"`
	RequestedByUsers      []string           `json:"requestedByUsers"`
	InteractionLog        []logEntryResponse `json:"interactionLog"`
}

type logEntryResponse struct {
	Timestamp time.Time       `json:"timestamp"`
	UserID    string          `json:"userId"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details,omitempty"`
}

type publicEntityResponse struct {
	entityResponse
	EntityType *entityTypeSummary `json:"entityType"`
}

type requestInfoRequest struct {
	Message        string   `json:"message"`
	AttributeNames []string `json:"attributeNames"`
}

type domainResponse struct {
	Name   string               `json:"name"`
	Type   domain.AttributeType `json:"type"`
	Values []string             `json:"values"`
	Widget string               `json:"widget"`
}

type facetsResponse struct {
	TypeID  string           `json:"typeId,omitempty"`
	Domains []domainResponse `json:"domains"`
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type sessionResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int64        `json:"expiresIn"`
	User        userResponse `json:"user"`
}

type meResponse struct {
	UserID   string        `json:"userId"`
	Email    string        `json:"email,omitempty"`
	Provider string        `json:"provider"`
	User     *userResponse `json:"user,omitempty"`
}

func toEntityTypeResponse(t *domain.EntityType) entityTypeResponse {
	return entityTypeResponse{
		ID:                   t.ID,
		Name:                 t.Name,
		Description:          t.Description,
		PredefinedAttributes: nonNilAttributes(t.PredefinedAttributes),
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

func toEntityTypeSummary(t *domain.EntityType) *entityTypeSummary {
	if t == nil {
		return nil
	}
	return &entityTypeSummary{ID: t.ID, Name: t.Name, Description: t.Description}
}

// toEntityResponse renders e. withOwnerFields adds the request state that
// only the owner may see.
func toEntityResponse(e *domain.Entity, withOwnerFields bool) entityResponse {
	resp := entityResponse{
		ID:         e.ID,
		TypeID:     e.TypeID,
		Name:       e.Name,
		Attributes: nonNilAttributes(e.Attributes),
		OwnerID:    e.OwnerID.String(),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if !withOwnerFields {
		return resp
	}

	of := &ownerFields{
		MissingInfoAttributes: make([]string, 0, len(e.MissingInfoAttributes)),
		RequestedByUsers:      make([]string, 0, len(e.RequestedByUsers)),
		InteractionLog:        make([]logEntryResponse, 0, len(e.InteractionLog)),
	}
	of.MissingInfoAttributes = append(of.MissingInfoAttributes, e.MissingInfoAttributes...)
	for _, id := range e.RequestedByUsers {
		of.RequestedByUsers = append(of.RequestedByUsers, id.String())
	}
	for _, entry := range e.InteractionLog {
		of.InteractionLog = append(of.InteractionLog, logEntryResponse{
			Timestamp: entry.Timestamp,
			UserID:    entry.UserID.String(),
			Action:    entry.Action.String(),
			Details:   entry.Details,
		})
	}
	resp.ownerFields = of
	return resp
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID.String(), Email: u.Email, CreatedAt: u.CreatedAt}
}

func nonNilAttributes(attrs []domain.Attribute) []domain.Attribute {
	if attrs == nil {
		return []domain.Attribute{}
	}
	return attrs
}
