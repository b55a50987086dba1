// Package interaction records information requests against entities.
package interaction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/centralring-backend/internal/domain"
	"github.com/heartmarshall/centralring-backend/pkg/ctxutil"
)

//go:generate moq -out entity_repo_mock_test.go -pkg interaction . entityRepo

type entityRepo interface {
	AppendInfoRequest(ctx context.Context, id string, userID uuid.UUID, entry domain.InteractionLogEntry) (*domain.Entity, error)
}

const maxMessageLength = 2000

// Service tracks who asked for what on which entity.
type Service struct {
	entities entityRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new interaction service.
func NewService(log *slog.Logger, entities entityRepo) *Service {
	return &Service{
		entities: entities,
		log:      log.With("service", "interaction"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RequestInfoInput holds the parameters of an information request.
// Attribute names are recorded as given and not checked against the type.
type RequestInfoInput struct {
	EntityID       string
	Message        string
	AttributeNames []string
}

// Validate checks all fields and collects all errors.
func (i RequestInfoInput) Validate() error {
	var errs []domain.FieldError

	if i.EntityID == "" {
		errs = append(errs, domain.FieldError{Field: "entityId", Message: "required"})
	}
	if utf8.RuneCountInString(i.Message) > maxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RequestInfo adds the caller to the entity's requested-by set and appends
// one attribute_requested entry to its interaction log. Repeated requests
// keep a single set membership but log every call. Owners may request info
// on their own entities.
func (s *Service) RequestInfo(ctx context.Context, input RequestInfoInput) (*domain.Entity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	names := input.AttributeNames
	if names == nil {
		names = []string{}
	}
	details, err := json.Marshal(domain.InfoRequestDetails{
		Message:        strings.TrimSpace(input.Message),
		AttributeNames: names,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request details: %w", err)
	}

	e, err := s.entities.AppendInfoRequest(ctx, input.EntityID, userID, domain.InteractionLogEntry{
		Timestamp: s.now(),
		UserID:    userID,
		Action:    domain.ActionAttributeRequested,
		Details:   details,
	})
	if err != nil {
		return nil, fmt.Errorf("request info: %w", err)
	}

	s.log.InfoContext(ctx, "info requested",
		slog.String("entity_id", e.ID),
		slog.String("user_id", userID.String()),
		slog.Int("attributes", len(names)),
	)

	if e.IsOwnedBy(userID) {
		return e, nil
	}
	view := e.PublicView()
	return &view, nil
}
