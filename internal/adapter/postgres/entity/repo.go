// Package entity implements the entity store on PostgreSQL.
package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/centralring-backend/internal/adapter/postgres"
	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const table = "entities"

var columns = []string{
	"id", "type_id", "name", "attributes", "owner_id",
	"missing_info_attributes", "requested_by_users", "interaction_log",
	"created_at", "updated_at",
}

type row struct {
	ID                    string      `db:"id"`
	TypeID                string      `db:"type_id"`
	Name                  string      `db:"name"`
	Attributes            []byte      `db:"attributes"`
	OwnerID               uuid.UUID   `db:"owner_id"`
	MissingInfoAttributes []string    `db:"missing_info_attributes"`
	RequestedByUsers      []uuid.UUID `db:"requested_by_users"`
	InteractionLog        []byte      `db:"interaction_log"`
	CreatedAt             time.Time   `db:"created_at"`
	UpdatedAt             time.Time   `db:"updated_at"`
}

// logEntry is the stored JSON shape of one interaction log entry.
type logEntry struct {
	Timestamp time.Time                `json:"timestamp"`
	UserID    uuid.UUID                `json:"userId"`
	Action    domain.InteractionAction `json:"action"`
	Details   json.RawMessage          `json:"details,omitempty"`
}

// Repo provides entity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new entity. A duplicate id fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.Entity) (*domain.Entity, error) {
	attrs, err := json.Marshal(nonNilAttrs(e.Attributes))
	if err != nil {
		return nil, fmt.Errorf("encode attributes: %w", err)
	}
	log, err := encodeLog(e.InteractionLog)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			e.ID, e.TypeID, e.Name, attrs, e.OwnerID,
			nonNilStrings(e.MissingInfoAttributes), nonNilUUIDs(e.RequestedByUsers), log,
			e.CreatedAt, e.UpdatedAt,
		).
		Suffix(returning())

	return r.getOne(ctx, q, e.ID)
}

// GetByID returns the entity with the given id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Entity, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, q, id)
}

// List returns entities matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.EntityFilter) ([]domain.Entity, error) {
	q := postgres.Builder().Select(columns...).From(table)
	if filter.OwnerID != nil {
		q = q.Where(squirrel.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.TypeID != nil {
		q = q.Where(squirrel.Eq{"type_id": *filter.TypeID})
	}
	q = q.OrderBy("created_at DESC", "id ASC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entity query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "entities", "")
	}

	out := make([]domain.Entity, 0, len(rows))
	for _, rw := range rows {
		e, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// AppendInfoRequest adds userID to the entity's requested-by set (a no-op
// when already present) and appends entry to its interaction log. Both
// changes are made by a single UPDATE so neither can persist without the
// other. An unknown id fails with domain.ErrNotFound and writes nothing.
func (r *Repo) AppendInfoRequest(ctx context.Context, id string, userID uuid.UUID, entry domain.InteractionLogEntry) (*domain.Entity, error) {
	appended, err := encodeLog([]domain.InteractionLogEntry{entry})
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().
		Update(table).
		Set("requested_by_users", squirrel.Expr(
			"CASE WHEN ?::uuid = ANY(requested_by_users) THEN requested_by_users ELSE array_append(requested_by_users, ?::uuid) END",
			userID, userID,
		)).
		Set("interaction_log", squirrel.Expr("interaction_log || ?::jsonb", appended)).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning())

	return r.getOne(ctx, q, id)
}

func (r *Repo) getOne(ctx context.Context, q squirrel.Sqlizer, id string) (*domain.Entity, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entity query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "entity", id)
	}

	e, err := toDomain(rw)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func encodeLog(entries []domain.InteractionLogEntry) ([]byte, error) {
	out := make([]logEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, logEntry{
			Timestamp: e.Timestamp.UTC(),
			UserID:    e.UserID,
			Action:    e.Action,
			Details:   e.Details,
		})
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode interaction log: %w", err)
	}
	return b, nil
}

func toDomain(rw row) (domain.Entity, error) {
	var attrs []domain.Attribute
	if len(rw.Attributes) > 0 {
		if err := json.Unmarshal(rw.Attributes, &attrs); err != nil {
			return domain.Entity{}, fmt.Errorf("decode attributes of %s: %w", rw.ID, err)
		}
	}

	var stored []logEntry
	if len(rw.InteractionLog) > 0 {
		if err := json.Unmarshal(rw.InteractionLog, &stored); err != nil {
			return domain.Entity{}, fmt.Errorf("decode interaction log of %s: %w", rw.ID, err)
		}
	}
	log := make([]domain.InteractionLogEntry, 0, len(stored))
	for _, s := range stored {
		log = append(log, domain.InteractionLogEntry{
			Timestamp: s.Timestamp,
			UserID:    s.UserID,
			Action:    s.Action,
			Details:   s.Details,
		})
	}

	return domain.Entity{
		ID:                    rw.ID,
		TypeID:                rw.TypeID,
		Name:                  rw.Name,
		Attributes:            nonNilAttrs(attrs),
		OwnerID:               rw.OwnerID,
		MissingInfoAttributes: nonNilStrings(rw.MissingInfoAttributes),
		RequestedByUsers:      nonNilUUIDs(rw.RequestedByUsers),
		InteractionLog:        log,
		CreatedAt:             rw.CreatedAt,
		UpdatedAt:             rw.UpdatedAt,
	}, nil
}

func nonNilAttrs(v []domain.Attribute) []domain.Attribute {
	if v == nil {
		return []domain.Attribute{}
	}
	return v
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilUUIDs(v []uuid.UUID) []uuid.UUID {
	if v == nil {
		return []uuid.UUID{}
	}
	return v
}
