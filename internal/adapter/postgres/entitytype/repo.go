// Package entitytype implements the entity type registry on PostgreSQL.
package entitytype

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/centralring-backend/internal/adapter/postgres"
	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const table = "entity_types"

var columns = []string{"id", "name", "description", "predefined_attributes", "created_at", "updated_at"}

type row struct {
	ID                   string    `db:"id"`
	Name                 string    `db:"name"`
	Description          *string   `db:"description"`
	PredefinedAttributes []byte    `db:"predefined_attributes"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// Repo provides entity type persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entity type repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new entity type. A duplicate id fails with
// domain.ErrAlreadyExists and leaves the stored row untouched.
func (r *Repo) Create(ctx context.Context, t *domain.EntityType) (*domain.EntityType, error) {
	q, err := r.insert(t)
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, q.Suffix(returning()), t.ID)
}

// CreateIfNotExists inserts t unless a type with the same id exists.
// It reports whether a row was written.
func (r *Repo) CreateIfNotExists(ctx context.Context, t *domain.EntityType) (bool, error) {
	q, err := r.insert(t)
	if err != nil {
		return false, err
	}

	sql, args, err := q.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert entity type: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "entity type", t.ID)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByID returns the entity type with the given id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.EntityType, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, q, id)
}

// GetByIDs returns the entity types among ids that exist, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) ([]domain.EntityType, error) {
	if len(ids) == 0 {
		return []domain.EntityType{}, nil
	}
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids})
	return r.list(ctx, q)
}

// List returns all entity types ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.EntityType, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("name ASC", "id ASC")
	return r.list(ctx, q)
}

func (r *Repo) insert(t *domain.EntityType) (squirrel.InsertBuilder, error) {
	attrs, err := json.Marshal(nonNil(t.PredefinedAttributes))
	if err != nil {
		return squirrel.InsertBuilder{}, fmt.Errorf("encode predefined attributes: %w", err)
	}

	return postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.Name, t.Description, attrs, t.CreatedAt, t.UpdatedAt), nil
}

func (r *Repo) getOne(ctx context.Context, q squirrel.Sqlizer, id string) (*domain.EntityType, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entity type query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "entity type", id)
	}

	t, err := toDomain(rw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.EntityType, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entity type query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "entity types", "")
	}

	out := make([]domain.EntityType, 0, len(rows))
	for _, rw := range rows {
		t, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toDomain(rw row) (domain.EntityType, error) {
	var attrs []domain.Attribute
	if len(rw.PredefinedAttributes) > 0 {
		if err := json.Unmarshal(rw.PredefinedAttributes, &attrs); err != nil {
			return domain.EntityType{}, fmt.Errorf("decode predefined attributes of %s: %w", rw.ID, err)
		}
	}

	return domain.EntityType{
		ID:                   rw.ID,
		Name:                 rw.Name,
		Description:          rw.Description,
		PredefinedAttributes: nonNil(attrs),
		CreatedAt:            rw.CreatedAt,
		UpdatedAt:            rw.UpdatedAt,
	}, nil
}

func nonNil(attrs []domain.Attribute) []domain.Attribute {
	if attrs == nil {
		return []domain.Attribute{}
	}
	return attrs
}
