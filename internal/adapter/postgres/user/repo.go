// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/centralring-backend/internal/adapter/postgres"
	"github.com/heartmarshall/centralring-backend/internal/domain"
)

const selectColumns = "id, email, created_at, updated_at"

type row struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{ID: r.ID, Email: r.Email, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.Builder().Select(selectColumns).From("users").Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, q, id.String())
}

// CreateOrGet returns the user registered under u.Email, inserting u when
// no such user exists yet. Concurrent first logins resolve to one row.
func (r *Repo) CreateOrGet(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder().
		Insert("users").
		Columns("id", "email", "created_at", "updated_at").
		Values(u.ID, u.Email, u.CreatedAt, u.UpdatedAt).
		Suffix("ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email RETURNING " + selectColumns)
	return r.getOne(ctx, q, u.Email)
}

func (r *Repo) getOne(ctx context.Context, q squirrel.Sqlizer, key string) (*domain.User, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return rw.toDomain(), nil
}
