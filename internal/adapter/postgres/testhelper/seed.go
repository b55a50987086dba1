package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueID returns prefix followed by a short random suffix, for ids that
// must not collide between parallel tests sharing one database.
func UniqueID(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedUser inserts a user row and returns its id and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) (uuid.UUID, string) {
	t.Helper()

	id := uuid.New()
	email := UniqueID("user") + "@example.com"
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, created_at, updated_at) VALUES ($1, $2, $3, $3)`,
		id, email, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id, email
}

// SeedEntityType inserts an entity type with the given predefined
// attributes JSON array and returns its id.
func SeedEntityType(t *testing.T, pool *pgxpool.Pool, attributesJSON string) string {
	t.Helper()

	id := UniqueID("type")
	_, err := pool.Exec(context.Background(),
		`INSERT INTO entity_types (id, name, predefined_attributes) VALUES ($1, $2, $3::jsonb)`,
		id, "Type "+id, attributesJSON,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntityType: %v", err)
	}
	return id
}

// SeedEntity inserts a bare entity of typeID owned by ownerID and returns its id.
func SeedEntity(t *testing.T, pool *pgxpool.Pool, typeID string, ownerID uuid.UUID) string {
	t.Helper()

	id := UniqueID("entity")
	_, err := pool.Exec(context.Background(),
		`INSERT INTO entities (id, type_id, name, owner_id) VALUES ($1, $2, $3, $4)`,
		id, typeID, "Entity "+id, ownerID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntity: %v", err)
	}
	return id
}
