// Package section defines the one generic shape shared by the four
// portfolio child collections (skills, projects, experiences, education).
// Each collection is a flat table of rows owned by a profile; the same
// add/update/delete/list contract applies to all of them, so the contract
// is written once and parameterized by the entity type.
package section

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by pointers to the four section row types.
type Entity interface {
	// Kind is the resource name used in errors and events ("skill", ...).
	Kind() string
	SetID(id uuid.UUID)
	SetProfileID(profileID uuid.UUID)
	SetSortOrder(order int)
	SetCreatedAt(t time.Time)
	// Normalize applies server-side canonicalization (ongoing flags null
	// out end values, tag lists are de-duplicated) before validation.
	Normalize()
	Validate() error
}

// Repository is the owner-scoped store contract for one section table.
// Update and Delete match on (id AND profile_id); the compound predicate is
// the sole authorization check, so a zero-row match must surface the same
// error class as a missing identity.
type Repository[T Entity] interface {
	Insert(ctx context.Context, e T) error
	Update(ctx context.Context, e T) error
	Delete(ctx context.Context, id, profileID uuid.UUID) error
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]T, error)
	CountByProfile(ctx context.Context, profileID uuid.UUID) (int, error)
	NextSortOrder(ctx context.Context, profileID uuid.UUID) (int, error)
}
