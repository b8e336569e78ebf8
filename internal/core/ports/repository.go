package ports

import (
	"context"
	"time"

	"github.com/taskmate/taskmate-api/internal/core/domain"
)

// PatchField is one application-level field taking part in an insert or
// update. Name is matched case-insensitively against the entity's declared
// field map; the identifier column is always stripped by the repository.
type PatchField struct {
	Name  string
	Value any
}

// Patch is an ordered set of fields for a partial write. Fields absent from
// the patch keep their stored value; there is no way to express "set to
// NULL" through a Patch; entities that need that implement a dedicated
// repository method instead.
type Patch struct {
	fields []PatchField
}

// Set appends a field to the patch. Setting the same field twice keeps the
// later value.
func (p *Patch) Set(name string, value any) *Patch {
	p.fields = append(p.fields, PatchField{Name: name, Value: value})
	return p
}

// Fields returns the fields in insertion order.
func (p *Patch) Fields() []PatchField {
	if p == nil {
		return nil
	}
	return p.fields
}

// Empty reports whether the patch carries no fields.
func (p *Patch) Empty() bool {
	return p == nil || len(p.fields) == 0
}

// Repository is the generic CRUD contract every domain repository provides.
// FindByID and Update return (nil, nil) when no row matches; FindByOwner
// returns an empty slice, never nil with an error, when the owner has no
// rows.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]T, error)
	Create(ctx context.Context, patch *Patch) (*T, error)
	Update(ctx context.Context, id int64, patch *Patch) (*T, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserRepository extends the generic contract with the lookups and precise
// update semantics the identity subsystem needs. ClearProfilePicture exists
// because the generic "presence implies update" rule cannot distinguish
// "omit" from "set to NULL".
type UserRepository interface {
	Repository[domain.User]
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ClearProfilePicture(ctx context.Context, id int64) error
}

type TaskRepository interface {
	Repository[domain.Task]
	FindDueBefore(ctx context.Context, deadline time.Time) ([]domain.Task, error)
}

type CategoryRepository interface {
	Repository[domain.Category]
}

type TagRepository interface {
	Repository[domain.Tag]
}
