package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taskmate/taskmate-api/internal/core/domain"
)

// userDescriptor declares the users table. The password column stores the
// bcrypt hash; plaintext never reaches this layer.
var userDescriptor = Descriptor{
	Table:       "users",
	IDColumn:    "userid",
	OwnerColumn: "userid",
	Fields: map[string]string{
		"name":           "name",
		"email":          "email",
		"password":       "password",
		"profilepicture": "profilepicture",
		"theme":          "theme",
		"notifications":  "notifications",
		"language":       "language",
	},
}

// UserRepository composes the generic repository with the lookups and the
// explicit-clear update the identity subsystem needs.
type UserRepository struct {
	*Repository[domain.User]
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		Repository: NewRepository[domain.User](db, userDescriptor),
		db:         db,
	}
}

// FindByEmail returns the user with the given login email, or nil when no
// such user exists. The match is exact, as stored.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return user, nil
}

// ClearProfilePicture sets the avatar column to NULL. The generic update
// cannot express this: omitting the field leaves it untouched, so clearing
// is a dedicated statement.
func (r *UserRepository) ClearProfilePicture(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET profilepicture = NULL WHERE userid = $1`, id)
	if err != nil {
		return fmt.Errorf("clear profile picture: %w", err)
	}
	return nil
}
