package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/warungkode/accounts-backend/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an insert collides with an
	// existing email. The unique index is the authoritative check; a
	// pre-read may race and miss.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUnavailable is returned when the store cannot be reached or
	// the operation failed for reasons unrelated to the row itself.
	ErrUnavailable = errors.New("user store unavailable")
)

// ConstraintError reports a row rejected by a schema constraint other
// than the email unique index, such as the name length check.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint %s violated: %v", e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// UserRepository defines the persistence operations the account service
// needs. Users are immutable after creation, so there is no update.
type UserRepository interface {
	// Create persists a new user and fills in ID, CreatedAt and
	// UpdatedAt from the store.
	Create(ctx context.Context, u *entity.User) error

	// GetByEmail looks a user up by normalized email. Returns
	// ErrNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
