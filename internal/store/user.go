package store

import (
	"context"

	"github.com/azmath1924/go-rest-starter/internal/domain"
)

// UserStore defines the interface for user data persistence. Implementations
// must translate their backend's errors into the sentinel errors of this
// package so that callers can classify failures without knowing the backend.
type UserStore interface {
	// List retrieves all users ordered by identifier ascending.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create saves a new user and fills in the generated identifier and
	// timestamps. Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// Update persists the full user record.
	// Returns ErrUserNotFound if the user does not exist and ErrEmailExists
	// if the new email collides with another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by their ID. Returns ErrUserNotFound when no row
	// was actually removed, so a repeated delete never reports success.
	Delete(ctx context.Context, id int64) error
}
