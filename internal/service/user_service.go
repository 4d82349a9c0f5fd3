package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/azmath1924/go-rest-starter/internal/domain"
	"github.com/azmath1924/go-rest-starter/internal/store"
)

// CreateUserInput carries the fields required to create a user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateUserInput carries a partial update. Nil fields are left untouched on
// the existing record.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// UserService provides user-related operations.
type UserService interface {
	// ListUsers retrieves all users ordered by identifier ascending.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUser retrieves a user by their ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// CreateUser creates a new user. Returns store.ErrEmailExists when the
	// email is already taken.
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)

	// UpdateUser merges the provided fields over the existing record. Email
	// uniqueness is re-checked only when the email is being changed to a
	// different value. Returns store.ErrUserNotFound if the user does not
	// exist and store.ErrEmailExists on a collision.
	UpdateUser(ctx context.Context, id int64, patch UpdateUserInput) (*domain.User, error)

	// DeleteUser removes a user by their ID.
	// Returns store.ErrUserNotFound when nothing was removed.
	DeleteUser(ctx context.Context, id int64) error
}

// userService implements the UserService interface.
type userService struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService backed by the given store.
func NewUserService(users store.UserStore, logger *slog.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger.With("component", "user_service"),
	}
}

// ListUsers retrieves all users ordered by identifier ascending.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a user by their ID.
func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", id)
		}
		return nil, err
	}
	return user, nil
}

// CreateUser creates a new user after checking email uniqueness. The check
// is advisory; two concurrent creates race, and the database unique
// constraint is what actually guarantees uniqueness.
func (s *userService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, store.ErrEmailExists
	} else if !store.IsNotFoundError(err) {
		s.logger.Error("failed to check email uniqueness", "error", err, "email", input.Email)
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	user := &domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if !store.IsDuplicateError(err) {
			s.logger.Error("failed to create user", "error", err, "email", input.Email)
		}
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// UpdateUser merges the provided fields over the existing record.
func (s *userService) UpdateUser(ctx context.Context, id int64, patch UpdateUserInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user for update", "error", err, "user_id", id)
		}
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if other, err := s.users.GetByEmail(ctx, *patch.Email); err == nil && other.ID != user.ID {
			return nil, store.ErrEmailExists
		} else if err != nil && !store.IsNotFoundError(err) {
			s.logger.Error("failed to check email uniqueness", "error", err, "email", *patch.Email)
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}

	if err := s.users.Update(ctx, user); err != nil {
		if !store.IsNotFoundError(err) && !store.IsDuplicateError(err) {
			s.logger.Error("failed to update user", "error", err, "user_id", id)
		}
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

// DeleteUser removes a user by their ID.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete user", "error", err, "user_id", id)
		}
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
