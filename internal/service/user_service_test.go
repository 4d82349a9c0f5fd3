package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azmath1924/go-rest-starter/internal/domain"
	"github.com/azmath1924/go-rest-starter/internal/mocks"
	"github.com/azmath1924/go-rest-starter/internal/store"
)

func newTestService(t *testing.T) (UserService, *mocks.MemoryUserStore) {
	t.Helper()
	users := mocks.NewMemoryUserStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserService(users, logger), users
}

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, svc UserService, first, last, email string) *domain.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		FirstName: first,
		LastName:  last,
		Email:     email,
	})
	require.NoError(t, err)
	return user
}

func TestCreateUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserInput{FirstName: "Al", LastName: "Ng", Email: "a@b.co"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "a@b.co", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	// Same email again is a conflict.
	_, err = svc.CreateUser(ctx, CreateUserInput{FirstName: "Bo", LastName: "Li", Email: "a@b.co"})
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestListUsers_OrderedByID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seedUser(t, svc, "C", "C", "c@x.co")
	seedUser(t, svc, "A", "A", "a@x.co")
	seedUser(t, svc, "B", "B", "b@x.co")

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.True(t, users[0].ID < users[1].ID && users[1].ID < users[2].ID)
}

func TestGetUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created := seedUser(t, svc, "Al", "Ng", "a@b.co")

	user, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.GetUser(ctx, 999999)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUpdateUser_MergesOnlyProvidedFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created := seedUser(t, svc, "Al", "Ng", "a@b.co")

	updated, err := svc.UpdateUser(ctx, created.ID, UpdateUserInput{Email: strPtr("new@x.com")})
	require.NoError(t, err)

	assert.Equal(t, "Al", updated.FirstName)
	assert.Equal(t, "Ng", updated.LastName)
	assert.Equal(t, "new@x.com", updated.Email)
}

func TestUpdateUser_EmailCollision(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	first := seedUser(t, svc, "Al", "Ng", "a@b.co")
	seedUser(t, svc, "Bo", "Li", "taken@x.co")

	_, err := svc.UpdateUser(ctx, first.ID, UpdateUserInput{Email: strPtr("taken@x.co")})
	assert.ErrorIs(t, err, store.ErrEmailExists)

	// The failed update did not mutate the record.
	unchanged, err := svc.GetUser(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", unchanged.Email)
}

func TestUpdateUser_SameEmailSkipsUniquenessCheck(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created := seedUser(t, svc, "Al", "Ng", "a@b.co")

	// Resubmitting the current email alongside a name change must not be
	// treated as a collision with the user's own record.
	updated, err := svc.UpdateUser(ctx, created.ID, UpdateUserInput{
		FirstName: strPtr("Alfred"),
		Email:     strPtr("a@b.co"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alfred", updated.FirstName)
	assert.Equal(t, "a@b.co", updated.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateUser(context.Background(), 42, UpdateUserInput{FirstName: strPtr("X")})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created := seedUser(t, svc, "Al", "Ng", "a@b.co")

	require.NoError(t, svc.DeleteUser(ctx, created.ID))

	// Deleting again reports not-found, never a false-positive success.
	err := svc.DeleteUser(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestCreateUser_StoreFailurePropagates(t *testing.T) {
	svc, users := newTestService(t)
	users.FailWith = errors.New("connection reset")

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		FirstName: "Al", LastName: "Ng", Email: "a@b.co",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrEmailExists)
}
