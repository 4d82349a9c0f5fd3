package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/azmath1924/go-rest-starter/internal/domain"
	"github.com/azmath1924/go-rest-starter/internal/store"
)

// UserStore implements the store.UserStore interface using a PostgreSQL
// database accessed through gorm.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a PostgreSQL implementation of the UserStore
// interface. It accepts a gorm handle that is initialized and owned by the
// caller.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, wrapUserError(err)
	}
	return users, nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrapUserError(err)
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapUserError(err)
	}
	return &user, nil
}

// Create implements store.UserStore.Create. The generated identifier and
// timestamps are written back into the given user.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return wrapUserError(err)
	}
	return nil
}

// Update implements store.UserStore.Update with a full-record save.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	res := s.db.WithContext(ctx).Model(user).
		Select("first_name", "last_name", "email", "updated_at").
		Updates(user)
	if res.Error != nil {
		return wrapUserError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// Delete implements store.UserStore.Delete. RowsAffected distinguishes a
// real delete from a no-op, so deleting a missing user reports not-found.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.User{}, id)
	if res.Error != nil {
		return wrapUserError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}
