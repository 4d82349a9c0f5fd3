package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/azmath1924/go-rest-starter/internal/domain"
	"github.com/azmath1924/go-rest-starter/internal/store"
)

// MemoryUserStore is an in-memory store.UserStore for tests. It mirrors the
// PostgreSQL implementation's observable behavior: sequential generated
// identifiers, a unique email constraint, id-ascending listing, and
// not-found reporting on update and delete of missing rows.
type MemoryUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User

	// FailWith, when set, is returned by every method. Lets tests exercise
	// the unclassified-error path.
	FailWith error
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		nextID: 1,
		users:  make(map[int64]domain.User),
	}
}

// Ensure MemoryUserStore implements store.UserStore.
var _ store.UserStore = (*MemoryUserStore)(nil)

// List implements store.UserStore.List.
func (s *MemoryUserStore) List(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// GetByID implements store.UserStore.GetByID.
func (s *MemoryUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return nil, s.FailWith
	}

	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Create implements store.UserStore.Create.
func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}

	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	now := time.Now().UTC()
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

// Update implements store.UserStore.Update.
func (s *MemoryUserStore) Update(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}

	existing, ok := s.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	for _, u := range s.users {
		if u.ID != user.ID && u.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return nil
}

// Delete implements store.UserStore.Delete.
func (s *MemoryUserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}

	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}
