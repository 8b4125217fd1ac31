// Package memory provides an in-memory UserRepository used by unit
// tests and local tooling. It enforces the same email-uniqueness and
// error contract as the postgres implementation and exposes error
// fields for behavior injection.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/warungkode/accounts-backend/internal/domain/entity"
	"github.com/warungkode/accounts-backend/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User // keyed by normalized email

	createErr error
	getErr    error
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*entity.User),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.users[u.Email]; exists {
		return repository.ErrDuplicateEmail
	}

	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	r.users[u.Email] = &stored
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}

	found := *u
	return &found, nil
}

// Len reports how many users are stored.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// SetCreateError makes subsequent Create calls fail with err.
func (r *UserRepository) SetCreateError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createErr = err
}

// SetGetError makes subsequent GetByEmail calls fail with err.
func (r *UserRepository) SetGetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getErr = err
}

var _ repository.UserRepository = (*UserRepository)(nil)
