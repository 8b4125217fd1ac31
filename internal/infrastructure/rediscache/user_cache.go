// Package rediscache decorates a UserRepository with a read-through
// redis cache. Accounts never change after creation, so cached records
// cannot go stale; the TTL only bounds memory. Cache faults degrade to
// the inner repository and are logged, never surfaced to callers.
package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/warungkode/accounts-backend/internal/domain/entity"
	"github.com/warungkode/accounts-backend/internal/domain/repository"
	"github.com/warungkode/accounts-backend/pkg/helpers"
)

type CachedUserRepository struct {
	inner repository.UserRepository
	rdb   *redis.Client
	ttl   time.Duration
	log   *logrus.Logger
}

func NewCachedUserRepository(inner repository.UserRepository, rdb *redis.Client, ttl time.Duration, log *logrus.Logger) *CachedUserRepository {
	return &CachedUserRepository{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

// cachedUser is the redis value. The hash rides along so a cache hit
// can serve a login check; it never leaves this package.
type cachedUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Gender       string    `json:"gender"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toCached(u *entity.User) *cachedUser {
	return &cachedUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Gender:       u.Gender,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (c *cachedUser) toEntity() *entity.User {
	return &entity.User{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Gender:       c.Gender,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func cacheKey(email string) string {
	return "user:email:" + email
}

func (r *CachedUserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := r.inner.Create(ctx, u); err != nil {
		return err
	}
	r.store(ctx, u)
	return nil
}

func (r *CachedUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.rdb != nil {
		var cu cachedUser
		hit, err := helpers.RedisGetJSON(ctx, r.rdb, cacheKey(email), &cu)
		if err != nil {
			r.log.WithError(err).Warn("user cache read failed")
		} else if hit {
			return cu.toEntity(), nil
		}
	}

	u, err := r.inner.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	r.store(ctx, u)
	return u, nil
}

func (r *CachedUserRepository) store(ctx context.Context, u *entity.User) {
	if r.rdb == nil {
		return
	}
	if err := helpers.RedisSetJSON(ctx, r.rdb, cacheKey(u.Email), toCached(u), r.ttl); err != nil {
		r.log.WithError(err).Warn("user cache write failed")
	}
}

var _ repository.UserRepository = (*CachedUserRepository)(nil)
