package rediscache

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungkode/accounts-backend/internal/domain/entity"
	"github.com/warungkode/accounts-backend/internal/domain/repository"
	"github.com/warungkode/accounts-backend/internal/infrastructure/memory"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, client
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedUser(t *testing.T, repo repository.UserRepository) *entity.User {
	t.Helper()

	u := &entity.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Gender:       "F",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestCachedUserRepository_ReadThrough(t *testing.T) {
	mr, client := newTestRedis(t)
	inner := memory.NewUserRepository()
	cached := NewCachedUserRepository(inner, client, time.Minute, quietLogger())

	seeded := seedUser(t, inner)

	got, err := cached.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
	assert.True(t, mr.Exists("user:email:ana@example.com"))

	// Second read must be served from the cache even when the inner
	// repository is unreachable.
	inner.SetGetError(errors.New("db down"))
	got, err = cached.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
	assert.Equal(t, seeded.PasswordHash, got.PasswordHash)
}

func TestCachedUserRepository_CreatePopulatesCache(t *testing.T) {
	mr, client := newTestRedis(t)
	inner := memory.NewUserRepository()
	cached := NewCachedUserRepository(inner, client, time.Minute, quietLogger())

	u := seedUser(t, cached)
	assert.True(t, mr.Exists("user:email:ana@example.com"))

	inner.SetGetError(errors.New("db down"))
	got, err := cached.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestCachedUserRepository_CacheDownFallsThrough(t *testing.T) {
	mr, client := newTestRedis(t)
	inner := memory.NewUserRepository()
	cached := NewCachedUserRepository(inner, client, time.Minute, quietLogger())

	seeded := seedUser(t, inner)
	mr.Close()

	got, err := cached.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
}

func TestCachedUserRepository_NilClientDelegates(t *testing.T) {
	inner := memory.NewUserRepository()
	cached := NewCachedUserRepository(inner, nil, time.Minute, quietLogger())

	seeded := seedUser(t, cached)

	got, err := cached.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
}

func TestCachedUserRepository_MissIsNotCached(t *testing.T) {
	mr, client := newTestRedis(t)
	inner := memory.NewUserRepository()
	cached := NewCachedUserRepository(inner, client, time.Minute, quietLogger())

	_, err := cached.GetByEmail(context.Background(), "ana@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, mr.Exists("user:email:ana@example.com"))

	// Registering after a miss must be visible immediately.
	seeded := seedUser(t, cached)
	got, err := cached.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
}

func TestCachedUserRepository_CreateErrorSkipsCache(t *testing.T) {
	mr, client := newTestRedis(t)
	inner := memory.NewUserRepository()
	cached := NewCachedUserRepository(inner, client, time.Minute, quietLogger())

	seedUser(t, inner)

	dup := &entity.User{Name: "Other", Email: "ana@example.com", PasswordHash: "h"}
	err := cached.Create(context.Background(), dup)
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.False(t, mr.Exists("user:email:ana@example.com"))
}
