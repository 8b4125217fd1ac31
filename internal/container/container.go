// Package container assembles the infrastructure the service depends
// on. Everything is carried explicitly and handed to the router
// wiring; nothing is reached through package-level globals.
package container

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/warungkode/accounts-backend/config"
	"github.com/warungkode/accounts-backend/internal/domain/repository"
	pginfra "github.com/warungkode/accounts-backend/internal/infrastructure/postgres"
	"github.com/warungkode/accounts-backend/internal/infrastructure/rediscache"
	"github.com/warungkode/accounts-backend/pkg/helpers"
)

// Container owns the shared infrastructure clients for the lifetime of
// the process: built once before the first request, closed on
// shutdown.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client            // nil when the cache is unavailable
	Pub    *helpers.RabbitPublisher // nil when the queue is unavailable
	Users  repository.UserRepository
}

// Build connects to postgres (required) and to redis and rabbitmq
// (both optional; a failure logs a warning and the service runs
// without that capability).
func Build(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := &Container{Cfg: cfg, Logger: logger, Pool: pool}
	c.Users = pginfra.NewUserRepository(pool)

	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := helpers.RedisPing(ctx, rdb); err != nil {
			logger.WithError(err).Warn("redis unreachable, running without user cache")
			_ = rdb.Close()
		} else {
			c.Redis = rdb
			c.Users = rediscache.NewCachedUserRepository(c.Users, rdb, cfg.UserCacheTTL, logger)
		}
	}

	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unreachable, contact relay disabled")
		} else {
			c.Pub = pub
		}
	}

	return c, nil
}

// Close releases every client Build opened, in reverse order.
func (c *Container) Close() {
	if c.Pub != nil {
		c.Pub.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
