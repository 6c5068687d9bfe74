package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pong-seeder/internal/config"
)

// statsTTL matches the backend's counter cache expiry; seeded values
// are warm-up data, not a source of truth.
const statsTTL = time.Hour

// RedisCache mirrors per-user aggregate counters into Redis, the same
// keys the platform backend serves its profile counters from.
type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes a Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// KeyForWins generates the Redis key for a user's win count.
func (c *RedisCache) KeyForWins(userID uint64) string {
	return fmt.Sprintf("stats:wins:%d", userID)
}

// KeyForGames generates the Redis key for a user's total game count.
func (c *RedisCache) KeyForGames(userID uint64) string {
	return fmt.Sprintf("stats:games:%d", userID)
}

// UpdateUserCounters refreshes a user's cached win and game counters.
func (c *RedisCache) UpdateUserCounters(ctx context.Context, userID uint64, wins, games int) error {
	if err := c.Client.Set(ctx, c.KeyForWins(userID), wins, statsTTL).Err(); err != nil {
		return err
	}
	return c.Client.Set(ctx, c.KeyForGames(userID), games, statsTTL).Err()
}
