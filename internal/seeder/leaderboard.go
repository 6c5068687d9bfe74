package seeder

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pong-seeder/internal/cache"
	"pong-seeder/internal/repository"
)

// RefreshLeaderboard mirrors every user's win and game counters into
// Redis, the keys the platform backend serves its profile counters
// from. Runs after a games or tournaments action, outside the seeding
// transaction; Redis is a cache here, never a source of truth.
func RefreshLeaderboard(ctx context.Context, database *gorm.DB, rdb *cache.RedisCache) (int, error) {
	stats := repository.NewStatsRepository(database)

	all, err := stats.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load stats: %w", err)
	}

	for _, row := range all {
		if err := rdb.UpdateUserCounters(ctx, row.UserID, row.Wins, row.TotalGames); err != nil {
			return 0, fmt.Errorf("failed to cache counters for user %d: %w", row.UserID, err)
		}
	}
	return len(all), nil
}
