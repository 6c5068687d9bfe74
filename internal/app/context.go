package app

import (
	"log/slog"
	"math/rand"

	"gorm.io/gorm"

	"pong-seeder/internal/cache"
)

// AppContext holds shared dependencies for a seeding run.
//
// Rand is the single pseudo-random source for the whole run, seeded
// once in main and threaded through every generator so a fixed
// SEED_RNG reproduces identical output. RedisCache is nil when no
// Redis address is configured.
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Rand       *rand.Rand
}

// New creates a new AppContext.
func New(db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger, rng *rand.Rand) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Rand:       rng,
	}
}
