package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"pong-seeder/internal/app"
	"pong-seeder/internal/cache"
	"pong-seeder/internal/config"
	"pong-seeder/internal/db"
	"pong-seeder/internal/logger"
	"pong-seeder/internal/seeder"
)

const usage = "Usage: seeder <users|friends|games|tournaments> <number>"

func main() {
	if len(os.Args) < 3 {
		fmt.Println(usage)
		os.Exit(1)
	}
	action := os.Args[1]
	count, err := strconv.Atoi(os.Args[2])
	if err != nil || count <= 0 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg := config.New()
	logger.InitFromConfig(cfg)
	log := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	// One rng per run, threaded through every generator. A fixed
	// SEED_RNG reproduces identical output.
	seed := cfg.Seed.RNG
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var rdb *cache.RedisCache
	if cfg.Redis.Addr != "" {
		rdb = cache.NewRedisCache(cfg)
	}

	appCtx := app.New(database, rdb, log, rng)
	ctx := context.Background()

	switch action {
	case "users":
		err = seeder.NewAccountSeeder(appCtx, cfg.Seed.Password).Run(ctx, count)
	case "friends":
		err = seeder.NewFriendshipSeeder(appCtx).Run(ctx, count)
	case "games":
		err = seeder.NewMatchSeeder(appCtx).Run(ctx, count)
	case "tournaments":
		err = seeder.NewTournamentSeeder(appCtx).Run(ctx, count)
	default:
		fmt.Printf("Unknown action: %s\n%s\n", action, usage)
		os.Exit(1)
	}
	if err != nil {
		log.Error("seeding failed", "action", action, "err", err)
		os.Exit(1)
	}

	// Game outcomes feed the backend's Redis counters; refresh them
	// when a cache is configured. Never fatal: the DB commit stands.
	if (action == "games" || action == "tournaments") && appCtx.RedisCache != nil {
		if err := appCtx.RedisCache.Ping(ctx); err != nil {
			log.Warn("redis unreachable, skipping leaderboard refresh", "err", err)
		} else if n, err := seeder.RefreshLeaderboard(ctx, database, appCtx.RedisCache); err != nil {
			log.Warn("leaderboard refresh failed", "err", err)
		} else {
			log.Info("refreshed leaderboard cache", "users", n)
		}
	}

	log.Info("seeding completed", "action", action, "count", count)
}
