package seeder

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pong-seeder/internal/app"
	"pong-seeder/internal/db"
)

// setupApp spins up an isolated in-memory SQLite DB per test and wires
// it into an AppContext with a fixed-seed rng and a discarded logger.
func setupApp(t *testing.T) *app.AppContext {
	t.Helper()

	// named shared-cache DSN so the pool's connections see one DB
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, dbase.AutoMigrate(
		&db.User{}, &db.Friend{}, &db.Game{}, &db.UserStats{},
		&db.Tournament{}, &db.TournamentParticipant{},
	))

	rng := rand.New(rand.NewSource(1))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.New(dbase, nil, log, rng)
}

// seedUsers inserts n users directly, bypassing bcrypt for speed.
func seedUsers(t *testing.T, dbase *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		user := db.User{
			Username:     fmt.Sprintf("user%d", i),
			Email:        fmt.Sprintf("user%d@gmail.com", i),
			PasswordHash: "x",
			Provider:     "local",
		}
		require.NoError(t, dbase.Create(&user).Error)
	}
}

func countRows(t *testing.T, dbase *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, dbase.Model(model).Count(&count).Error)
	return count
}
