package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pong-seeder/internal/config"
)

// NewDB opens the database selected by config. SQLite is the default
// (the platform itself runs on a SQLite file); MySQL is available via
// DB_DRIVER=mysql for setups that moved off the embedded database.
//
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey on both dialects.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DB.Driver {
	case "mysql":
		database, err = gorm.Open(mysql.Open(cfg.DB.DSN), gormCfg)
	case "sqlite":
		database, err = gorm.Open(sqlite.Open(cfg.DB.Path), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	// AutoMigrate ensures schema is in sync with models.
	if err := database.AutoMigrate(
		&User{}, &Friend{}, &Game{}, &UserStats{},
		&Tournament{}, &TournamentParticipant{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return database, nil
}
