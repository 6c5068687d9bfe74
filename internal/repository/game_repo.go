package repository

import (
	"context"

	"gorm.io/gorm"

	"pong-seeder/internal/db"
)

// GameRepository provides data access methods for the Game model.
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new repository bound to the given DB connection.
func NewGameRepository(database *gorm.DB) *GameRepository {
	return &GameRepository{db: database}
}

// Create inserts a game row. The generated id is written back into
// game.ID by gorm.
func (r *GameRepository) Create(ctx context.Context, game *db.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}
