package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pong-seeder/internal/db"
)

// StatsRepository provides data access methods for the UserStats model.
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new repository bound to the given DB connection.
func NewStatsRepository(database *gorm.DB) *StatsRepository {
	return &StatsRepository{db: database}
}

// GetOrCreate loads the stats row for a user, lazily inserting a
// zeroed row on first contact. Callers mutate the returned row and
// persist it with Save; the whole sequence runs inside the seeding
// transaction, so it is atomic as far as other processes can observe.
func (r *StatsRepository) GetOrCreate(ctx context.Context, userID uint64) (*db.UserStats, error) {
	var stats db.UserStats
	err := r.db.WithContext(ctx).First(&stats, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats = db.UserStats{UserID: userID}
		if err := r.db.WithContext(ctx).Create(&stats).Error; err != nil {
			return nil, err
		}
		return &stats, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Save writes back a full stats row.
func (r *StatsRepository) Save(ctx context.Context, stats *db.UserStats) error {
	return r.db.WithContext(ctx).Save(stats).Error
}

// AddTournamentResult folds one finished tournament into a user's
// tournament totals: entries always increment, and exactly one of
// won/lost increments depending on the outcome.
func (r *StatsRepository) AddTournamentResult(ctx context.Context, userID uint64, won bool) error {
	cols := map[string]interface{}{
		"total_tournaments": gorm.Expr("total_tournaments + 1"),
	}
	if won {
		cols["tournaments_won"] = gorm.Expr("tournaments_won + 1")
	} else {
		cols["tournaments_lost"] = gorm.Expr("tournaments_lost + 1")
	}
	return r.db.WithContext(ctx).
		Model(&db.UserStats{}).
		Where("user_id = ?", userID).
		Updates(cols).Error
}

// ListAll returns every stats row, used by the leaderboard cache refresh.
func (r *StatsRepository) ListAll(ctx context.Context) ([]db.UserStats, error) {
	var all []db.UserStats
	if err := r.db.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, err
	}
	return all, nil
}
