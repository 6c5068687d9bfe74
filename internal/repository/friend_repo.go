package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pong-seeder/internal/db"
)

// FriendRepository provides data access methods for friendship edges.
type FriendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new repository bound to the given DB connection.
func NewFriendRepository(database *gorm.DB) *FriendRepository {
	return &FriendRepository{db: database}
}

// Exists reports whether the forward edge user -> friend is present.
func (r *FriendRepository) Exists(ctx context.Context, userID, friendID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Friend{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts the forward edge user -> friend.
//
// Behavior:
//   - Composite PK (user_id, friend_id) plus OnConflict DoNothing make
//     re-inserting an existing edge an ignorable no-op, so re-running
//     the seeder is safe even if the Exists pre-check raced a prior
//     partial run.
func (r *FriendRepository) Create(ctx context.Context, userID, friendID uint64) error {
	edge := db.Friend{UserID: userID, FriendID: friendID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge).Error
}
