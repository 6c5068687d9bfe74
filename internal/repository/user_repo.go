package repository

import (
	"context"

	"gorm.io/gorm"

	"pong-seeder/internal/db"
)

// UserRepository provides data access methods for the User model.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository bound to the given DB connection.
func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

// Create inserts a new user row. A duplicate username or email
// surfaces as gorm.ErrDuplicatedKey (see errors.IsDuplicate).
func (r *UserRepository) Create(ctx context.Context, user *db.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// ListIDs returns all user ids in ascending order.
//
// The friendship seeder depends on this ordering: iterating the same
// ascending list in both loops makes the produced edge set fully
// deterministic given the edges already present.
func (r *UserRepository) ListIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&db.User{}).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
