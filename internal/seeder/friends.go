package seeder

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pong-seeder/internal/app"
	seederrors "pong-seeder/internal/errors"
	"pong-seeder/internal/repository"
)

// FriendshipSeeder gives every existing user up to n new outbound
// friendship edges. No randomness: both loops walk user ids in the
// same ascending order, so the produced edge set is fully determined
// by the edges already present.
type FriendshipSeeder struct {
	appCtx *app.AppContext
}

// NewFriendshipSeeder creates a friendship seeder.
func NewFriendshipSeeder(appCtx *app.AppContext) *FriendshipSeeder {
	return &FriendshipSeeder{appCtx: appCtx}
}

// Run adds up to n new forward edges per user inside one transaction.
//
// Precondition: at least n+1 users must exist, otherwise no user could
// receive n distinct friends; the run aborts with a fatal error.
// Re-running is a no-op once every user is saturated.
func (s *FriendshipSeeder) Run(ctx context.Context, n int) error {
	log := s.appCtx.Logger

	return s.appCtx.DB.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		friends := repository.NewFriendRepository(tx)

		ids, err := users.ListIDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		if len(ids) < n+1 {
			return seederrors.InsufficientUsers(n+1, len(ids))
		}

		for _, userID := range ids {
			added := 0
			for _, friendID := range ids {
				if friendID == userID {
					continue
				}
				exists, err := friends.Exists(ctx, userID, friendID)
				if err != nil {
					return fmt.Errorf("failed to check edge %d->%d: %w", userID, friendID, err)
				}
				if exists {
					continue
				}
				if err := friends.Create(ctx, userID, friendID); err != nil {
					return fmt.Errorf("failed to create edge %d->%d: %w", userID, friendID, err)
				}
				added++
				if added >= n {
					break
				}
			}
			log.Info("seeded friendships", "user", userID, "new_friends", added)
		}
		return nil
	})
}
