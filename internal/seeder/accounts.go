package seeder

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pong-seeder/internal/app"
	"pong-seeder/internal/db"
	seederrors "pong-seeder/internal/errors"
	"pong-seeder/internal/repository"
)

// AccountSeeder inserts synthetic user accounts with deterministic
// identities (user1, user2, ...) and a bcrypt-hashed placeholder
// password.
type AccountSeeder struct {
	appCtx   *app.AppContext
	password string
}

// NewAccountSeeder creates an account seeder. password is the shared
// placeholder credential every generated account gets.
func NewAccountSeeder(appCtx *app.AppContext, password string) *AccountSeeder {
	return &AccountSeeder{appCtx: appCtx, password: password}
}

// Run creates n users inside one transaction.
//
// Identities are deterministic, so re-running on existing data hits
// unique-constraint conflicts; those are logged and skipped, making
// partial success the expected steady state for repeated invocations.
func (s *AccountSeeder) Run(ctx context.Context, n int) error {
	log := s.appCtx.Logger

	return s.appCtx.DB.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		for i := 1; i <= n; i++ {
			username := fmt.Sprintf("user%d", i)
			email := fmt.Sprintf("%s@gmail.com", username)

			hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			user := db.User{
				Username:     username,
				Email:        email,
				PasswordHash: string(hash),
				Provider:     "local",
			}

			err = users.Create(ctx, &user)
			switch {
			case seederrors.IsDuplicate(err):
				log.Warn("user already exists, skipping", "username", username)
			case err != nil:
				return fmt.Errorf("failed to seed user %s: %w", username, err)
			default:
				log.Info("created user", "username", username, "id", user.ID)
			}
		}
		return nil
	})
}
