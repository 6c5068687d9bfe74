package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"pong-seeder/internal/app"
	"pong-seeder/internal/db"
	seederrors "pong-seeder/internal/errors"
	"pong-seeder/internal/repository"
)

var casualGameModes = []string{"online", "tournament"}

var casualDifficulties = []string{"easy", "medium", "hard"}

var casualTimeLimits = []int{300, 600, 900}

// MatchSeeder simulates random head-to-head games between existing
// users and keeps every participant's aggregate stats current.
type MatchSeeder struct {
	appCtx *app.AppContext
}

// NewMatchSeeder creates a match seeder.
func NewMatchSeeder(appCtx *app.AppContext) *MatchSeeder {
	return &MatchSeeder{appCtx: appCtx}
}

// Run simulates n games inside one transaction. Precondition: at
// least 2 users must exist, otherwise the run aborts fatally.
func (s *MatchSeeder) Run(ctx context.Context, n int) error {
	log := s.appCtx.Logger
	r := s.appCtx.Rand

	return s.appCtx.DB.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		games := repository.NewGameRepository(tx)
		agg := NewStatsAggregator(repository.NewStatsRepository(tx))

		ids, err := users.ListIDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		if len(ids) < 2 {
			return seederrors.InsufficientUsers(2, len(ids))
		}

		for i := 0; i < n; i++ {
			player1, player2 := pickTwo(r, ids)
			score1, score2 := r.Intn(11), r.Intn(11)

			game, err := buildCasualGame(r, player1, player2, score1, score2)
			if err != nil {
				return err
			}
			if err := games.Create(ctx, game); err != nil {
				return fmt.Errorf("failed to create game: %w", err)
			}

			sample1, sample2 := samplesFromGame(game)
			if err := agg.Record(ctx, player1, sample1); err != nil {
				return fmt.Errorf("failed to update stats for user %d: %w", player1, err)
			}
			if err := agg.Record(ctx, player2, sample2); err != nil {
				return fmt.Errorf("failed to update stats for user %d: %w", player2, err)
			}

			log.Info("created game", "id", game.ID, "player1", player1, "player2", player2,
				"score", fmt.Sprintf("%d-%d", score1, score2))
		}
		return nil
	})
}

// buildCasualGame assembles one non-tournament game row from the two
// scores plus freshly drawn auxiliary counters. Goals mirror scores
// exactly: each player's goals-in-favor is their score and their
// goals-against is the opponent's.
func buildCasualGame(r *rand.Rand, player1, player2 uint64, score1, score2 int) (*db.Game, error) {
	winnerID, general, result1, result2 := classify(player1, player2, score1, score2)

	cfg := GameConfig{
		Difficulty: casualDifficulties[r.Intn(len(casualDifficulties))],
		TimeLimit:  casualTimeLimits[r.Intn(len(casualTimeLimits))],
	}
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game config: %w", err)
	}

	return &db.Game{
		Player1ID:     player1,
		Player2ID:     player2,
		WinnerID:      winnerID,
		Player1Score:  score1,
		Player2Score:  score2,
		GameMode:      casualGameModes[r.Intn(len(casualGameModes))],
		GeneralResult: general,

		ConfigJSON:        string(cfgJSON),
		SmartContractLink: smartContractLink,
		ContractAddress:   contractAddress,

		BallUsage:    randBallUsage(r, 3),
		SpecialItems: randSpecialItems(r, 2),
		WallElements: randWallElements(r, 1),

		Player1Hits:              r.Intn(21),
		Player1GoalsInFavor:      score1,
		Player1GoalsAgainst:      score2,
		Player1PowerupsPicked:    r.Intn(6),
		Player1PowerdownsPicked:  r.Intn(4),
		Player1BallchangesPicked: r.Intn(3),
		Player1Result:            result1,

		Player2Hits:              r.Intn(21),
		Player2GoalsInFavor:      score2,
		Player2GoalsAgainst:      score1,
		Player2PowerupsPicked:    r.Intn(6),
		Player2PowerdownsPicked:  r.Intn(4),
		Player2BallchangesPicked: r.Intn(3),
		Player2Result:            result2,

		EndedAt: time.Now(),
	}, nil
}
