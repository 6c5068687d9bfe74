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

var tournamentGameModes = []string{"classic", "arcade", "time_attack"}

var bracketSizes = []int{2, 4, 8}

// TournamentSeeder simulates finished single-elimination tournaments:
// bracket sizes 2/4/8, one game per pairing per round, flattened final
// standings, and tournament totals folded into every participant's
// stats row.
type TournamentSeeder struct {
	appCtx *app.AppContext

	// drawScores produces the two raw scores for a bracket game.
	// Swappable so tests can inject deterministic outcomes.
	drawScores func(r *rand.Rand) (int, int)
}

// NewTournamentSeeder creates a tournament seeder.
func NewTournamentSeeder(appCtx *app.AppContext) *TournamentSeeder {
	return &TournamentSeeder{appCtx: appCtx, drawScores: tournamentScores}
}

// tournamentScores draws two scores biased away from draws: on an
// initial tie, 90% of the time player 1 gains 1-2 points to force a
// winner. The remaining ties are resolved by the bracket's
// random-advance rule.
func tournamentScores(r *rand.Rand) (int, int) {
	score1, score2 := r.Intn(11), r.Intn(11)
	if score1 == score2 && r.Float64() > 0.1 {
		score1 += 1 + r.Intn(2)
	}
	return score1, score2
}

// Run simulates n tournaments inside one transaction. Precondition:
// at least 2 users must exist, otherwise the run aborts fatally.
func (s *TournamentSeeder) Run(ctx context.Context, n int) error {
	r := s.appCtx.Rand

	return s.appCtx.DB.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)

		ids, err := users.ListIDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		if len(ids) < 2 {
			return seederrors.InsufficientUsers(2, len(ids))
		}

		for num := 1; num <= n; num++ {
			if err := s.runTournament(ctx, tx, r, ids, num); err != nil {
				return err
			}
		}
		return nil
	})
}

// runTournament creates and fully resolves one tournament.
func (s *TournamentSeeder) runTournament(ctx context.Context, tx *gorm.DB, r *rand.Rand, ids []uint64, num int) error {
	log := s.appCtx.Logger
	tournaments := repository.NewTournamentRepository(tx)
	games := repository.NewGameRepository(tx)
	statsRepo := repository.NewStatsRepository(tx)
	agg := NewStatsAggregator(statsRepo)

	size := pickBracketSize(r, len(ids))

	tournament := db.Tournament{
		Name:   fmt.Sprintf("Tournament %d", num),
		Status: db.TournamentFinished,
	}
	if err := tournaments.Create(ctx, &tournament); err != nil {
		return fmt.Errorf("failed to create tournament: %w", err)
	}

	participants := sampleIDs(r, ids, size)
	for _, userID := range participants {
		if err := tournaments.AddParticipant(ctx, tournament.ID, userID); err != nil {
			return fmt.Errorf("failed to add participant %d: %w", userID, err)
		}
	}
	log.Info("created tournament", "id", tournament.ID, "name", tournament.Name, "players", size)

	// Single elimination: consecutive pairs in drawn order, winners
	// advance until one remains. A drawn game advances a uniformly
	// random player since brackets cannot progress on a tie.
	round := participants
	roundNum := 0
	for len(round) > 1 {
		roundNum++
		next := make([]uint64, 0, len(round)/2)
		for i := 0; i < len(round); i += 2 {
			player1, player2 := round[i], round[i+1]
			score1, score2 := s.drawScores(r)

			game, err := s.playMatch(ctx, games, agg, r, tournament.ID, player1, player2, score1, score2)
			if err != nil {
				return err
			}

			var advancing uint64
			if game.WinnerID != nil {
				advancing = *game.WinnerID
			} else {
				advancing = [2]uint64{player1, player2}[r.Intn(2)]
				log.Info("drawn bracket game, random advance",
					"game", game.ID, "round", roundNum, "advancing", advancing)
			}
			next = append(next, advancing)

			log.Info("played bracket game", "tournament", tournament.ID, "round", roundNum,
				"game", game.ID, "player1", player1, "player2", player2, "advancing", advancing)
		}
		round = next
	}
	winnerID := round[0]

	if err := tournaments.AssignFinalPositions(ctx, tournament.ID, winnerID); err != nil {
		return fmt.Errorf("failed to assign final positions: %w", err)
	}

	participantIDs, err := tournaments.ListParticipantIDs(ctx, tournament.ID)
	if err != nil {
		return fmt.Errorf("failed to list participants: %w", err)
	}
	for _, userID := range participantIDs {
		if err := statsRepo.AddTournamentResult(ctx, userID, userID == winnerID); err != nil {
			return fmt.Errorf("failed to update tournament stats for user %d: %w", userID, err)
		}
	}

	log.Info("tournament completed", "id", tournament.ID, "winner", winnerID)
	return nil
}

// playMatch creates one tournament-linked game between two bracket
// opponents and feeds both players' samples to the aggregator. The
// auxiliary counter ranges sit higher than casual games, modeling a
// more intense contest; the configuration is fixed to hard difficulty
// with a 600 second limit.
func (s *TournamentSeeder) playMatch(
	ctx context.Context,
	games *repository.GameRepository,
	agg *StatsAggregator,
	r *rand.Rand,
	tournamentID, player1, player2 uint64,
	score1, score2 int,
) (*db.Game, error) {
	winnerID, general, result1, result2 := classify(player1, player2, score1, score2)

	cfgJSON, err := json.Marshal(GameConfig{
		Difficulty:     "hard",
		TimeLimit:      600,
		TournamentMode: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game config: %w", err)
	}

	game := &db.Game{
		IsTournament: true,
		TournamentID: &tournamentID,

		Player1ID:     player1,
		Player2ID:     player2,
		WinnerID:      winnerID,
		Player1Score:  score1,
		Player2Score:  score2,
		GameMode:      tournamentGameModes[r.Intn(len(tournamentGameModes))],
		GeneralResult: general,

		ConfigJSON:        string(cfgJSON),
		SmartContractLink: smartContractLink,
		ContractAddress:   contractAddress,

		BallUsage:    randBallUsage(r, 5),
		SpecialItems: randSpecialItems(r, 3),
		WallElements: randWallElements(r, 2),

		Player1Hits:              randBetween(r, 5, 25),
		Player1GoalsInFavor:      score1,
		Player1GoalsAgainst:      score2,
		Player1PowerupsPicked:    randBetween(r, 1, 8),
		Player1PowerdownsPicked:  r.Intn(5),
		Player1BallchangesPicked: r.Intn(4),
		Player1Result:            result1,

		Player2Hits:              randBetween(r, 5, 25),
		Player2GoalsInFavor:      score2,
		Player2GoalsAgainst:      score1,
		Player2PowerupsPicked:    randBetween(r, 1, 8),
		Player2PowerdownsPicked:  r.Intn(5),
		Player2BallchangesPicked: r.Intn(4),
		Player2Result:            result2,

		EndedAt: time.Now(),
	}

	if err := games.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create tournament game: %w", err)
	}

	sample1, sample2 := samplesFromGame(game)
	if err := agg.Record(ctx, player1, sample1); err != nil {
		return nil, fmt.Errorf("failed to update stats for user %d: %w", player1, err)
	}
	if err := agg.Record(ctx, player2, sample2); err != nil {
		return nil, fmt.Errorf("failed to update stats for user %d: %w", player2, err)
	}

	return game, nil
}

// pickBracketSize draws uniformly from whichever of {2,4,8} the user
// population supports.
func pickBracketSize(r *rand.Rand, userCount int) int {
	supported := make([]int, 0, len(bracketSizes))
	for _, size := range bracketSizes {
		if userCount >= size {
			supported = append(supported, size)
		}
	}
	return supported[r.Intn(len(supported))]
}
