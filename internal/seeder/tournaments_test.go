package seeder

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pong-seeder/internal/db"
	seederrors "pong-seeder/internal/errors"
)

// A single-elimination bracket of k players always produces exactly
// k-1 games (4+2+1 for a bracket of 8), and exactly one participant
// finishes in position 1.
func TestTournamentSeederBracketInvariants(t *testing.T) {
	ctx := context.Background()
	appCtx := setupApp(t)
	seedUsers(t, appCtx.DB, 8)

	require.NoError(t, NewTournamentSeeder(appCtx).Run(ctx, 5))

	var tournaments []db.Tournament
	require.NoError(t, appCtx.DB.Find(&tournaments).Error)
	require.Len(t, tournaments, 5)

	for _, tournament := range tournaments {
		assert.Equal(t, db.TournamentFinished, tournament.Status)

		var participants []db.TournamentParticipant
		require.NoError(t, appCtx.DB.Where("tournament_id = ?", tournament.ID).Find(&participants).Error)
		assert.Contains(t, []int{2, 4, 8}, len(participants))

		var gameCount int64
		require.NoError(t, appCtx.DB.Model(&db.Game{}).
			Where("tournament_id = ?", tournament.ID).Count(&gameCount).Error)
		assert.Equal(t, int64(len(participants)-1), gameCount)

		winners := 0
		for _, p := range participants {
			assert.False(t, p.IsAI)
			require.NotNil(t, p.FinalPosition)
			if *p.FinalPosition == 1 {
				winners++
			} else {
				assert.Equal(t, 2, *p.FinalPosition)
			}
		}
		assert.Equal(t, 1, winners)
	}

	// every bracket game is tournament-linked with the hard config
	var games []db.Game
	require.NoError(t, appCtx.DB.Find(&games).Error)
	for _, g := range games {
		assert.True(t, g.IsTournament)
		require.NotNil(t, g.TournamentID)
		assert.Contains(t, tournamentGameModes, g.GameMode)
		assert.Contains(t, g.ConfigJSON, `"difficulty":"hard"`)
		assert.Contains(t, g.ConfigJSON, `"tournament_mode":true`)
	}
}

func TestTournamentSeederStatsTotals(t *testing.T) {
	ctx := context.Background()
	appCtx := setupApp(t)
	seedUsers(t, appCtx.DB, 8)

	require.NoError(t, NewTournamentSeeder(appCtx).Run(ctx, 4))

	var participantCount int64
	require.NoError(t, appCtx.DB.Model(&db.TournamentParticipant{}).Count(&participantCount).Error)

	var allStats []db.UserStats
	require.NoError(t, appCtx.DB.Find(&allStats).Error)

	entries, won, lost := 0, 0, 0
	for _, s := range allStats {
		entries += s.TotalTournaments
		won += s.TournamentsWon
		lost += s.TournamentsLost
	}
	assert.Equal(t, int(participantCount), entries)
	assert.Equal(t, 4, won)
	assert.Equal(t, int(participantCount)-4, lost)
}

// Deterministic score injection: with player 1 always scoring 8 to 3,
// the bracket game's winner must be player 1 and that user must finish
// the 2-bracket in position 1.
func TestTournamentSeederDeterministicScores(t *testing.T) {
	ctx := context.Background()
	appCtx := setupApp(t)
	seedUsers(t, appCtx.DB, 2)

	seeder := NewTournamentSeeder(appCtx)
	seeder.drawScores = func(_ *rand.Rand) (int, int) { return 8, 3 }

	require.NoError(t, seeder.Run(ctx, 1))

	var game db.Game
	require.NoError(t, appCtx.DB.First(&game).Error)
	require.NotNil(t, game.WinnerID)
	assert.Equal(t, game.Player1ID, *game.WinnerID)
	assert.Equal(t, 8, game.Player1Score)
	assert.Equal(t, 3, game.Player2Score)

	var winner db.TournamentParticipant
	require.NoError(t, appCtx.DB.First(&winner, "user_id = ?", game.Player1ID).Error)
	require.NotNil(t, winner.FinalPosition)
	assert.Equal(t, 1, *winner.FinalPosition)

	var loser db.TournamentParticipant
	require.NoError(t, appCtx.DB.First(&loser, "user_id = ?", game.Player2ID).Error)
	require.NotNil(t, loser.FinalPosition)
	assert.Equal(t, 2, *loser.FinalPosition)

	// winner's stats carry the tournament and the game
	var stats db.UserStats
	require.NoError(t, appCtx.DB.First(&stats, "user_id = ?", game.Player1ID).Error)
	assert.Equal(t, 1, stats.TournamentsWon)
	assert.Equal(t, 1, stats.TotalTournaments)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 8, stats.HighestScore)
}

// A drawn bracket game cannot advance on the tie: the game persists as
// a genuine draw (nil winner, both results draw) and a uniformly
// random player moves on, so the bracket still resolves to exactly one
// position-1 participant.
func TestTournamentSeederDrawnBracketAdvance(t *testing.T) {
	ctx := context.Background()
	appCtx := setupApp(t)
	seedUsers(t, appCtx.DB, 4)

	seeder := NewTournamentSeeder(appCtx)
	seeder.drawScores = func(_ *rand.Rand) (int, int) { return 5, 5 }

	require.NoError(t, seeder.Run(ctx, 1))

	var games []db.Game
	require.NoError(t, appCtx.DB.Find(&games).Error)
	require.NotEmpty(t, games)
	for _, g := range games {
		assert.Nil(t, g.WinnerID)
		assert.Equal(t, db.GeneralDraw, g.GeneralResult)
		assert.Equal(t, db.ResultDraw, g.Player1Result)
		assert.Equal(t, db.ResultDraw, g.Player2Result)
	}

	var participants []db.TournamentParticipant
	require.NoError(t, appCtx.DB.Find(&participants).Error)
	require.NotEmpty(t, participants)

	winners := 0
	for _, p := range participants {
		require.NotNil(t, p.FinalPosition)
		if *p.FinalPosition == 1 {
			winners++
		} else {
			assert.Equal(t, 2, *p.FinalPosition)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestTournamentSeederInsufficientUsers(t *testing.T) {
	ctx := context.Background()
	appCtx := setupApp(t)
	seedUsers(t, appCtx.DB, 1)

	err := NewTournamentSeeder(appCtx).Run(ctx, 1)
	require.Error(t, err)
	assert.True(t, seederrors.IsPrecondition(err))
	assert.Equal(t, int64(0), countRows(t, appCtx.DB, &db.Tournament{}))
}

func TestPickBracketSizeRespectsPopulation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 2, pickBracketSize(r, 2))
		assert.Contains(t, []int{2, 4}, pickBracketSize(r, 5))
		assert.Contains(t, []int{2, 4, 8}, pickBracketSize(r, 20))
	}
}
